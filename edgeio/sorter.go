package edgeio

import (
	"github.com/pkg/errors"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/stream"
)

// Sorter receives the resolved vertex stream from package tfp, combines
// consecutive neighbors into edges and sorts them lexicographically,
// grounded on EdgeSorter.hpp. Used by edgeio.Filter's self-loop/multi-edge
// pass, which requires a lexicographically sorted input.
type Sorter struct {
	sorter *extio.Sorter[Edge]
}

// NewSorter returns an empty Sorter bounded by budget bytes of in-memory
// edge storage.
func NewSorter(budget config.Memory) *Sorter {
	return &Sorter{sorter: extio.NewSorter[Edge](EdgeCodec{}, budget)}
}

// LoadVertices drains in, pairing every two consecutive vertex ids into
// an Edge and pushing it into the sorter, mirroring EdgeSorter.hpp's
// constructor loop. in must yield an even number of elements.
func (s *Sorter) LoadVertices(in stream.Stream[uint64]) error {
	for !in.Empty() {
		from := in.Peek()
		if err := in.Advance(); err != nil {
			return err
		}
		if in.Empty() {
			return errors.Wrap(ErrOddVertexCount, "edgeio: loading vertex stream")
		}
		to := in.Peek()
		if err := in.Advance(); err != nil {
			return err
		}
		if err := s.sorter.Push(Edge{From: from, To: to}); err != nil {
			return err
		}
	}
	return nil
}

// Sort finalizes insertion. Must be called once, after every LoadVertices
// call and before draining via Empty/Peek/Advance.
func (s *Sorter) Sort() error { return s.sorter.Sort() }

func (s *Sorter) Empty() bool      { return s.sorter.Empty() }
func (s *Sorter) Peek() Edge       { return s.sorter.Peek() }
func (s *Sorter) Advance() error   { return s.sorter.Advance() }
func (s *Sorter) Close() error     { return s.sorter.Close() }
