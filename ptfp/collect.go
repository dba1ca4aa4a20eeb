package ptfp

import (
	"sync"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

// ResultSorter restores the idx-ascending order Engine.Run does not
// guarantee across workers (SPEC_FULL.md §6) so the resolved slots can be
// paired into edges exactly like package tfp's output is, via
// edgeio.Sorter.LoadVertices.
type ResultSorter struct {
	mu     sync.Mutex
	sorter *extio.Sorter[token.Token]
}

// NewResultSorter returns an empty ResultSorter bounded by budget bytes
// of in-memory result storage.
func NewResultSorter(budget config.Memory) *ResultSorter {
	return &ResultSorter{sorter: extio.NewSorter[token.Token](extio.TokenCodec{}, budget)}
}

// EmitFunc adapts r for direct use as an Engine.Run callback. Concurrent
// calls from multiple strip workers are safe; the worker id is not used
// for routing here, only for the caller's own per-worker accounting.
func (r *ResultSorter) EmitFunc(_ int, idx, value uint64) error {
	tok, err := token.New(token.Link, idx, value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorter.Push(tok)
}

// Sort finalizes insertion. Call once, after Engine.Run returns.
func (r *ResultSorter) Sort() error { return r.sorter.Sort() }

// Close releases the backing sorter's spill store, if any.
func (r *ResultSorter) Close() error { return r.sorter.Close() }

// Values exposes the sorted results as a stream.Stream[uint64] in
// ascending idx order, ready for edgeio.Sorter.LoadVertices.
func (r *ResultSorter) Values() stream.Stream[uint64] { return &resultValues{r: r} }

type resultValues struct{ r *ResultSorter }

func (v *resultValues) Empty() bool    { return v.r.sorter.Empty() }
func (v *resultValues) Peek() uint64   { return v.r.sorter.Peek().Value }
func (v *resultValues) Advance() error { return v.r.sorter.Advance() }
