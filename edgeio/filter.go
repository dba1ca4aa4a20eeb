package edgeio

import "github.com/scalefreegen/pagraph/stream"

func edgeEqual(filterMultiEdges bool) func(a, b Edge) bool {
	return func(a, b Edge) bool { return filterMultiEdges && a == b }
}

// Filter drops self-loops and/or collapses multi-edges from a
// lexicographically sorted Edge stream, grounded on EdgeFilter.hpp. When
// filterMultiEdges is set, the input must already be sorted (package
// edgeio's Sorter guarantees this); when it is clear, Filter only ever
// applies the self-loop check and passes everything else through
// unchanged, so it may wrap an unsorted stream safely.
type Filter struct {
	blocks          *runLengthEncode[Edge]
	filterSelfLoops bool

	cur   Edge
	empty bool
}

// NewFilter wraps in, applying the requested filters.
func NewFilter(in stream.Stream[Edge], filterSelfLoops, filterMultiEdges bool) *Filter {
	f := &Filter{
		blocks:          newRunLengthEncode[Edge](in, edgeEqual(filterMultiEdges)),
		filterSelfLoops: filterSelfLoops,
	}
	f.fetch()
	return f
}

func (f *Filter) fetch() {
	for {
		if f.blocks.Empty() {
			f.empty = true
			return
		}
		edge := f.blocks.Peek().Value
		if err := f.blocks.Advance(); err != nil {
			f.empty = true
			return
		}
		if f.filterSelfLoops && edge.From == edge.To {
			continue
		}
		f.cur = edge
		return
	}
}

func (f *Filter) Empty() bool     { return f.empty }
func (f *Filter) Peek() Edge      { return f.cur }
func (f *Filter) Advance() error  { f.fetch(); return nil }
