package stream

import "github.com/emirpasic/gods/trees/binaryheap"

// Merge is a runtime-k ascending merger over streams sharing one
// comparator, grounded on original_source/include/StreamMerger.hpp —
// but, per SPEC_FULL.md's design notes, replacing the source's
// compile-time variadic template recursion with a binary heap of
// stream handles, exactly the substitution package extio's PQ makes for
// the bulk priority queue. Ties are broken by input-index order, which
// falls out naturally from the heap push order for equal keys combined
// with a stable index tiebreaker in the comparator.
type Merge[T any] struct {
	less func(a, b T) bool
	heap *binaryheap.Heap

	cur   T
	empty bool
}

type mergeItem[T any] struct {
	idx    int
	stream Stream[T]
}

// NewMerge returns a Merge over streams, all already positioned at
// their first element (per the package's pre-increment contract), using
// less as the total order. An empty streams slice yields an
// already-empty Merge, per spec §8's "empty input to the stream merger
// returns empty" boundary case.
func NewMerge[T any](less func(a, b T) bool, streams ...Stream[T]) *Merge[T] {
	m := &Merge[T]{less: less}
	cmp := func(a, b interface{}) int {
		ia, ib := a.(mergeItem[T]), b.(mergeItem[T])
		switch {
		case less(ia.stream.Peek(), ib.stream.Peek()):
			return -1
		case less(ib.stream.Peek(), ia.stream.Peek()):
			return 1
		case ia.idx < ib.idx:
			return -1
		case ia.idx > ib.idx:
			return 1
		default:
			return 0
		}
	}
	m.heap = binaryheap.NewWith(cmp)
	for i, s := range streams {
		if !s.Empty() {
			m.heap.Push(mergeItem[T]{idx: i, stream: s})
		}
	}
	m.fill()
	return m
}

func (m *Merge[T]) fill() {
	top, ok := m.heap.Peek()
	if !ok {
		m.empty = true
		return
	}
	m.cur = top.(mergeItem[T]).stream.Peek()
}

func (m *Merge[T]) Empty() bool { return m.empty }
func (m *Merge[T]) Peek() T     { return m.cur }

func (m *Merge[T]) Advance() error {
	if m.empty {
		return nil
	}
	top, _ := m.heap.Pop()
	item := top.(mergeItem[T])
	if err := item.stream.Advance(); err != nil {
		return err
	}
	if !item.stream.Empty() {
		m.heap.Push(item)
	}
	m.fill()
	return nil
}
