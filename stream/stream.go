// Package stream implements the leaf token producers and the k-way
// merger that feed the TFP engines (packages tfp and ptfp).
//
// Every stream in this package follows the pull contract SPEC_FULL.md's
// design notes require in place of the original's post-increment
// `empty()` idiom: Peek is valid whenever !Empty, and a stream computes
// its first element at construction time rather than on the first
// Advance. This is a deliberate departure from the teacher's own
// channel-based go2x3/graph-stream.go, grounded instead on
// original_source/include/InitialCircle.hpp,
// RegularVertexTokenStream.hpp and StreamMerger.hpp's own pre-increment
// STXXL streaming interface (`{empty, peek, advance}`, value valid after
// the constructor's initial `++(*this)`).
package stream

// Stream is the capability-based pull interface every producer and
// transformer in the pipeline implements.
type Stream[T any] interface {
	// Empty reports whether the stream is exhausted. Peek must not be
	// called when Empty returns true.
	Empty() bool
	// Peek returns the current front element. Valid iff !Empty().
	Peek() T
	// Advance discards the front element and computes the next one, if
	// any.
	Advance() error
}

// Slice adapts a pre-computed, already-ordered slice to the Stream
// interface. Used in tests and wherever a producer's whole output is
// cheap enough to materialize directly.
type Slice[T any] struct {
	items []T
	pos   int
}

// NewSlice wraps items as a Stream.
func NewSlice[T any](items []T) *Slice[T] { return &Slice[T]{items: items} }

func (s *Slice[T]) Empty() bool { return s.pos >= len(s.items) }
func (s *Slice[T]) Peek() T     { return s.items[s.pos] }
func (s *Slice[T]) Advance() error {
	if s.pos < len(s.items) {
		s.pos++
	}
	return nil
}
