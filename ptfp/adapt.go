package ptfp

import (
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

// CompactStream narrows a stream.Stream[token.Token] into the
// stream.Stream[token.Compact] Engine.LoadAll needs, applying the 47-bit
// packed-range check at each element.
type CompactStream struct {
	in  stream.Stream[token.Token]
	cur token.Compact
	err error
}

// NewCompactStream wraps in, positioning at its first packed element.
func NewCompactStream(in stream.Stream[token.Token]) *CompactStream {
	s := &CompactStream{in: in}
	s.fill()
	return s
}

func (s *CompactStream) fill() {
	if s.err != nil || s.in.Empty() {
		return
	}
	c, err := token.FromToken(s.in.Peek())
	if err != nil {
		s.err = err
		return
	}
	s.cur = c
}

// Err reports the first packed-range violation encountered, if any.
func (s *CompactStream) Err() error { return s.err }

func (s *CompactStream) Empty() bool        { return s.err != nil || s.in.Empty() }
func (s *CompactStream) Peek() token.Compact { return s.cur }

func (s *CompactStream) Advance() error {
	if s.err != nil {
		return s.err
	}
	if err := s.in.Advance(); err != nil {
		s.err = err
		return err
	}
	s.fill()
	return s.err
}
