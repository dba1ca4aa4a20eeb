package extio

import (
	"math/rand"
	"testing"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/token"
)

func drainSorter(t *testing.T, s *Sorter[token.Token]) []token.Token {
	t.Helper()
	if err := s.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	var out []token.Token
	for !s.Empty() {
		out = append(out, s.Peek())
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return out
}

func TestSorterInMemoryOrdering(t *testing.T) {
	s := NewSorter[token.Token](TokenCodec{}, config.Memory(1<<20))
	defer s.Close()

	in := []token.Token{
		token.MustNew(token.Query, 5, 1),
		token.MustNew(token.Link, 5, 2),
		token.MustNew(token.Link, 1, 9),
		token.MustNew(token.Query, 1, 3),
	}
	for _, tok := range in {
		if err := s.Push(tok); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	out := drainSorter(t, s)
	if len(out) != len(in) {
		t.Fatalf("got %d tokens, want %d", len(out), len(in))
	}
	for i := 1; i < len(out); i++ {
		if !out[i-1].Less(out[i]) {
			t.Fatalf("not ascending at %d: %+v then %+v", i, out[i-1], out[i])
		}
	}
}

func TestSorterSpillsAndStaysOrdered(t *testing.T) {
	// A tiny budget forces every push past the first couple to spill.
	s := NewSorter[token.Token](TokenCodec{}, config.Memory(64))
	defer s.Close()

	rng := rand.New(rand.NewSource(1))
	const n = 500
	for i := 0; i < n; i++ {
		idx := uint64(rng.Intn(50))
		val := uint64(rng.Intn(1000))
		kind := token.Link
		if rng.Intn(2) == 0 {
			kind = token.Query
		}
		if err := s.Push(token.MustNew(kind, idx, val)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	out := drainSorter(t, s)
	if len(out) != n {
		t.Fatalf("got %d tokens back, want %d", len(out), n)
	}
	for i := 1; i < len(out); i++ {
		if out[i].Less(out[i-1]) {
			t.Fatalf("not ascending at %d: %+v then %+v", i, out[i-1], out[i])
		}
	}
}

func TestSorterPushAfterSortRejected(t *testing.T) {
	s := NewSorter[token.Token](TokenCodec{}, config.Memory(1<<20))
	defer s.Close()

	if err := s.Push(token.MustNew(token.Link, 0, 1)); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := s.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	if err := s.Push(token.MustNew(token.Link, 1, 1)); err != ErrAlreadySorted {
		t.Fatalf("got %v, want ErrAlreadySorted", err)
	}
}
