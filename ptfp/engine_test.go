package ptfp

import (
	"testing"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

type emitted struct {
	worker     int
	idx, value uint64
}

// TestEngineResolvesQueryThroughReinsertHeuristic drains a tiny,
// already-sorted token stream through the single-threaded path (the
// batch is always far smaller than 2*minBatch), exercising the same
// Link/Query/reinsert scenario package tfp's process_test.go covers, to
// confirm the bulk engine converges to the same resolved edges despite
// its batch-boundary reinsert heuristic needing a few extra passes.
func TestEngineResolvesQueryThroughReinsertHeuristic(t *testing.T) {
	toks := []token.Token{
		token.MustNew(token.Link, 0, 100),
		token.MustNew(token.Query, 0, 5),
		token.MustNew(token.Link, 1, 200),
	}
	compacts := make([]token.Compact, len(toks))
	for i, tok := range toks {
		c, err := token.FromToken(tok)
		if err != nil {
			t.Fatalf("FromToken: %v", err)
		}
		compacts[i] = c
	}

	e := NewEngine(config.Memory(1<<20), 1, 10, 100)
	defer e.Close()

	if err := e.LoadAll(stream.NewSlice(compacts)); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	var got []emitted
	total, err := e.Run(func(worker int, idx, value uint64) error {
		got = append(got, emitted{worker, idx, value})
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}

	want := []emitted{{0, 0, 100}, {0, 1, 200}, {0, 5, 100}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %+v, want %+v", i, got, want)
		}
	}
}

// TestEngineEmptyStreamProducesNothing exercises the zero-token boundary
// case: Run must return immediately with zero edges and no error.
func TestEngineEmptyStreamProducesNothing(t *testing.T) {
	e := NewEngine(config.Memory(1<<20), 2, 4, 16)
	defer e.Close()

	if err := e.LoadAll(stream.NewSlice[token.Compact](nil)); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	total, err := e.Run(func(worker int, idx, value uint64) error {
		t.Fatalf("unexpected emit(%d, %d, %d)", worker, idx, value)
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}
