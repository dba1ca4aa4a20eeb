package extio

import (
	"math/rand"
	"testing"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/token"
)

func TestPQPopsAscending(t *testing.T) {
	q := NewPQ[token.Token](TokenCodec{}, config.Memory(1<<20))
	defer q.Close()

	rng := rand.New(rand.NewSource(2))
	const n = 200
	for i := 0; i < n; i++ {
		idx := uint64(rng.Intn(80))
		val := uint64(rng.Intn(1000))
		if err := q.Push(token.MustNew(token.Link, idx, val)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}
	if q.Len() != n {
		t.Fatalf("got len %d, want %d", q.Len(), n)
	}

	var prev token.Token
	for i := 0; i < n; i++ {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop ran dry at %d/%d", i, n)
		}
		if i > 0 && v.Less(prev) {
			t.Fatalf("not ascending at %d: %+v after %+v", i, v, prev)
		}
		prev = v
	}
	if !q.Empty() {
		t.Fatalf("expected empty queue after draining")
	}
}

func TestPQSpillsUnderBudget(t *testing.T) {
	q := NewPQ[token.Token](TokenCodec{}, config.Memory(32))
	defer q.Close()

	for i := 0; i < 100; i++ {
		if err := q.Push(token.MustNew(token.Link, uint64(99-i), uint64(i))); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	var prev token.Token
	var got int
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		if got > 0 && v.Less(prev) {
			t.Fatalf("not ascending at %d", got)
		}
		prev = v
		got++
	}
	if got != 100 {
		t.Fatalf("got %d tokens, want 100", got)
	}
}

func TestPQBulkPushInvisibleUntilEnd(t *testing.T) {
	q := NewPQ[token.Token](TokenCodec{}, config.Memory(1<<20))
	defer q.Close()

	q.BeginBulkPush()
	q.BulkPush(token.MustNew(token.Link, 1, 1))
	q.BulkPush(token.MustNew(token.Link, 2, 2))
	if !q.Empty() {
		t.Fatalf("bulk-staged pushes must not be visible before EndBulkPush")
	}
	if err := q.EndBulkPush(); err != nil {
		t.Fatalf("EndBulkPush: %v", err)
	}
	if q.Len() != 2 {
		t.Fatalf("got len %d after EndBulkPush, want 2", q.Len())
	}
}

func TestPQBulkPop(t *testing.T) {
	q := NewPQ[token.Token](TokenCodec{}, config.Memory(1<<20))
	defer q.Close()

	for i := uint64(0); i < 10; i++ {
		if err := q.Push(token.MustNew(token.Link, 10-i, i)); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	batch := q.BulkPop(nil, 5)
	if len(batch) != 5 {
		t.Fatalf("got %d, want 5", len(batch))
	}
	for i := 1; i < len(batch); i++ {
		if batch[i].Less(batch[i-1]) {
			t.Fatalf("bulk pop batch not ascending at %d", i)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("got remaining len %d, want 5", q.Len())
	}
}
