package reservoir

import "testing"

// fixedRNG replays a scripted sequence of draws so the fill/replace/erase
// branches can be forced deterministically.
type fixedRNG struct {
	draws []uint64
	i     int
}

func (f *fixedRNG) Uint64n(n uint64) uint64 {
	v := f.draws[f.i] % n
	f.i++
	return v
}

func TestPushFillsBeforeReplacing(t *testing.T) {
	r := New[int](3, &fixedRNG{})
	for i := 1; i <= 3; i++ {
		r.Push(i)
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	if r.Empty() {
		t.Fatalf("reservoir should not be empty after filling")
	}
	seen := map[int]bool{}
	for i := 0; i < r.Len(); i++ {
		seen[r.At(i)] = true
	}
	for i := 1; i <= 3; i++ {
		if !seen[i] {
			t.Fatalf("expected %d among the first 3 pushes, got %v", i, seen)
		}
	}
}

func TestPushReplacesWithinTargetDraw(t *testing.T) {
	r := New[int](2, &fixedRNG{draws: []uint64{0}})
	r.Push(1)
	r.Push(2)
	// Third push: pushed becomes 3, draw%3 == 0 -> replace slot 0.
	r.Push(99)
	if r.At(0) != 99 {
		t.Fatalf("At(0) = %d, want 99", r.At(0))
	}
	if r.At(1) != 2 {
		t.Fatalf("At(1) = %d, want 2 (untouched)", r.At(1))
	}
}

func TestPushSkipsReplacementPastTarget(t *testing.T) {
	// Third push: pushed becomes 3, draw%3 == 2, which is >= targetSize(2),
	// so the replacement is skipped and the reservoir is unchanged.
	r := New[int](2, &fixedRNG{draws: []uint64{2}})
	r.Push(1)
	r.Push(2)
	r.Push(99)
	if r.At(0) != 1 || r.At(1) != 2 {
		t.Fatalf("got (%d,%d), want (1,2) unchanged", r.At(0), r.At(1))
	}
}

func TestEraseSwapsWithLast(t *testing.T) {
	r := New[int](3, &fixedRNG{})
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Erase(0)
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	if r.At(0) != 3 {
		t.Fatalf("At(0) = %d, want 3 (swapped from the end)", r.At(0))
	}
}

func TestEraseMaybeCancelsOnReveal(t *testing.T) {
	// targetSize 2, pushed 2: draw%pushed(2) == 0 < Len(2) -> cancel, no erase.
	r := New[int](2, &fixedRNG{draws: []uint64{0}})
	r.Push(1)
	r.Push(2)
	r.EraseMaybe(0)
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (erase canceled)", r.Len())
	}
}

func TestEraseMaybeErasesWhenNotCanceled(t *testing.T) {
	// targetSize 1: after two pushes, pushed=2 and Len=1; a draw of 1
	// (1 % pushed(2) == 1) is not < Len(1), so the cancel check fails
	// and the erase goes through.
	r := New[int](1, &fixedRNG{draws: []uint64{0, 1}})
	r.Push(1)
	r.Push(2)
	r.EraseMaybe(0)
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0 (erase applied)", r.Len())
	}
}
