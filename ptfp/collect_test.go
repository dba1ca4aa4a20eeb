package ptfp

import (
	"testing"

	"github.com/scalefreegen/pagraph/config"
)

func TestResultSorterRestoresAscendingOrder(t *testing.T) {
	r := NewResultSorter(config.Memory(1 << 20))
	defer r.Close()

	// Emitted out of idx order, as Engine.Run's workers would.
	calls := [][2]uint64{{5, 500}, {0, 100}, {1, 200}}
	for _, c := range calls {
		if err := r.EmitFunc(0, c[0], c[1]); err != nil {
			t.Fatalf("EmitFunc: %v", err)
		}
	}
	if err := r.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	values := r.Values()
	want := []uint64{100, 200, 500}
	var got []uint64
	for !values.Empty() {
		got = append(got, values.Peek())
		if err := values.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, got, want)
		}
	}
}
