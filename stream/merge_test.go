package stream

import "testing"

func lessInt(a, b int) bool { return a < b }

func TestMergeThreeAscendingStreams(t *testing.T) {
	a := NewSlice([]int{0, 3, 6, 9})
	b := NewSlice([]int{1, 4, 7, 10})
	c := NewSlice([]int{2, 5, 8, 11})

	m := NewMerge[int](lessInt, a, b, c)

	var got []int
	for !m.Empty() {
		got = append(got, m.Peek())
		if err := m.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if len(got) != 12 {
		t.Fatalf("got %d elements, want 12", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestMergeEmptyInputIsEmpty(t *testing.T) {
	m := NewMerge[int](lessInt)
	if !m.Empty() {
		t.Fatalf("merge of zero streams must be empty")
	}
}

func TestMergeSkipsAlreadyEmptyStreams(t *testing.T) {
	empty := NewSlice([]int{})
	a := NewSlice([]int{1, 2, 3})

	m := NewMerge[int](lessInt, empty, a)
	var got []int
	for !m.Empty() {
		got = append(got, m.Peek())
		if err := m.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d elements, want 3", len(got))
	}
}
