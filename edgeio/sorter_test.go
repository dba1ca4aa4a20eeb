package edgeio

import (
	"testing"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/stream"
)

func TestSorterPairsAndSortsVertices(t *testing.T) {
	s := NewSorter(config.Memory(1 << 20))
	defer s.Close()

	vertices := stream.NewSlice([]uint64{9, 1, 3, 7, 2, 8})
	if err := s.LoadVertices(vertices); err != nil {
		t.Fatalf("LoadVertices: %v", err)
	}
	if err := s.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	want := []Edge{{From: 2, To: 8}, {From: 3, To: 7}, {From: 9, To: 1}}
	var got []Edge
	for !s.Empty() {
		got = append(got, s.Peek())
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSorterRejectsOddVertexCount(t *testing.T) {
	s := NewSorter(config.Memory(1 << 20))
	defer s.Close()

	vertices := stream.NewSlice([]uint64{1, 2, 3})
	if err := s.LoadVertices(vertices); err == nil {
		t.Fatalf("expected ErrOddVertexCount")
	}
}
