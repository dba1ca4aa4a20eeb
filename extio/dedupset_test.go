package extio

import "testing"

func TestEdgeSetTryAdd(t *testing.T) {
	s := NewEdgeSet()
	defer s.Close()

	if !s.TryAdd(1, 2) {
		t.Fatalf("first add of (1,2) should succeed")
	}
	if s.TryAdd(1, 2) {
		t.Fatalf("second add of (1,2) should be rejected as a duplicate")
	}
	if !s.TryAdd(2, 1) {
		t.Fatalf("(2,1) is a distinct directed edge from (1,2) and should be added")
	}
}
