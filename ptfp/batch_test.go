package ptfp

import "testing"

func TestBatchSizeFloorsAndCaps(t *testing.T) {
	if got := batchSize(0, 1<<14, 1<<22); got != 1<<14 {
		t.Fatalf("batchSize(0) = %d, want floor %d", got, 1<<14)
	}
	if got := batchSize(1<<40, 1<<14, 1<<22); got != 1<<22 {
		t.Fatalf("batchSize(huge) = %d, want cap %d", got, 1<<22)
	}
	// processed^0.75 for a mid-range value should land strictly between
	// the floor and the cap.
	got := batchSize(1<<20, 1<<10, 1<<30)
	if got <= 1<<10 || got >= 1<<30 {
		t.Fatalf("batchSize(mid) = %d, want strictly between floor and cap", got)
	}
}
