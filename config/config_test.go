package config

import "testing"

func TestBAValidateRejectsZero(t *testing.T) {
	c := BA{Common: Common{OutputPath: "out.bin"}}
	if err := c.Validate(); err != ErrZeroVertices {
		t.Fatalf("got %v, want ErrZeroVertices", err)
	}

	c = BA{Common: Common{OutputPath: "out.bin"}, NumVertices: 4}
	if err := c.Validate(); err != ErrZeroEdgesPerVertex {
		t.Fatalf("got %v, want ErrZeroEdgesPerVertex", err)
	}
}

func TestBAValidateFillsDefaults(t *testing.T) {
	c := BA{Common: Common{OutputPath: "out.bin"}, NumVertices: 4, EdgesPerVertex: 2}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Threads <= 0 {
		t.Fatalf("expected Threads to be defaulted, got %d", c.Threads)
	}
	if c.NodeWidth != Width64 {
		t.Fatalf("expected default node width 8, got %d", c.NodeWidth)
	}
}

func TestBBCRValidateSeedMinimum(t *testing.T) {
	c := BBCR{Common: Common{OutputPath: "out.bin"}, NumEdges: 10, SeedVertices: 1, Alpha: 0.1, Beta: 0.8, Gamma: 0.1}
	if err := c.Validate(); err != ErrSeedTooSmall {
		t.Fatalf("got %v, want ErrSeedTooSmall", err)
	}
}

func TestBBCRValidateNormalizesAlphaBetaOnly(t *testing.T) {
	c := BBCR{
		Common:       Common{OutputPath: "out.bin"},
		NumEdges:     10,
		SeedVertices: 4,
		Alpha:        1,
		Beta:         1,
		Gamma:        2,
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Alpha != 0.25 || c.Beta != 0.25 {
		t.Fatalf("expected alpha=beta=0.25 after normalization, got alpha=%v beta=%v", c.Alpha, c.Beta)
	}
	if c.Gamma != 2 {
		t.Fatalf("gamma must be left un-normalized per original_source/main_bbcr.cpp, got %v", c.Gamma)
	}
}

func TestBBCRValidateRejectsDegenerateRule(t *testing.T) {
	c := BBCR{Common: Common{OutputPath: "out.bin"}, NumEdges: 10, SeedVertices: 4}
	if err := c.Validate(); err != ErrDegenerateRule {
		t.Fatalf("got %v, want ErrDegenerateRule", err)
	}
}

func TestMemoryUnmarshalText(t *testing.T) {
	var m Memory
	if err := m.UnmarshalText([]byte("512MiB")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 512*1024*1024 {
		t.Fatalf("got %d bytes, want 512MiB", m)
	}
}
