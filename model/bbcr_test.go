package model

import (
	"testing"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/token"
)

func TestGenerateBBCRProducesTwoTokensPerEdge(t *testing.T) {
	cfg := BBCR{
		NumEdges:        50,
		FirstVertex:     4,
		FirstEdge:       4, // seed ring of 4 vertices contributed 4 edges
		Alpha:           0.1,
		Beta:            0.8,
		DegreeOffsetIn:  0,
		DegreeOffsetOut: 0,
	}
	sorter := extio.NewSorter[token.Token](extio.TokenCodec{}, config.Memory(1<<20))
	defer sorter.Close()

	rng := NewRNG(7, 0)
	if err := GenerateBBCR(cfg, sorter, rng); err != nil {
		t.Fatalf("GenerateBBCR: %v", err)
	}
	if err := sorter.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	var n int
	for !sorter.Empty() {
		n++
		if err := sorter.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	want := int(2 * cfg.NumEdges)
	if n != want {
		t.Fatalf("got %d tokens, want %d", n, want)
	}
}

func TestGenerateBBCRZeroOffsetAlwaysQueries(t *testing.T) {
	cfg := BBCR{
		NumEdges:        20,
		FirstVertex:     4,
		FirstEdge:       4,
		Alpha:           0.25,
		Beta:            0.5,
		DegreeOffsetIn:  0,
		DegreeOffsetOut: 0,
	}
	sorter := extio.NewSorter[token.Token](extio.TokenCodec{}, config.Memory(1<<20))
	defer sorter.Close()

	rng := NewRNG(11, 0)
	if err := GenerateBBCR(cfg, sorter, rng); err != nil {
		t.Fatalf("GenerateBBCR: %v", err)
	}
	if err := sorter.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	for !sorter.Empty() {
		tok := sorter.Peek()
		if tok.IsQuery() && tok.Value <= tok.Idx {
			t.Fatalf("query %+v violates value > idx invariant", tok)
		}
		if err := sorter.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
}
