package model

import (
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

// BA holds the fixed parameters of a Barabási–Albert randomized query
// generation pass (spec §4.4): the seed ring's size and first vertex
// id, the regular region's first edge-list slot, the count of
// non-seed vertices and their fan-out, and whether successive edges of
// one vertex are weight-dependent.
type BA struct {
	SeedVertices     uint64
	SeedBase         uint64
	FirstSlot        uint64
	FirstVertex      uint64
	NumVertices      uint64
	EdgesPerVertex   uint64
	EdgeDependencies bool
}

// GenerateBA pushes every randomized query/link token for the BA
// model's non-seed region into sorter, following the reference's
// three-way branch (original_source/main_pba.cpp): a draw landing in
// the seed region resolves immediately against the closed-form seed
// ring (stream.SeedRingVertexAt); a draw landing on an odd position
// past the seed region resolves immediately against the closed-form
// regular-vertex layout; otherwise a Query token is deferred into the
// TFP engine. This is the Open Question resolution recorded in
// DESIGN.md: spec.md's own prose folds the seed-region case into its
// Query branch, but the reference resolves it as a direct Link, which
// is what this generator does.
//
// Callers must call sorter.Sort() once GenerateBA returns, then drain
// it alongside the seed ring and regular-vertex streams through
// package stream's Merge.
func GenerateBA(cfg BA, sorter *extio.Sorter[token.Token], rng *RNG) error {
	seedWeight := 2 * cfg.SeedVertices
	m := cfg.EdgesPerVertex
	delta := uint64(0)
	if cfg.EdgeDependencies {
		delta = 1
	}

	for i := uint64(0); i < cfg.NumVertices; i++ {
		weight := seedWeight + 2*m*i
		for j := uint64(0); j < m; j++ {
			r := rng.Uint64n(weight)
			toSlot := cfg.FirstSlot + 2*(i*m+j) + 1

			var tok token.Token
			var err error
			switch {
			case r < seedWeight:
				value := stream.SeedRingVertexAt(cfg.SeedVertices, cfg.SeedBase, r)
				tok, err = token.New(token.Link, toSlot, value)
			case r&1 == 1:
				regionPos := r - seedWeight
				owner := regionPos / (2 * m)
				tok, err = token.New(token.Link, toSlot, cfg.FirstVertex+owner)
			default:
				tok, err = token.New(token.Query, r, toSlot)
			}
			if err != nil {
				return err
			}
			if err := sorter.Push(tok); err != nil {
				return err
			}

			weight += 2 * delta
		}
	}
	return nil
}
