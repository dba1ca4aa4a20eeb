// Package model implements the randomized token generators for the two
// supported preferential-attachment rules: BA (package-level BA type,
// grounded on original_source/main_ba.cpp's random-token loop and
// main_pba.cpp's three-way branch) and BBCR (grounded on
// original_source/models/ModelBBCR.hpp).
package model

import "math/rand"

// RNG wraps math/rand.Rand behind the narrow interface the generators
// need, grounded on original_source/include/RandomInteger.hpp's
// randint(supremum) — but, per SPEC_FULL.md's design notes, as an
// explicit object threaded through the pipeline instead of a global
// singleton. No third-party PRNG appears anywhere in the retrieval
// pack, so this one component is built directly on the standard
// library; see DESIGN.md.
type RNG struct {
	r *rand.Rand
}

// NewRNG seeds a generator from masterSeed and workerID, matching
// SPEC_FULL.md/spec.md §5's "one generator per worker seeded from
// master_seed + worker_id" requirement.
func NewRNG(masterSeed uint64, workerID int) *RNG {
	return &RNG{r: rand.New(rand.NewSource(int64(masterSeed) + int64(workerID)))}
}

// Uint64n draws uniformly from [0, supremum). supremum must be > 0.
func (g *RNG) Uint64n(supremum uint64) uint64 {
	return g.r.Uint64() % supremum
}

// Float64 draws uniformly from [0, 1), used by the BBCR mode-selection
// and uniform-vs-PA-distribution coin flips.
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}
