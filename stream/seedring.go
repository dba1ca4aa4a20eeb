package stream

import "github.com/scalefreegen/pagraph/token"

// SeedRing emits the 2k Link tokens of a small cycle seed graph over k
// vertices, grounded on original_source/include/InitialCircle.hpp:
// pairs (2e, 2e+1) encode the edges of the cycle
// base -> base+1 -> ... -> base+k-1 -> base.
type SeedRing struct {
	numTokens uint64
	base      uint64

	tokenID uint64
	cur     token.Token
	empty   bool
}

// NewSeedRing returns a SeedRing of numVertices vertices starting at id
// base, positioned at its first token.
func NewSeedRing(numVertices, base uint64) *SeedRing {
	r := &SeedRing{numTokens: 2 * numVertices, base: base}
	r.fill()
	return r
}

// MaxVertexID is the highest vertex id this ring will ever reference.
func (r *SeedRing) MaxVertexID() uint64 { return r.base + r.numTokens/2 - 1 }

// NumberOfEdges is the number of edges the ring contributes.
func (r *SeedRing) NumberOfEdges() uint64 { return r.numTokens / 2 }

func (r *SeedRing) fill() {
	if r.tokenID >= r.numTokens {
		r.empty = true
		return
	}
	var value uint64
	if r.tokenID >= r.numTokens-1 {
		value = r.base
	} else {
		value = r.base + (r.tokenID+1)/2
	}
	r.cur = token.MustNew(token.Link, r.tokenID, value)
}

// SeedRingVertexAt evaluates, in closed form, the vertex SeedRing would
// place at edge-list position pos, without constructing the stream.
// Package model's BA query generator uses this to resolve the "seed
// shortcut" branch of its r < seed_weight case directly instead of
// issuing a Query against the seed region.
func SeedRingVertexAt(numVertices, base, pos uint64) uint64 {
	numTokens := 2 * numVertices
	if pos >= numTokens-1 {
		return base
	}
	return base + (pos+1)/2
}

func (r *SeedRing) Empty() bool { return r.empty }
func (r *SeedRing) Peek() token.Token { return r.cur }

func (r *SeedRing) Advance() error {
	if r.empty {
		return nil
	}
	r.tokenID++
	r.fill()
	return nil
}
