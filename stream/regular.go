package stream

import "github.com/scalefreegen/pagraph/token"

// RegularVertices emits the deterministic "create" Link tokens for the
// BA model's non-seed vertices, grounded on
// original_source/include/RegularVertexTokenStream.hpp: vertex v's
// edges-per-vertex repetitions occupy edge-list slots
// firstEdgeListIdx, firstEdgeListIdx+2, firstEdgeListIdx+4, ... in turn,
// advancing to vertex v+1 once edgesPerVertex tokens have been emitted
// for v.
//
// The source's empty() follows the post-increment pattern SPEC_FULL.md's
// design notes call out: it can still be asked to produce one token past
// vertexEnd. This implementation instead stops producing before the
// out-of-range vertex, matching the pre-increment contract the rest of
// this package uses.
type RegularVertices struct {
	vertexEnd      uint64
	edgesPerVertex uint64

	curVertex  uint64
	curEdge    uint64
	edgeListIdx uint64

	cur   token.Token
	empty bool
}

// NewRegularVertices returns a RegularVertices stream starting at
// firstVertex/firstEdgeListIdx, covering numVertices vertices at
// edgesPerVertex repetitions each.
func NewRegularVertices(firstVertex, firstEdgeListIdx, numVertices, edgesPerVertex uint64) *RegularVertices {
	s := &RegularVertices{
		vertexEnd:      firstVertex + numVertices,
		edgesPerVertex: edgesPerVertex,
		curVertex:      firstVertex,
		edgeListIdx:    firstEdgeListIdx,
	}
	s.fill()
	return s
}

func (s *RegularVertices) fill() {
	if s.curVertex >= s.vertexEnd {
		s.empty = true
		return
	}
	s.cur = token.MustNew(token.Link, s.edgeListIdx, s.curVertex)
}

func (s *RegularVertices) Empty() bool         { return s.empty }
func (s *RegularVertices) Peek() token.Token { return s.cur }

func (s *RegularVertices) Advance() error {
	if s.empty {
		return nil
	}
	s.edgeListIdx += 2
	s.curEdge++
	if s.curEdge >= s.edgesPerVertex {
		s.curVertex++
		s.curEdge = 0
	}
	s.fill()
	return nil
}
