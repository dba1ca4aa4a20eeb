// Package edgeio turns a resolved vertex-id stream (the output of
// packages tfp/ptfp) into the binary edge-list file spec §6.1 describes:
// pairing consecutive vertex ids into edges, optionally sorting and
// filtering them, then writing fixed-width little-endian records, with a
// round-robin writer pool for the parallel engine's sharded output.
package edgeio

import "encoding/binary"

// Edge is an ordered pair of vertex ids, grounded on EdgeSorter.hpp's
// edge_type (a std::pair<vertex_type, vertex_type>).
type Edge struct {
	From uint64
	To   uint64
}

// EdgeCodec encodes an Edge as 16 bytes, big-endian, lexicographic by
// (From, To) — the sort order EdgeSorter.hpp's Compare functor uses.
type EdgeCodec struct{}

func (EdgeCodec) Width() int { return 16 }

func (EdgeCodec) Encode(e Edge, buf []byte) []byte {
	var scratch [16]byte
	binary.BigEndian.PutUint64(scratch[0:8], e.From)
	binary.BigEndian.PutUint64(scratch[8:16], e.To)
	return append(buf, scratch[:]...)
}

func (EdgeCodec) Decode(b []byte) Edge {
	return Edge{
		From: binary.BigEndian.Uint64(b[0:8]),
		To:   binary.BigEndian.Uint64(b[8:16]),
	}
}

func (EdgeCodec) ElemSize() int { return 16 }
