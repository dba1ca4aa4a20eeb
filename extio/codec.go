package extio

import (
	"encoding/binary"

	"github.com/scalefreegen/pagraph/token"
)

// Codec lets Sorter and PQ operate generically on any fixed-width,
// order-preserving binary encoding. Width must be constant across every
// value T: callers use it to size scratch buffers and to slice a decoded
// key back out of a badger key that has a disambiguating sequence number
// appended.
type Codec[T any] interface {
	// Width is the fixed length, in bytes, of Encode's output.
	Width() int
	// Encode appends the big-endian, order-preserving encoding of v to buf
	// and returns the extended slice. Two values a, b must encode such
	// that bytes.Compare(Encode(a), Encode(b)) agrees with the domain's
	// total order on a, b.
	Encode(v T, buf []byte) []byte
	// Decode reconstructs a value from exactly Width bytes previously
	// produced by Encode.
	Decode(b []byte) T
	// ElemSize estimates the in-memory footprint of one T, in bytes, for
	// budget accounting against config.Memory.
	ElemSize() int
}

// TokenCodec encodes a token.Token as 16 bytes: the 8-byte (idx<<1|kind)
// ordering key original_source/include/Token.hpp sorts by first, followed
// by the 8-byte value. Byte-lexicographic comparison of the encoding
// reproduces token.Token.Less exactly.
type TokenCodec struct{}

func (TokenCodec) Width() int { return 16 }

func (TokenCodec) Encode(t token.Token, buf []byte) []byte {
	var scratch [16]byte
	idKind := t.Idx << 1
	if t.Kind == token.Query {
		idKind |= 1
	}
	binary.BigEndian.PutUint64(scratch[0:8], idKind)
	binary.BigEndian.PutUint64(scratch[8:16], t.Value)
	return append(buf, scratch[:]...)
}

func (TokenCodec) Decode(b []byte) token.Token {
	idKind := binary.BigEndian.Uint64(b[0:8])
	value := binary.BigEndian.Uint64(b[8:16])
	kind := token.Link
	if idKind&1 != 0 {
		kind = token.Query
	}
	return token.Token{Idx: idKind >> 1, Value: value, Kind: kind}
}

// ElemSize estimates a Token's footprint once resident in a Go slice:
// the 17-byte struct (Idx, Value uint64 + Kind bool) rounded up to its
// aligned size, plus slice-growth overhead.
func (TokenCodec) ElemSize() int { return 32 }

// CompactCodec encodes a token.Compact as its own 12-byte packed form
// (8-byte hi, 4-byte lo), already order-preserving by construction (see
// token.Compact.Less).
type CompactCodec struct{}

func (CompactCodec) Width() int { return 12 }

func (CompactCodec) Encode(c token.Compact, buf []byte) []byte {
	var scratch [12]byte
	hi, lo := c.Raw()
	binary.BigEndian.PutUint64(scratch[0:8], hi)
	binary.BigEndian.PutUint32(scratch[8:12], lo)
	return append(buf, scratch[:]...)
}

func (CompactCodec) Decode(b []byte) token.Compact {
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint32(b[8:12])
	return token.CompactFromRaw(hi, lo)
}

func (CompactCodec) ElemSize() int { return 16 }
