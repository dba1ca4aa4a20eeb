package token

// Compact is the cache-dense token representation used by the parallel TFP
// engine (package ptfp), grounded on original_source/main_pba.cpp's
// TokenCompressed: idx and value are restricted to 47 bits each and packed
// into 96 bits (a uint64 + a uint32) instead of Token's 128+ bits, so a
// bulk-priority-queue batch of millions of tokens has a materially smaller
// memory footprint.
type Compact struct {
	hi uint64 // idx(47) | kind(1) | value-high(16)
	lo uint32 // value-low(32)
}

// compactMask is the largest value representable in the packed 47-bit
// fields (idx and value).
const compactMask = 1<<47 - 1

// NewCompact packs (kind, idx, value) into a Compact token.
func NewCompact(kind Kind, idx, value uint64) (Compact, error) {
	if idx&compactMask != idx {
		return Compact{}, ErrIndexOverflow
	}
	if value&compactMask != value {
		return Compact{}, ErrValueOverflow
	}
	kindBit := uint64(0)
	if kind == Query {
		kindBit = 1
	}
	return Compact{
		hi: (idx << 17) | (kindBit << 16) | (value >> 32),
		lo: uint32(value),
	}, nil
}

// FromToken narrows a Token into its Compact form, applying the 47-bit
// packed-range check.
func FromToken(t Token) (Compact, error) {
	return NewCompact(t.Kind, t.Idx, t.Value)
}

// IsQuery reports whether the packed token is a Query token, without a full
// unpack — the hot path in the parallel engine's strip scan.
func (c Compact) IsQuery() bool {
	return c.hi&(1<<16) != 0
}

// Unpack expands a Compact token back into a Token.
func (c Compact) Unpack() Token {
	kind := Link
	if c.IsQuery() {
		kind = Query
	}
	idx := c.hi >> 17
	value := ((c.hi & 0x7FFF) << 32) | uint64(c.lo)
	return Token{Idx: idx, Value: value, Kind: kind}
}

// Less orders Compact tokens the same way Token.Less does: the packed hi
// word already places (idx, kind) in the right relative order, so a plain
// integer comparison of (hi, lo) reproduces the token total order exactly.
func (c Compact) Less(o Compact) bool {
	if c.hi != o.hi {
		return c.hi < o.hi
	}
	return c.lo < o.lo
}

// CompactCompareAsc is a gods-style comparator for Compact tokens.
func CompactCompareAsc(a, b interface{}) int {
	ca, cb := a.(Compact), b.(Compact)
	switch {
	case ca.Less(cb):
		return -1
	case cb.Less(ca):
		return 1
	default:
		return 0
	}
}

// CompactCompareDesc mirrors CompactCompareAsc for building a max-heap
// whose top is the smallest compact token.
func CompactCompareDesc(a, b interface{}) int {
	return -CompactCompareAsc(a, b)
}

// Raw exposes the packed words, for codecs (package extio) that need a
// fixed-width order-preserving encoding without re-deriving the packing.
func (c Compact) Raw() (hi uint64, lo uint32) { return c.hi, c.lo }

// CompactFromRaw reconstructs a Compact from words previously returned by
// Raw. Callers must only pass words that originated from a Compact value.
func CompactFromRaw(hi uint64, lo uint32) Compact { return Compact{hi: hi, lo: lo} }
