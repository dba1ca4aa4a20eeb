// Package token implements the TFP token algebra: the packed Link/Query
// tuples that drive time-forward processing (see package tfp) and their
// total order.
//
// Grounded on original_source/include/Token.hpp: a token is a 3-tuple
// (kind, idx, value) ordered lexicographically by (idx, kind, value) with
// Link sorting before Query at equal idx.
package token

import "github.com/pkg/errors"

// Kind distinguishes a Link token, which asserts a known vertex at a
// position, from a Query token, which defers a lookup to a later point in
// the global order.
type Kind bool

const (
	// Link asserts: "position Idx in the edge list is node Value."
	Link Kind = false
	// Query asks: "whatever node is written at position Idx, re-emit it
	// as a new Link(Value, <that node>)."
	Query Kind = true
)

func (k Kind) String() string {
	if k == Query {
		return "query"
	}
	return "link"
}

// Errors returned by token construction.
var (
	// ErrIndexOverflow is returned when Idx does not fit the packed range
	// required by the representation being constructed.
	ErrIndexOverflow = errors.New("token: idx exceeds packed range")
	// ErrValueOverflow is returned when Value does not fit the packed
	// range required by the representation being constructed.
	ErrValueOverflow = errors.New("token: value exceeds packed range")
)

// maxIdx63 is the largest idx that leaves room for the kind bit in the
// 64-bit combined (idx<<1)|kind ordering key used by Token.Less.
const maxIdx63 = 1<<63 - 1

// Token is the general-purpose, 64-bit-per-field token used throughout the
// sequential pipeline (C1-C7, C9). Idx and Value are edge-list positions
// and node ids respectively; both are internally uint64 regardless of the
// on-disk node-id width configured for output (see edgeio).
type Token struct {
	Idx   uint64
	Value uint64
	Kind  Kind
}

// New constructs a Token, rejecting an Idx that would not survive the
// (idx<<1)|kind packing used by Less.
func New(kind Kind, idx, value uint64) (Token, error) {
	if idx > maxIdx63 {
		return Token{}, errors.Wrapf(ErrIndexOverflow, "idx=%d", idx)
	}
	return Token{Idx: idx, Value: value, Kind: kind}, nil
}

// MustNew is New, panicking on error. Reserved for call sites where idx is
// already known-bounded by an upstream invariant (e.g. an edge-list
// position derived from a validated vertex count).
func MustNew(kind Kind, idx, value uint64) Token {
	t, err := New(kind, idx, value)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Token) key() (idKind uint64) {
	idKind = t.Idx << 1
	if t.Kind == Query {
		idKind |= 1
	}
	return idKind
}

// Less reports whether t sorts strictly before o under the token total
// order: lexicographic by (Idx, Kind, Value), Link before Query at equal
// Idx.
func (t Token) Less(o Token) bool {
	tk, ok := t.key(), o.key()
	if tk != ok {
		return tk < ok
	}
	return t.Value < o.Value
}

// CompareAsc is a comparator suitable for sort.Slice / gods containers
// that orders tokens ascending, smallest first.
func CompareAsc(a, b interface{}) int {
	ta, tb := a.(Token), b.(Token)
	switch {
	case ta.Less(tb):
		return -1
	case tb.Less(ta):
		return 1
	default:
		return 0
	}
}

// CompareDesc is the mirror of CompareAsc, used to build a max-heap whose
// top is the smallest token (the "descending" comparator convention the
// reference C7 loop's priority queue relies on, see package tfp).
func CompareDesc(a, b interface{}) int {
	return -CompareAsc(a, b)
}

// IsQuery reports whether t is a Query token.
func (t Token) IsQuery() bool { return t.Kind == Query }

// IsLink reports whether t is a Link token.
func (t Token) IsLink() bool { return t.Kind == Link }
