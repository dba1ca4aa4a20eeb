package tfp

import "github.com/pkg/errors"

// Invariant-violation errors (spec §7): a generator bug, not a resource
// or configuration failure. The process loop asserts these rather than
// silently producing a wrong edge list.
var (
	// ErrQueryIdxMismatch is returned when a Query token surfaces at an
	// idx that does not match the Link just consumed, violating the
	// "a Query answers the Link immediately preceding it in time" TFP
	// invariant (original_source/include/ProcessTokenSequence.hpp's
	// assert(_current_idx-1 == token.id())).
	ErrQueryIdxMismatch = errors.New("tfp: query idx does not match the preceding link")
	// ErrQueryBeforeLink is returned when a Query surfaces before any
	// Link has been observed at all.
	ErrQueryBeforeLink = errors.New("tfp: query surfaced before any link was observed")
)
