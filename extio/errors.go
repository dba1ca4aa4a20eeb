// Package extio provides the external-memory primitives spec.md §6.2
// treats as out-of-scope collaborators ("assumed available with the
// contracts in §6.2"): a bounded-RAM ascending sorter and a bounded-RAM
// descending priority queue, both spilling to an embedded badger instance
// under memory pressure, plus a disk-backed random-access vector.
//
// Grounded on lib2x3/catalog/catalog.go and lib2x3/sets.go: both use an
// embedded badger.DB as an ordered, durable key space. Here the same
// pattern backs a generic sort/merge and priority queue instead of a
// particle catalog.
package extio

import "github.com/pkg/errors"

var (
	// ErrElementTooWide names a codec Width larger than a scratch buffer
	// supports. No code in this package checks codec widths or returns it.
	ErrElementTooWide = errors.New("extio: encoded element exceeds maximum width")
	// ErrClosed names an operation attempted after Close. Sorter, PQ and
	// Vector do not check for that case and do not return it.
	ErrClosed = errors.New("extio: operation on a closed structure")
	// ErrAlreadySorted guards against pushing into a Sorter after Sort
	// has been called.
	ErrAlreadySorted = errors.New("extio: push after sort")
)
