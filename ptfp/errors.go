// Package ptfp implements the parallel time-forward-processing engine
// (spec §4.8), grounded on original_source/main_pba.cpp: the full merged
// token stream is loaded into a bulk priority queue up front, then drained
// in batches sized by the processed^0.75 rule, each batch split into
// contiguous idx-aligned strips and processed by a worker pool.
package ptfp

import "github.com/pkg/errors"

// Invariant-violation errors, mirrored from package tfp.
var (
	// ErrQueryIdxMismatch mirrors package tfp's error of the same name.
	// Engine does not return it: a Query whose idx differs from the Link
	// preceding it in a strip is pushed back into the queue for a later
	// batch, since its Link may still be staged in the current epoch.
	ErrQueryIdxMismatch = errors.New("ptfp: query idx does not match the preceding link")
	// ErrQueryBeforeLink is returned by Engine.Run when a popped batch
	// begins with a Query: its Link would sort before it and every earlier
	// push is already visible, so no Link is left to answer it — an
	// unanswerable query, a generator bug.
	ErrQueryBeforeLink = errors.New("ptfp: query unanswered at end of stream")
)
