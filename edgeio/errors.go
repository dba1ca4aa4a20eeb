package edgeio

import "github.com/pkg/errors"

// Errors returned while assembling or writing an edge list.
var (
	// ErrOddVertexCount is returned when a vertex stream ends on an
	// unpaired element — the upstream TFP engine produced an odd number
	// of outputs, an invariant violation rather than a resource error.
	ErrOddVertexCount = errors.New("edgeio: vertex stream has an odd number of elements")
	// ErrNoWriters is returned by NewWriterPool when asked for zero
	// writers.
	ErrNoWriters = errors.New("edgeio: writer pool requires at least one writer")
)
