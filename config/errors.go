package config

import "errors"

// Configuration errors (spec §7 "Configuration": out-of-range parameters,
// unknown output width; reported synchronously, before any pipeline
// resource is acquired).
var (
	ErrZeroVertices      = errors.New("config: number of vertices must be positive")
	ErrZeroEdgesPerVertex = errors.New("config: edges-per-vertex must be positive")
	ErrZeroEdges         = errors.New("config: number of edges must be positive")
	ErrSeedTooSmall      = errors.New("config: seed-vertices must be at least 2")
	ErrNegativeRule      = errors.New("config: alpha, beta, gamma must be >= 0")
	ErrDegenerateRule    = errors.New("config: alpha + beta + gamma must be > 0")
	ErrNegativeOffset    = errors.New("config: d-in, d-out must be >= 0")
	ErrUnknownNodeWidth  = errors.New("config: node width must be one of 4, 5, 6, 8 bytes")
	ErrNoOutputPath      = errors.New("config: output path must be set")
	ErrZeroThreads       = errors.New("config: thread count must be positive")
	ErrBadMemoryBudget   = errors.New("config: memory budget could not be parsed")
)
