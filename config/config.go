// Package config captures the CLI/configuration surface described in
// spec.md §6.3: the parameter record accepted by the generator commands,
// its validation (rejecting bad combinations before any pipeline resource
// is acquired, per spec §7's "Configuration" error class), and an optional
// TOML overlay file.
package config

import (
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// NodeWidth is the on-disk width, in bytes, of a persisted node id
// (spec §6.1).
type NodeWidth int

// Supported on-disk node-id widths.
const (
	Width32 NodeWidth = 4
	Width40 NodeWidth = 5
	Width48 NodeWidth = 6
	Width64 NodeWidth = 8
)

func (w NodeWidth) valid() bool {
	switch w {
	case Width32, Width40, Width48, Width64:
		return true
	}
	return false
}

// Memory is a byte quantity accepted from either a plain integer or a
// human-readable string ("512MiB", "2GB") via github.com/dustin/go-humanize,
// matching the ecosystem convention the rest of the retrieval pack uses for
// memory-budget flags.
type Memory uint64

// UnmarshalText lets a Memory field be set directly from a TOML string.
func (m *Memory) UnmarshalText(text []byte) error {
	n, err := humanize.ParseBytes(string(text))
	if err != nil {
		return errors.Wrapf(ErrBadMemoryBudget, "%q: %v", text, err)
	}
	*m = Memory(n)
	return nil
}

// String renders the budget in human-readable form, e.g. for log messages.
func (m Memory) String() string {
	return humanize.Bytes(uint64(m))
}

// defaults for resource budgets not supplied by the caller.
const (
	DefaultSorterBudget Memory = 1 << 30 // 1 GiB
	DefaultPQBudget     Memory = 1 << 30 // 1 GiB
	DefaultMinBatch            = 1 << 14
	DefaultMaxBatch            = 1 << 22
)

// Common holds the parameters shared by every generator mode: output
// shape, filters, resource budgets and reproducibility knobs.
type Common struct {
	OutputPath string    `toml:"output"`
	NodeWidth  NodeWidth `toml:"node_width"`

	FilterSelfLoops  bool `toml:"filter_self_loops"`
	FilterMultiEdges bool `toml:"filter_multi_edges"`

	// DedupAcrossShards additionally guards against the same edge being
	// written by two different parallel workers to two different shards;
	// see SPEC_FULL.md §6. Only meaningful together with the parallel
	// engine and FilterMultiEdges.
	DedupAcrossShards bool `toml:"dedup_across_shards"`

	Threads int    `toml:"threads"`
	Seed    uint64 `toml:"seed"`

	SorterBudget Memory `toml:"sorter_budget"`
	PQBudget     Memory `toml:"pq_budget"`
	MinBatch     int    `toml:"min_batch"`
	MaxBatch     int    `toml:"max_batch"`

	LogFile string `toml:"log_file"`
}

// BA holds the Barabási–Albert generator's parameters (spec §4.3-4.4).
type BA struct {
	Common

	NumVertices      uint64 `toml:"no_vertices"`
	EdgesPerVertex   uint64 `toml:"edges_per_vert"`
	EdgeDependencies bool   `toml:"edge_dependencies"`
}

// BBCR holds the directed BBCR generator's parameters (spec §4.5).
type BBCR struct {
	Common

	NumEdges         uint64  `toml:"no_edges"`
	SeedVertices     uint64  `toml:"seed_vertices"`
	Alpha            float64 `toml:"alpha"`
	Beta             float64 `toml:"beta"`
	Gamma            float64 `toml:"gamma"`
	DegreeOffsetIn   float64 `toml:"d_in"`
	DegreeOffsetOut  float64 `toml:"d_out"`
}

// applyDefaults fills in zero-valued resource fields with the package
// defaults, mirroring main_ba.cpp/main_pba.cpp's compile-time constants
// promoted to runtime configuration.
func (c *Common) applyDefaults() {
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.SorterBudget == 0 {
		c.SorterBudget = DefaultSorterBudget
	}
	if c.PQBudget == 0 {
		c.PQBudget = DefaultPQBudget
	}
	if c.MinBatch <= 0 {
		c.MinBatch = DefaultMinBatch
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = DefaultMaxBatch
	}
	if c.NodeWidth == 0 {
		c.NodeWidth = Width64
	}
}

func (c *Common) validate() error {
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if !c.NodeWidth.valid() {
		return errors.Wrapf(ErrUnknownNodeWidth, "got %d", c.NodeWidth)
	}
	if c.Threads <= 0 {
		return ErrZeroThreads
	}
	return nil
}

// Validate checks a BA configuration against spec §6.3/§8's boundary
// behaviors: n=0 or m=0 is rejected before the pipeline starts.
func (c *BA) Validate() error {
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return err
	}
	if c.NumVertices == 0 {
		return ErrZeroVertices
	}
	if c.EdgesPerVertex == 0 {
		return ErrZeroEdgesPerVertex
	}
	return nil
}

// Validate checks a BBCR configuration, normalizing alpha/beta by their
// sum with gamma exactly as original_source/main_bbcr.cpp does (see
// SPEC_FULL.md §8, Open Question 3): only alpha and beta are divided by
// the sum; gamma's probability mass is implicitly 1-alpha-beta after
// normalization.
func (c *BBCR) Validate() error {
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return err
	}
	if c.NumEdges == 0 {
		return ErrZeroEdges
	}
	if c.SeedVertices < 2 {
		return ErrSeedTooSmall
	}
	if c.Alpha < 0 || c.Beta < 0 || c.Gamma < 0 {
		return ErrNegativeRule
	}
	sum := c.Alpha + c.Beta + c.Gamma
	if sum < 1e-9 {
		return ErrDegenerateRule
	}
	c.Alpha /= sum
	c.Beta /= sum
	if c.DegreeOffsetIn < 0 || c.DegreeOffsetOut < 0 {
		return ErrNegativeOffset
	}
	return nil
}

// LoadBA reads a TOML file into a BA config. A missing path is not an
// error: the zero-valued struct is returned so callers can overlay flags
// on top before calling Validate.
func LoadBA(path string) (BA, error) {
	var c BA
	if path == "" {
		return c, nil
	}
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

// LoadBBCR reads a TOML file into a BBCR config, symmetric with LoadBA.
func LoadBBCR(path string) (BBCR, error) {
	var c BBCR
	if path == "" {
		return c, nil
	}
	_, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}
