package edgeio

import (
	"fmt"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/extio"
)

// WriterPool manages a fixed set of Writers addressed by index, round
// robin over a base path, grounded on EdgeWriterPool.hpp — minus its
// .pagg_out configuration-file discovery, which this module's `config`
// package supersedes with an explicit CLI/TOML base path.
//
// DedupAcrossShards, when enabled, additionally guards against the same
// edge being accepted by two different shards — grounded on
// lib2x3/sets.go's in-memory-badger lsmSet (see package extio's
// EdgeSet) — since the pool's shards are not required to be globally
// sorted relative to each other, unlike a single edgeio.Sorter pass.
type WriterPool struct {
	writers []*Writer
	dedup   *extio.EdgeSet
}

// NewWriterPool creates n Writers at basePath+"graphN.bin", N in [0,n).
func NewWriterPool(basePath string, n int, width config.NodeWidth, dedupAcrossShards bool) (*WriterPool, error) {
	if n <= 0 {
		return nil, ErrNoWriters
	}
	p := &WriterPool{}
	if dedupAcrossShards {
		p.dedup = extio.NewEdgeSet()
	}
	for i := 0; i < n; i++ {
		w, err := NewWriter(fmt.Sprintf("%sgraph%d.bin", basePath, i), width)
		if err != nil {
			p.Close()
			return nil, err
		}
		p.writers = append(p.writers, w)
	}
	return p, nil
}

// Write routes one edge to shard idx. If DedupAcrossShards is enabled and
// this edge (in either direction is not considered — order matters, as
// for the rest of the module) was already accepted by any shard, it is
// silently dropped.
func (p *WriterPool) Write(idx int, from, to uint64) error {
	if p.dedup != nil && !p.dedup.TryAdd(from, to) {
		return nil
	}
	return p.writers[idx].WriteEdge(from, to)
}

// Len reports the number of shards in the pool.
func (p *WriterPool) Len() int { return len(p.writers) }

// TotalEdgesWritten sums edgesWritten across every shard, mirroring
// EdgeWriterPool.hpp's totalEdgesWritten().
func (p *WriterPool) TotalEdgesWritten() uint64 {
	var total uint64
	for _, w := range p.writers {
		total += w.EdgesWritten()
	}
	return total
}

// Close closes every shard writer and the dedup set, returning the first
// error encountered, if any.
func (p *WriterPool) Close() error {
	var firstErr error
	for _, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if p.dedup != nil {
		p.dedup.Close()
	}
	return firstErr
}
