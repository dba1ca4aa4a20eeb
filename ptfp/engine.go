package ptfp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

// EmitFunc receives one resolved edge endpoint: the vertex written at
// edge-list position idx is value. worker identifies which goroutine
// produced it, so a caller backed by a sharded writer pool (package
// edgeio's WriterPool) can route without contention; the single-threaded
// path always reports worker 0. Unlike package tfp's Process, Engine does
// not guarantee idx-ascending emit order across workers — see
// SPEC_FULL.md §6 ("the parallel engine's shards are not globally
// sorted").
type EmitFunc func(worker int, idx, value uint64) error

// Engine drains a fully-loaded bulk priority queue of Compact tokens,
// batch by batch, splitting each sufficiently large batch into
// idx-aligned strips processed by a worker pool. Grounded on
// original_source/main_pba.cpp's main loop.
type Engine struct {
	pq         *extio.PQ[token.Compact]
	numWorkers int
	minBatch   int
	maxBatch   int
}

// NewEngine returns an Engine with an empty backing queue. Load the
// complete merged token stream with LoadAll before calling Run.
func NewEngine(budget config.Memory, numWorkers, minBatch, maxBatch int) *Engine {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Engine{
		pq:         extio.NewPQ[token.Compact](extio.CompactCodec{}, budget),
		numWorkers: numWorkers,
		minBatch:   minBatch,
		maxBatch:   maxBatch,
	}
}

// LoadAll pushes every token of in into the engine's queue. Unlike
// main_pba.cpp, which only preloads the randomized query tokens (its
// RAGPath toy topology derives "from" endpoints arithmetically), this
// engine resolves the general two-token-per-edge scheme (package stream),
// so the complete merged stream — seed ring, regular-vertex links and
// sorted random tokens — must be resident before Run starts popping
// batches.
func (e *Engine) LoadAll(in stream.Stream[token.Compact]) error {
	for !in.Empty() {
		if err := e.pq.Push(in.Peek()); err != nil {
			return err
		}
		if err := in.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the engine's backing queue's spill store, if any.
func (e *Engine) Close() error { return e.pq.Close() }

// Run drains the queue until empty, invoking emit once per resolved Link
// and returning the total count of Links emitted (one per edge endpoint).
func (e *Engine) Run(emit EmitFunc) (uint64, error) {
	var processed uint64
	var buf []token.Compact
	for !e.pq.Empty() {
		bs := batchSize(processed, e.minBatch, e.maxBatch)
		buf = buf[:0]
		buf = e.pq.BulkPop(buf, bs)
		if len(buf) == 0 {
			break
		}
		// A Link sorts before every Query at its idx and earlier batches'
		// pushes are visible by now, so a batch that starts with a Query
		// holds a query that nothing can answer.
		if buf[0].IsQuery() {
			return processed, ErrQueryBeforeLink
		}

		e.pq.BeginBulkPush()
		var completed int
		var err error
		if len(buf) < 2*e.minBatch || e.numWorkers == 1 {
			completed, err = e.processStrip(0, buf, emit)
		} else {
			completed, err = e.runParallel(buf, emit)
		}
		if endErr := e.pq.EndBulkPush(); err == nil {
			err = endErr
		}
		if err != nil {
			return processed, err
		}
		processed += uint64(completed)
	}
	return processed, nil
}

// strip is a contiguous, idx-aligned slice of one batch assigned to one
// worker.
type strip struct{ start, end int }

// runParallel partitions buf into e.numWorkers idx-aligned strips and
// processes them concurrently, mirroring main_pba.cpp's #pragma omp
// parallel block: a worker's strip starts at its chunk boundary, skipped
// forward past any trailing queries left over from the previous worker's
// run, and extends past its own chunk boundary until a run boundary is
// found, so no edge-list position's run is split across two strips.
func (e *Engine) runParallel(buf []token.Compact, emit EmitFunc) (int, error) {
	numWorkers := e.numWorkers
	if maxByBatch := len(buf) / e.minBatch; maxByBatch < numWorkers {
		numWorkers = maxByBatch
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	chunkSize := len(buf) / numWorkers
	strips := make([]strip, numWorkers)
	for tid := 0; tid < numWorkers; tid++ {
		start := chunkSize * tid
		if tid != 0 {
			for start < len(buf) && buf[start].IsQuery() {
				start++
			}
		}
		var end int
		if tid == numWorkers-1 {
			end = len(buf)
		} else {
			end = chunkSize * (tid + 1)
			for end < len(buf) && buf[end].IsQuery() {
				end++
			}
		}
		strips[tid] = strip{start, end}
	}

	completed := make([]int, numWorkers)
	g, _ := errgroup.WithContext(context.Background())
	for tid := 0; tid < numWorkers; tid++ {
		tid := tid
		s := strips[tid]
		g.Go(func() error {
			if s.start >= s.end {
				return nil
			}
			n, err := e.processStrip(tid, buf[s.start:s.end], emit)
			completed[tid] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range completed {
		total += n
	}
	return total, nil
}

// processStrip walks one strip's runs — each a Link followed by the
// Queries answering it at the same idx — emitting a resolved edge per
// completed run and bulk-pushing everything deferred: leading queries
// with no Link yet in this strip, resolved answers pushed at their
// target idx, and a trailing Link re-pushed unemitted when the strip ends
// exactly on it (original_source/main_pba.cpp's process lambda).
func (e *Engine) processStrip(worker int, buf []token.Compact, emit EmitFunc) (int, error) {
	completed := 0
	i := 0
	for i < len(buf) {
		if buf[i].IsQuery() {
			for i < len(buf) && buf[i].IsQuery() {
				e.pq.BulkPush(buf[i])
				i++
			}
			continue
		}

		link := buf[i].Unpack()
		linkTok := buf[i]
		i++

		for i < len(buf) {
			qt := buf[i].Unpack()
			if qt.Idx != link.Idx {
				break
			}
			resolved, err := token.NewCompact(token.Link, qt.Value, link.Value)
			if err != nil {
				return completed, err
			}
			e.pq.BulkPush(resolved)
			i++
		}

		if i == len(buf) && len(buf) > 1 {
			// This run may continue into a future batch's queries for the
			// same idx; reinsert the Link unemitted rather than guessing
			// it is complete.
			e.pq.BulkPush(linkTok)
		} else {
			if err := emit(worker, link.Idx, link.Value); err != nil {
				return completed, err
			}
			completed++
		}
	}
	return completed, nil
}
