// Package pipeline wires the merged token stream produced by either
// generator (model.BA or model.BBCR) through the TFP engines and the
// edge sorter/filter/writer stages, shared by cmd/pagen-ba and
// cmd/pagen-bbcr.
package pipeline

import (
	"fmt"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/edgeio"
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/ptfp"
	"github.com/scalefreegen/pagraph/rlog"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/tfp"
	"github.com/scalefreegen/pagraph/token"
)

// TokenLess is the total order stream.Merge needs over merged token
// streams.
func TokenLess(a, b token.Token) bool { return a.Less(b) }

// Resolved is the common output surface of either TFP engine: a sorted,
// filtered stream of edges ready for a writer, plus the resources that
// must outlive it.
type Resolved struct {
	Edges stream.Stream[edgeio.Edge]
	close func() error
}

// Close releases every resource Resolve acquired.
func (r *Resolved) Close() error { return r.close() }

// Resolve runs merged through the sequential or parallel TFP engine
// (cfg.Threads selects which) and returns the final sorted, filtered
// edge stream.
func Resolve(cfg config.Common, merged stream.Stream[token.Token]) (*Resolved, error) {
	if cfg.Threads <= 1 {
		return resolveSequential(cfg, merged)
	}
	return resolveParallel(cfg, merged)
}

func resolveSequential(cfg config.Common, merged stream.Stream[token.Token]) (*Resolved, error) {
	pq := extio.NewPQ[token.Token](extio.TokenCodec{}, cfg.PQBudget)
	proc, err := tfp.NewProcess(merged, pq)
	if err != nil {
		pq.Close()
		return nil, err
	}

	es := edgeio.NewSorter(cfg.SorterBudget)
	if err := es.LoadVertices(proc); err != nil {
		pq.Close()
		return nil, err
	}
	if err := es.Sort(); err != nil {
		pq.Close()
		return nil, err
	}

	filtered := edgeio.NewFilter(es, cfg.FilterSelfLoops, cfg.FilterMultiEdges)
	return &Resolved{
		Edges: filtered,
		close: func() error {
			pq.Close()
			return es.Close()
		},
	}, nil
}

func resolveParallel(cfg config.Common, merged stream.Stream[token.Token]) (*Resolved, error) {
	engine := ptfp.NewEngine(cfg.PQBudget, cfg.Threads, cfg.MinBatch, cfg.MaxBatch)
	compact := ptfp.NewCompactStream(merged)
	if err := engine.LoadAll(compact); err != nil {
		engine.Close()
		return nil, err
	}
	if err := compact.Err(); err != nil {
		engine.Close()
		return nil, err
	}

	results := ptfp.NewResultSorter(cfg.SorterBudget)
	processed, err := engine.Run(results.EmitFunc)
	if err != nil {
		engine.Close()
		results.Close()
		return nil, err
	}
	rlog.V(1).Infof("parallel engine resolved %d links", processed)
	if err := engine.Close(); err != nil {
		results.Close()
		return nil, err
	}
	if err := results.Sort(); err != nil {
		results.Close()
		return nil, err
	}

	es := edgeio.NewSorter(cfg.SorterBudget)
	if err := es.LoadVertices(results.Values()); err != nil {
		results.Close()
		return nil, err
	}
	if err := es.Sort(); err != nil {
		results.Close()
		return nil, err
	}

	filtered := edgeio.NewFilter(es, cfg.FilterSelfLoops, cfg.FilterMultiEdges)
	return &Resolved{
		Edges: filtered,
		close: func() error {
			results.Close()
			return es.Close()
		},
	}, nil
}

// WriteOut materializes the final edge stream. With a single thread it
// writes one file at cfg.OutputPath; with more, it shards round-robin
// across cfg.Threads files at that path used as a prefix (spec §4.10's
// "output may be sharded across distinct devices"), optionally guarded
// by config.DedupAcrossShards (SPEC_FULL.md §6).
func WriteOut(cfg config.Common, edges stream.Stream[edgeio.Edge]) error {
	if cfg.Threads <= 1 {
		w, err := edgeio.NewWriter(cfg.OutputPath, cfg.NodeWidth)
		if err != nil {
			return err
		}
		if err := w.WriteAll(edges); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %d edges to %s\n", w.EdgesWritten(), cfg.OutputPath)
		return nil
	}

	pool, err := edgeio.NewWriterPool(cfg.OutputPath, cfg.Threads, cfg.NodeWidth, cfg.DedupAcrossShards)
	if err != nil {
		return err
	}
	i := 0
	for !edges.Empty() {
		e := edges.Peek()
		if err := pool.Write(i%pool.Len(), e.From, e.To); err != nil {
			pool.Close()
			return err
		}
		if err := edges.Advance(); err != nil {
			pool.Close()
			return err
		}
		i++
	}
	if err := pool.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %d edges across %d shards at %s\n", pool.TotalEdgesWritten(), pool.Len(), cfg.OutputPath)
	return nil
}
