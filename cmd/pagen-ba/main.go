// Command pagen-ba generates an undirected Barabási–Albert graph (spec
// §4.3-4.4) through the TFP pipeline: seed ring + regular vertex stream +
// randomized query tokens, merged and resolved by either the sequential
// or the parallel TFP engine, then sorted, filtered and written as a
// binary edge list.
package main

import (
	"flag"
	"os"

	"github.com/scalefreegen/pagraph/config"
	"github.com/scalefreegen/pagraph/extio"
	"github.com/scalefreegen/pagraph/internal/pipeline"
	"github.com/scalefreegen/pagraph/model"
	"github.com/scalefreegen/pagraph/rlog"
	"github.com/scalefreegen/pagraph/stream"
	"github.com/scalefreegen/pagraph/token"
)

func main() {
	fset := flag.NewFlagSet("pagen-ba", flag.ExitOnError)
	rlog.InitFlags(fset)

	configPath := fset.String("config", "", "optional TOML config file")
	output := fset.String("output", "", "output edge-list path (or path prefix, parallel mode)")
	nodeWidth := fset.Int("node-width", 8, "on-disk node id width in bytes: 4, 5, 6 or 8")
	numVertices := fset.Uint64("n", 0, "number of vertices to add (BA)")
	edgesPerVertex := fset.Uint64("m", 0, "edges per new vertex")
	edgeDeps := fset.Bool("edge-dependencies", false, "widen edge weight by edge index within a vertex")
	filterSelfLoops := fset.Bool("filter-self-loops", false, "drop self-loop edges")
	filterMultiEdges := fset.Bool("filter-multi-edges", false, "collapse duplicate edges")
	dedupAcrossShards := fset.Bool("dedup-across-shards", false, "also dedup across parallel writer shards")
	threads := fset.Int("threads", 1, "worker count for the parallel TFP engine (1 = sequential)")
	seed := fset.Uint64("seed", 1, "master RNG seed")
	logFile := fset.String("log-file", "", "optional rotating log file path")

	fset.Parse(os.Args[1:])

	cfg, err := config.LoadBA(*configPath)
	if err != nil {
		rlog.Fatalf("loading config: %v", err)
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.OutputPath = *output
		case "node-width":
			cfg.NodeWidth = config.NodeWidth(*nodeWidth)
		case "n":
			cfg.NumVertices = *numVertices
		case "m":
			cfg.EdgesPerVertex = *edgesPerVertex
		case "edge-dependencies":
			cfg.EdgeDependencies = *edgeDeps
		case "filter-self-loops":
			cfg.FilterSelfLoops = *filterSelfLoops
		case "filter-multi-edges":
			cfg.FilterMultiEdges = *filterMultiEdges
		case "dedup-across-shards":
			cfg.DedupAcrossShards = *dedupAcrossShards
		case "threads":
			cfg.Threads = *threads
		case "seed":
			cfg.Seed = *seed
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	// Values neither set on the command line nor in the config file take
	// the flags' declared defaults.
	if cfg.Threads == 0 {
		cfg.Threads = *threads
	}
	if cfg.Seed == 0 {
		cfg.Seed = *seed
	}

	if err := cfg.Validate(); err != nil {
		rlog.Fatalf("invalid configuration: %v", err)
	}
	rlog.UseRotatingFile(cfg.LogFile, 0, 0)

	if err := run(cfg); err != nil {
		rlog.Errorf("pagen-ba: %v", err)
		rlog.Flush()
		os.Exit(1)
	}
	rlog.Flush()
}

func run(cfg config.BA) error {
	// Seed ring of 2m vertices (spec §8, scenario S1): k = 2 * edges-per-vertex.
	seedVertices := 2 * cfg.EdgesPerVertex
	seed := stream.NewSeedRing(seedVertices, 0)
	firstVertex := seed.MaxVertexID() + 1
	firstSlot := 2 * seedVertices

	sorter := extio.NewSorter[token.Token](extio.TokenCodec{}, cfg.SorterBudget)
	defer sorter.Close()

	rng := model.NewRNG(cfg.Seed, 0)
	bacfg := model.BA{
		SeedVertices:     seedVertices,
		SeedBase:         0,
		FirstSlot:        firstSlot,
		FirstVertex:      firstVertex,
		NumVertices:      cfg.NumVertices,
		EdgesPerVertex:   cfg.EdgesPerVertex,
		EdgeDependencies: cfg.EdgeDependencies,
	}
	rlog.Infof("generating BA tokens: n=%d m=%d seed-vertices=%d", cfg.NumVertices, cfg.EdgesPerVertex, seedVertices)
	if err := model.GenerateBA(bacfg, sorter, rng); err != nil {
		return err
	}
	if err := sorter.Sort(); err != nil {
		return err
	}

	regular := stream.NewRegularVertices(firstVertex, firstSlot, cfg.NumVertices, cfg.EdgesPerVertex)
	merged := stream.NewMerge(pipeline.TokenLess, seed, regular, sorter)

	resolved, err := pipeline.Resolve(cfg.Common, merged)
	if err != nil {
		return err
	}
	defer resolved.Close()

	wantEdges := seedVertices + cfg.NumVertices*cfg.EdgesPerVertex
	rlog.Infof("TFP resolved, writing %d edges", wantEdges)
	return pipeline.WriteOut(cfg.Common, resolved.Edges)
}
