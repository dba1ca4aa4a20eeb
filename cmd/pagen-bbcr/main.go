// Command pagen-bbcr generates a directed Bollobás–Borgs–Chayes–Riordan
// graph (spec §4.5) through the TFP pipeline: a seed ring plus the
// randomized alpha/beta/gamma token generator, merged and resolved by
// either the sequential or the parallel TFP engine, then sorted,
// filtered and written as a binary edge list.
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
	fset := flag.NewFlagSet("pagen-bbcr", flag.ExitOnError)
	rlog.InitFlags(fset)

	configPath := fset.String("config", "", "optional TOML config file")
	output := fset.String("output", "", "output edge-list path (or path prefix, parallel mode)")
	nodeWidth := fset.Int("node-width", 8, "on-disk node id width in bytes: 4, 5, 6 or 8")
	numEdges := fset.Uint64("edges", 0, "number of edges to add")
	seedVertices := fset.Uint64("seed-vertices", 2, "seed ring vertex count (minimum 2)")
	alpha := fset.Float64("alpha", 0, "alpha rule weight")
	beta := fset.Float64("beta", 0, "beta rule weight")
	gamma := fset.Float64("gamma", 0, "gamma rule weight")
	dIn := fset.Float64("d-in", 0, "in-degree offset")
	dOut := fset.Float64("d-out", 0, "out-degree offset")
	filterSelfLoops := fset.Bool("filter-self-loops", false, "drop self-loop edges")
	filterMultiEdges := fset.Bool("filter-multi-edges", false, "collapse duplicate edges")
	dedupAcrossShards := fset.Bool("dedup-across-shards", false, "also dedup across parallel writer shards")
	threads := fset.Int("threads", 1, "worker count for the parallel TFP engine (1 = sequential)")
	seed := fset.Uint64("seed", 1, "master RNG seed")
	logFile := fset.String("log-file", "", "optional rotating log file path")

	fset.Parse(os.Args[1:])

	cfg, err := config.LoadBBCR(*configPath)
	if err != nil {
		rlog.Fatalf("loading config: %v", err)
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.OutputPath = *output
		case "node-width":
			cfg.NodeWidth = config.NodeWidth(*nodeWidth)
		case "edges":
			cfg.NumEdges = *numEdges
		case "seed-vertices":
			cfg.SeedVertices = *seedVertices
		case "alpha":
			cfg.Alpha = *alpha
		case "beta":
			cfg.Beta = *beta
		case "gamma":
			cfg.Gamma = *gamma
		case "d-in":
			cfg.DegreeOffsetIn = *dIn
		case "d-out":
			cfg.DegreeOffsetOut = *dOut
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
	if cfg.SeedVertices == 0 {
		cfg.SeedVertices = *seedVertices
	}
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
		rlog.Errorf("pagen-bbcr: %v", err)
		rlog.Flush()
		os.Exit(1)
	}
	rlog.Flush()
}

func run(cfg config.BBCR) error {
	seed := stream.NewSeedRing(cfg.SeedVertices, 0)
	firstVertex := seed.MaxVertexID() + 1
	firstEdge := seed.NumberOfEdges()

	sorter := extio.NewSorter[token.Token](extio.TokenCodec{}, cfg.SorterBudget)
	defer sorter.Close()

	rng := model.NewRNG(cfg.Seed, 0)
	bbcrcfg := model.BBCR{
		NumEdges:        cfg.NumEdges,
		FirstVertex:     firstVertex,
		FirstEdge:       firstEdge,
		Alpha:           cfg.Alpha,
		Beta:            cfg.Beta,
		DegreeOffsetIn:  cfg.DegreeOffsetIn,
		DegreeOffsetOut: cfg.DegreeOffsetOut,
	}
	rlog.Infof("generating BBCR tokens: edges=%d seed-vertices=%d alpha=%.3f beta=%.3f",
		cfg.NumEdges, cfg.SeedVertices, cfg.Alpha, cfg.Beta)
	if err := model.GenerateBBCR(bbcrcfg, sorter, rng); err != nil {
		return err
	}
	if err := sorter.Sort(); err != nil {
		return err
	}

	merged := stream.NewMerge(pipeline.TokenLess, seed, sorter)

	resolved, err := pipeline.Resolve(cfg.Common, merged)
	if err != nil {
		return err
	}
	defer resolved.Close()

	wantEdges := cfg.SeedVertices + cfg.NumEdges
	rlog.Infof("TFP resolved, writing %d edges", wantEdges)
	return pipeline.WriteOut(cfg.Common, resolved.Edges)
}
