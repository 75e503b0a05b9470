// Command sssp computes single-source shortest paths on an unweighted
// directed graph with a group of cooperating workers.
//
// Usage:
//
//	sssp -input graph.bin -workers 4 -source 0
//	sssp -gen random -nodes 5000 -prob 0.001 -seed 7 -workers 8 -verify
//	sssp -config run.yaml -out distances.csv -metrics-addr :9090
//
// Without -config the DSSSP_* environment variables seed the settings;
// flags given on the command line always win.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/dsssp/bfs"
	"github.com/katalvlaran/dsssp/builder"
	"github.com/katalvlaran/dsssp/config"
	"github.com/katalvlaran/dsssp/graph"
	"github.com/katalvlaran/dsssp/report"
	"github.com/katalvlaran/dsssp/sssp"
)

// ErrVerifyMismatch is returned when -verify finds a distance that differs
// from breadth-first search.
var ErrVerifyMismatch = errors.New("sssp: distances differ from breadth-first search")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "sssp:", err)
		os.Exit(1)
	}
}

// run is main without the process exits.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sssp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "Path to configuration file (YAML)")
		workers     = fs.Int("workers", 1, "Number of cooperating workers")
		source      = fs.Int("source", 0, "Source vertex id")
		input       = fs.String("input", "", "Input graph path; empty generates a graph")
		format      = fs.String("format", config.FormatBinary, "Input format: binary, edgelist or dot")
		gen         = fs.String("gen", config.GenRandom, "Generator: path, cycle, star, grid, complete or random")
		nodes       = fs.Int("nodes", 1000, "Vertices to generate")
		prob        = fs.Float64("prob", 0.005, "Edge probability for the random generator")
		seed        = fs.Int64("seed", 1, "Seed for the random generator")
		timeout     = fs.Duration("timeout", sssp.DefaultRoundTimeout, "Round timeout, 0 waits forever")
		out         = fs.String("out", "", "Write vertex,distance CSV to this path")
		metricsAddr = fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
		logLevel    = fs.String("log-level", "info", "Log level: debug, info, warn, error")
		verify      = fs.Bool("verify", false, "Check distances against breadth-first search")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Base configuration, then explicit flags on top.
	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.LoadConfigFromEnv()
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "source":
			cfg.Source = *source
		case "input":
			cfg.Input.Path = *input
		case "format":
			cfg.Input.Format = *format
		case "gen":
			cfg.Generator.Kind = *gen
		case "nodes":
			cfg.Generator.Nodes = *nodes
		case "prob":
			cfg.Generator.Prob = *prob
		case "seed":
			cfg.Generator.Seed = *seed
		case "timeout":
			cfg.RoundTimeout = *timeout
		case "out":
			cfg.Output = *out
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		case "log-level":
			cfg.Log.Level = *logLevel
		case "verify":
			cfg.Verify = *verify
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}

	// 2) Metrics endpoint for the lifetime of the run.
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	// 3) Graph.
	logger.Info().Msg("Reading graph")
	g, err := loadGraph(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info().Int("vertices", g.N()).Int("edges", g.M()).Msg("Created graph")

	// 4) Run and print.
	res, err := sssp.Run(ctx, g,
		sssp.Source(cfg.Source),
		sssp.WithFallbackSource(cfg.DefaultSource),
		sssp.WithWorkers(cfg.Workers),
		sssp.WithRoundTimeout(cfg.RoundTimeout),
		sssp.WithMailboxSize(cfg.MailboxSize),
		sssp.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := report.Write(stdout, res); err != nil {
		return err
	}
	if logger.GetLevel() <= zerolog.DebugLevel {
		if err := report.WriteStats(stderr, res); err != nil {
			return err
		}
	}
	if cfg.Output != "" {
		if err := report.WriteCSV(cfg.Output, res); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Output).Msg("distances written")
	}

	// 5) Optional cross-check.
	if cfg.Verify {
		if err := verifyAgainstBFS(g, res); err != nil {
			return err
		}
		logger.Info().Msg("distances match breadth-first search")
	}

	return nil
}

// newLogger builds the process logger from the log settings.
func newLogger(l config.Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", l.Level, err)
	}
	if l.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func serveMetrics(addr string, logger zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	logger.Info().Str("addr", addr).Msg("serving metrics")

	return srv
}

// loadGraph reads cfg.Input or, without a path, runs the configured generator.
func loadGraph(cfg *config.Config, logger zerolog.Logger) (*graph.Graph, error) {
	if cfg.Input.Path != "" {
		switch cfg.Input.Format {
		case config.FormatEdgeList:
			return graph.LoadEdgeList(cfg.Input.Path)
		case config.FormatDOT:
			g, names, err := graph.LoadDOT(cfg.Input.Path)
			if err != nil {
				return nil, err
			}
			logger.Debug().Int("names", len(names)).Msg("dot node names mapped to ids")

			return g, nil
		default:
			return graph.LoadBinary(cfg.Input.Path)
		}
	}

	gen := cfg.Generator
	bopts := []builder.BuilderOption{builder.WithSeed(gen.Seed)}
	if gen.Undirected {
		bopts = append(bopts, builder.WithUndirected())
	}
	var con builder.Constructor
	switch gen.Kind {
	case config.GenPath:
		con = builder.Path(gen.Nodes)
	case config.GenCycle:
		con = builder.Cycle(gen.Nodes)
	case config.GenStar:
		con = builder.Star(gen.Nodes)
	case config.GenGrid:
		rows := max(1, int(math.Sqrt(float64(gen.Nodes))))
		con = builder.Grid(rows, gen.Nodes/rows)
	case config.GenComplete:
		con = builder.Complete(gen.Nodes)
	default:
		con = builder.RandomSparse(gen.Nodes, gen.Prob)
	}
	logger.Debug().Str("generator", gen.Kind).Int("nodes", gen.Nodes).Int64("seed", gen.Seed).Msg("generating graph")

	return builder.BuildGraph(bopts, con)
}

// verifyAgainstBFS compares res with a breadth-first search from the same source.
func verifyAgainstBFS(g *graph.Graph, res *sssp.Result) error {
	want, err := bfs.BFS(g, res.Source)
	if err != nil {
		return err
	}
	for v, d := range res.Distances {
		if want.Depth[v] != d {
			return fmt.Errorf("%w: vertex %d has %d, want %d", ErrVerifyMismatch, v, d, want.Depth[v])
		}
	}

	return nil
}
