package sssp

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dsssp/graph"
	"github.com/katalvlaran/dsssp/partition"
	"github.com/katalvlaran/dsssp/transport"
)

// Run computes the distance from the source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must have at least one vertex (ErrEmptyGraph).
//  4. A source outside [0, N) is not an error: a warning is logged, the run
//     starts from Options.Fallback (DefaultSource unless set) and
//     Result.SourceFallback is set.
//
// Protocol violations are returned as *InvariantError; cancellation of ctx
// is returned as the context's error.
func Run(ctx context.Context, g *graph.Graph, opts ...Option) (*Result, error) {
	// 1) Validate inputs and options.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.N() == 0 {
		return nil, ErrEmptyGraph
	}

	// 2) Resolve the source, falling back on out-of-range input.
	fallback := false
	if !g.Has(o.Source) {
		if !g.Has(o.Fallback) {
			o.Fallback = DefaultSource
		}
		o.Logger.Warn().
			Int("requested", o.Source).
			Int("vertices", g.N()).
			Int("fallback", o.Fallback).
			Msg("source vertex out of range, using default")
		o.Source = o.Fallback
		fallback = true
	}

	ctx, span := startRunSpan(ctx, g, o)
	start := time.Now()
	o.Logger.Info().
		Int("workers", o.Workers).
		Int("source", o.Source).
		Int("vertices", g.N()).
		Int("edges", g.M()).
		Msg("shortest-path run started")

	// 3) Dispatch: a single worker needs no network.
	mode := "distributed"
	var (
		res *Result
		err error
	)
	if o.Workers == 1 {
		mode = "serial"
		res, err = runSerial(ctx, g, o)
	} else {
		res, err = runDistributed(ctx, g, o)
	}
	if err != nil {
		runsTotal.WithLabelValues(mode, "error").Inc()
		o.Logger.Error().Err(err).Msg("shortest-path run failed")
		endRunSpan(span, nil, err)

		return nil, err
	}

	// 4) Finish the result.
	res.SourceFallback = fallback
	res.Elapsed = time.Since(start)
	runsTotal.WithLabelValues(mode, "ok").Inc()
	o.Logger.Info().
		Uint64("rounds", res.Rounds).
		Int("finalized", len(res.Order)).
		Dur("elapsed", res.Elapsed).
		Msg("shortest-path run finished")
	endRunSpan(span, res, nil)

	return res, nil
}

// runDistributed starts one goroutine per worker over an in-process network
// and waits for all of them. The first failing worker cancels the others.
func runDistributed(ctx context.Context, g *graph.Graph, o Options) (*Result, error) {
	pm, err := partition.New(o.Workers)
	if err != nil {
		return nil, fmt.Errorf("sssp: %w", err)
	}

	netOpts := []transport.Option{transport.WithObserver(countMessage)}
	for _, obs := range o.observers {
		netOpts = append(netOpts, transport.WithObserver(obs))
	}
	if o.filter != nil {
		netOpts = append(netOpts, transport.WithFilter(o.filter))
	}
	network, err := transport.NewNetwork(o.Workers, o.mailboxSize(), netOpts...)
	if err != nil {
		return nil, fmt.Errorf("sssp: %w", err)
	}
	defer network.Close()

	coord := pm.Owner(o.Source)
	workers := make([]*worker, o.Workers)
	for rank := range workers {
		ep, err := network.Endpoint(rank)
		if err != nil {
			return nil, fmt.Errorf("sssp: %w", err)
		}
		workers[rank] = newWorker(rank, coord, g, pm, ep, o)
	}

	eg, gctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		eg.Go(func() error { return w.run(gctx) })
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return workers[coord].result(), nil
}
