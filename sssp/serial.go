package sssp

import (
	"context"
	"time"

	"github.com/katalvlaran/dsssp/distance"
	"github.com/katalvlaran/dsssp/frontier"
	"github.com/katalvlaran/dsssp/graph"
	"github.com/katalvlaran/dsssp/partition"
)

// serialRunner drives the same table and frontier as the distributed path
// for a single worker, without any messages.
type serialRunner struct {
	g     *graph.Graph
	opts  Options
	table *distance.Table
	front *frontier.Frontier
	order []Finalized
	round uint64
	stats WorkerStats
}

// runSerial is the P == 1 path.
func runSerial(ctx context.Context, g *graph.Graph, o Options) (*Result, error) {
	pm, err := partition.New(1)
	if err != nil {
		return nil, err
	}

	r := &serialRunner{
		g:     g,
		opts:  o,
		table: distance.NewTable(pm, 0, g.N()),
		front: frontier.New(),
		order: make([]Finalized, 0, g.N()),
	}
	if err := r.table.Seed(o.Source); err != nil {
		return nil, err
	}
	r.front.Insert(o.Source, 0)

	start := time.Now()
	if err := r.process(ctx); err != nil {
		return nil, err
	}
	r.stats.Slots = r.table.Slots()
	r.stats.Elapsed = time.Since(start)

	return &Result{
		Source:      o.Source,
		Workers:     1,
		Coordinator: 0,
		Distances:   r.table.Snapshot(),
		Order:       r.order,
		Rounds:      r.round,
		Stats:       []WorkerStats{r.stats},
	}, nil
}

// process runs rounds until an extraction comes back empty; that last
// round is counted like the distributed termination round.
func (r *serialRunner) process(ctx context.Context) error {
	for {
		// 1) Honor cancellation between rounds.
		if err := ctx.Err(); err != nil {
			return err
		}
		r.round++
		roundsTotal.Inc()

		// 2) Extract; empty means done.
		item, ok := r.front.ExtractMin()
		if !ok {
			return nil
		}
		v := item.Vertex

		// 3) Finalize exactly once.
		if err := r.table.Finalize(v); err != nil {
			return &InvariantError{Invariant: InvariantFinalizeOnce, Worker: 0, Round: r.round, Err: err}
		}
		dv := r.table.Read(v)
		r.order = append(r.order, Finalized{Round: r.round, Vertex: v, Dist: dv})
		r.stats.Finalized++
		r.opts.OnFinalize(r.round, v, dv)
		r.opts.Logger.Debug().Uint64("round", r.round).Int("vertex", v).Int64("dist", dv).Msg("round")

		// 4) Relax every out-neighbor; improvements join the frontier.
		nd := distance.Successor(dv)
		for _, u := range r.g.Neighbors(v) {
			improved := r.table.TryRelax(u, nd)
			countRelax(improved)
			if !improved {
				r.stats.Rejected++

				continue
			}
			r.stats.Relaxed++
			r.front.Insert(u, nd)
		}
	}
}
