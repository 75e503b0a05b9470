package sssp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/dsssp/distance"
	"github.com/katalvlaran/dsssp/frontier"
	"github.com/katalvlaran/dsssp/graph"
	"github.com/katalvlaran/dsssp/partition"
	"github.com/katalvlaran/dsssp/transport"
)

// worker holds the private state of one rank. Only its own goroutine
// touches it.
type worker struct {
	rank  int
	coord int
	g     *graph.Graph
	pm    partition.Map
	table *distance.Table
	ep    *transport.Endpoint
	opts  Options
	log   zerolog.Logger

	round uint64              // last round begun
	held  []transport.Message // admitted messages not yet consumed
	tally transport.Tally
	start time.Time

	// coordinator only
	front      *frontier.Frontier
	order      []Finalized
	reports    map[int]transport.Message
	roundStart time.Time
}

func newWorker(rank, coord int, g *graph.Graph, pm partition.Map, ep *transport.Endpoint, o Options) *worker {
	w := &worker{
		rank:  rank,
		coord: coord,
		g:     g,
		pm:    pm,
		table: distance.NewTable(pm, rank, g.N()),
		ep:    ep,
		opts:  o,
		log:   o.Logger.With().Int("worker", rank).Logger(),
	}
	if w.isCoordinator() {
		// The source is seeded, not finalized; round 1 finalizes it.
		_ = w.table.Seed(o.Source)
		w.front = frontier.New()
		w.front.Insert(o.Source, 0)
	}

	return w
}

func (w *worker) isCoordinator() bool { return w.rank == w.coord }

// violation records and returns a fatal protocol error.
func (w *worker) violation(invariant string, err error) error {
	invariantViolations.WithLabelValues(invariant).Inc()
	w.log.Error().
		Str("invariant", invariant).
		Uint64("round", w.round).
		Err(err).
		Msg("protocol invariant violated")

	return &InvariantError{Invariant: invariant, Worker: w.rank, Round: w.round, Err: err}
}

// beginRound moves the worker to round r. Rounds advance one at a time and
// nothing from an earlier round may still be held.
func (w *worker) beginRound(r uint64) error {
	if r != w.round+1 {
		return w.violation(InvariantRoundSync,
			fmt.Errorf("%w: round %d announced after round %d", ErrUnexpectedMessage, r, w.round))
	}
	w.round = r
	for _, msg := range w.held {
		if msg.Round < r {
			return w.violation(InvariantRoundSync,
				fmt.Errorf("%w: %s left over at start of round %d", ErrUnexpectedMessage, msg, r))
		}
	}

	return nil
}

// admit accepts messages of the current or the next round only.
func (w *worker) admit(msg transport.Message) error {
	if msg.Round == w.round || msg.Round == w.round+1 {
		return nil
	}

	return w.violation(InvariantRoundSync,
		fmt.Errorf("%w: %s while in round %d", ErrUnexpectedMessage, msg, w.round))
}

// await returns the first message satisfying match. Held messages are
// searched first; others received meanwhile are held for later. A bounded
// wait fails after Options.RoundTimeout and is charged to invariant.
func (w *worker) await(
	ctx context.Context,
	invariant string,
	bounded bool,
	match func(transport.Message) bool,
) (transport.Message, error) {
	for i, msg := range w.held {
		if match(msg) {
			w.held = append(w.held[:i], w.held[i+1:]...)

			return msg, nil
		}
	}

	waitCtx := ctx
	if bounded && w.opts.RoundTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, w.opts.RoundTimeout)
		defer cancel()
	}

	for {
		msg, err := w.ep.Receive(waitCtx)
		if err != nil {
			if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
				return transport.Message{}, w.violation(invariant,
					fmt.Errorf("%w after %s", ErrRoundTimeout, w.opts.RoundTimeout))
			}

			return transport.Message{}, err
		}
		if err := w.admit(msg); err != nil {
			return transport.Message{}, err
		}
		if match(msg) {
			return msg, nil
		}
		w.held = append(w.held, msg)
	}
}

// snapshotTally completes the tally with transport counters and elapsed time.
func (w *worker) snapshotTally() transport.Tally {
	t := w.tally
	t.Sent = w.ep.Sent()
	t.Received = w.ep.Received()
	t.Elapsed = time.Since(w.start)

	return t
}
