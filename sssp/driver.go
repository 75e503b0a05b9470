package sssp

import (
	"context"
	"slices"
	"time"

	"github.com/katalvlaran/dsssp/transport"
)

// run is the round loop executed by every worker until termination,
// followed by the final gather.
func (w *worker) run(ctx context.Context) error {
	w.start = time.Now()
	w.log.Debug().
		Int("slots", w.table.Slots()).
		Bool("coordinator", w.isCoordinator()).
		Msg("worker started")

	for {
		v, d, done, err := w.next(ctx)
		if err != nil {
			return err
		}
		if done {
			break
		}
		if err := w.step(ctx, v, d); err != nil {
			return err
		}
	}

	return w.finish(ctx)
}

// next begins the next round and returns its vertex, or done on termination.
// The coordinator decides; everyone else waits for its broadcast.
func (w *worker) next(ctx context.Context) (v int, d int64, done bool, err error) {
	if w.isCoordinator() {
		return w.selectNext(ctx)
	}

	// The broadcast is not a reply: its wait is bounded only by ctx, which
	// the group cancels as soon as the coordinator fails.
	msg, err := w.await(ctx, InvariantRoundSync, false, func(m transport.Message) bool {
		return m.From == w.coord && (m.Kind == transport.KindRound || m.Kind == transport.KindTerminate)
	})
	if err != nil {
		return 0, 0, false, err
	}
	if err := w.beginRound(msg.Round); err != nil {
		return 0, 0, false, err
	}
	if msg.Kind == transport.KindTerminate {
		w.log.Debug().Uint64("round", w.round).Msg("termination received")

		return 0, 0, true, nil
	}

	return msg.Vertex, msg.Dist, false, nil
}

// step runs one round on this worker: the owner of v relays, destinations
// absorb their batch, and the coordinator collects the replies.
func (w *worker) step(ctx context.Context, v int, d int64) error {
	owner := w.pm.Owner(v)
	dests := w.destinations(v)
	w.log.Debug().
		Uint64("round", w.round).
		Int("vertex", v).
		Int64("dist", d).
		Int("owner", owner).
		Ints("destinations", dests).
		Msg("round")

	switch {
	case owner == w.rank:
		if err := w.relay(ctx, v, dests); err != nil {
			return err
		}
	case slices.Contains(dests, w.rank):
		if err := w.absorb(ctx, owner); err != nil {
			return err
		}
	}

	if w.isCoordinator() {
		return w.collectAcks(ctx, dests)
	}

	return nil
}

// finish ships this worker's distances to the coordinator, or gathers
// them when this worker is the coordinator.
func (w *worker) finish(ctx context.Context) error {
	if w.isCoordinator() {
		return w.gather(ctx)
	}

	return w.ep.Send(ctx, w.coord, transport.Message{
		Kind:      transport.KindReport,
		Round:     w.round,
		Distances: w.table.Snapshot(),
		Tally:     w.snapshotTally(),
	})
}
