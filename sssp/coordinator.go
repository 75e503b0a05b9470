package sssp

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/dsssp/transport"
)

// selectNext begins a round on the coordinator: it extracts the closest
// unsettled vertex and broadcasts it, or broadcasts termination when the
// frontier is exhausted.
func (w *worker) selectNext(ctx context.Context) (int, int64, bool, error) {
	if err := w.beginRound(w.round + 1); err != nil {
		return 0, 0, false, err
	}
	roundsTotal.Inc()
	w.roundStart = time.Now()

	item, ok := w.front.ExtractMin()
	if !ok {
		w.log.Debug().Uint64("round", w.round).Msg("frontier exhausted, terminating")
		err := w.ep.Broadcast(ctx, transport.Message{Kind: transport.KindTerminate, Round: w.round})
		if err != nil {
			return 0, 0, false, fmt.Errorf("sssp: terminate: %w", err)
		}

		return 0, 0, true, nil
	}

	w.order = append(w.order, Finalized{Round: w.round, Vertex: item.Vertex, Dist: item.Dist})
	err := w.ep.Broadcast(ctx, transport.Message{
		Kind:   transport.KindRound,
		Round:  w.round,
		Vertex: item.Vertex,
		Dist:   item.Dist,
	})
	if err != nil {
		return 0, 0, false, fmt.Errorf("sssp: round %d: %w", w.round, err)
	}

	return item.Vertex, item.Dist, false, nil
}

// enqueue inserts improved candidates into the frontier.
func (w *worker) enqueue(improved []transport.Candidate) {
	for _, c := range improved {
		w.front.Insert(c.Vertex, c.Dist)
	}
}

// collectAcks waits for exactly one Ack from every destination owner other
// than the coordinator. The round is over once the expected set is empty.
func (w *worker) collectAcks(ctx context.Context, dests []int) error {
	expect := make(map[int]struct{}, len(dests))
	for _, o := range dests {
		if o != w.rank {
			expect[o] = struct{}{}
		}
	}

	for len(expect) > 0 {
		msg, err := w.await(ctx, InvariantOneReply, true, func(m transport.Message) bool {
			return m.Kind == transport.KindAck && m.Round == w.round
		})
		if err != nil {
			return err
		}
		if _, ok := expect[msg.From]; !ok {
			return w.violation(InvariantOneReply,
				fmt.Errorf("%w: ack from worker %d", ErrDuplicateReply, msg.From))
		}
		delete(expect, msg.From)
		w.enqueue(msg.Candidates)
	}
	roundDuration.Observe(time.Since(w.roundStart).Seconds())

	return nil
}

// gather collects one Report from every other worker after termination.
func (w *worker) gather(ctx context.Context) error {
	w.reports = make(map[int]transport.Message, w.pm.Workers()-1)
	for len(w.reports) < w.pm.Workers()-1 {
		msg, err := w.await(ctx, InvariantRoundSync, true, func(m transport.Message) bool {
			return m.Kind == transport.KindReport
		})
		if err != nil {
			return err
		}
		if _, dup := w.reports[msg.From]; dup {
			return w.violation(InvariantOneReply,
				fmt.Errorf("%w: report from worker %d", ErrDuplicateReply, msg.From))
		}
		if want := w.pm.SlotCount(msg.From, w.g.N()); len(msg.Distances) != want {
			return w.violation(InvariantRoundSync,
				fmt.Errorf("%w: report from worker %d has %d slots, want %d",
					ErrUnexpectedMessage, msg.From, len(msg.Distances), want))
		}
		w.reports[msg.From] = msg
	}
	if len(w.held) > 0 {
		return w.violation(InvariantRoundSync,
			fmt.Errorf("%w: %s undelivered at termination", ErrUnexpectedMessage, w.held[0]))
	}

	return nil
}

// result assembles the run outcome from the coordinator's own table and the
// gathered reports.
func (w *worker) result() *Result {
	n, p := w.g.N(), w.pm.Workers()
	res := &Result{
		Source:      w.opts.Source,
		Workers:     p,
		Coordinator: w.rank,
		Distances:   make([]int64, n),
		Order:       w.order,
		Rounds:      w.round,
		Stats:       make([]WorkerStats, p),
	}

	fill := func(rank int, slots []int64, t transport.Tally) {
		for s, d := range slots {
			res.Distances[w.pm.Vertex(rank, s)] = d
		}
		res.Stats[rank] = statsFromTally(rank, len(slots), t)
	}
	fill(w.rank, w.table.Snapshot(), w.snapshotTally())
	for rank, msg := range w.reports {
		fill(rank, msg.Distances, msg.Tally)
	}

	return res
}

func statsFromTally(rank, slots int, t transport.Tally) WorkerStats {
	return WorkerStats{
		Rank:      rank,
		Slots:     slots,
		Finalized: t.Finalized,
		Relaxed:   t.Relaxed,
		Rejected:  t.Rejected,
		Sent:      t.Sent,
		Received:  t.Received,
		Elapsed:   t.Elapsed,
	}
}
