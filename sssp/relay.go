package sssp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsssp/distance"
	"github.com/katalvlaran/dsssp/transport"
)

// destinations returns the distinct owners of v's out-neighbors in order of
// first appearance. Every worker computes it from the replicated graph, so
// all of them agree on who sends, who receives and who replies.
func (w *worker) destinations(v int) []int {
	var (
		dests []int
		seen  = make(map[int]struct{})
	)
	for _, u := range w.g.Neighbors(v) {
		o := w.pm.Owner(u)
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		dests = append(dests, o)
	}

	return dests
}

// relay is the outbound half of a round, run by the owner of v.
func (w *worker) relay(ctx context.Context, v int, dests []int) error {
	// 1) Finalize exactly once.
	if err := w.table.Finalize(v); err != nil {
		return w.violation(InvariantFinalizeOnce, err)
	}
	dv := w.table.Read(v)
	w.tally.Finalized++
	w.opts.OnFinalize(w.round, v, dv)

	// 2) Candidate distance for every neighbor; infinity stays infinity.
	nd := distance.Successor(dv)

	// 3) One batch per destination owner, adjacency order kept.
	batches := make(map[int][]transport.Candidate, len(dests))
	for _, u := range w.g.Neighbors(v) {
		o := w.pm.Owner(u)
		batches[o] = append(batches[o], transport.Candidate{Vertex: u, Dist: nd})
	}

	// 4) Remote batches go out first so their owners work while we relax ours.
	for _, o := range dests {
		if o == w.rank {
			continue
		}
		err := w.ep.Send(ctx, o, transport.Message{
			Kind:       transport.KindCandidates,
			Round:      w.round,
			Candidates: batches[o],
		})
		if err != nil {
			return fmt.Errorf("sssp: worker %d relaying to %d: %w", w.rank, o, err)
		}
	}

	// 5) Local neighbors never touch the network.
	if local, ok := batches[w.rank]; ok {
		return w.reply(ctx, w.relaxBatch(local))
	}

	return nil
}

// absorb is the inbound half: take the owner's batch for this round,
// relax it and reply.
func (w *worker) absorb(ctx context.Context, owner int) error {
	msg, err := w.await(ctx, InvariantRoundSync, true, func(m transport.Message) bool {
		return m.Kind == transport.KindCandidates && m.From == owner && m.Round == w.round
	})
	if err != nil {
		return err
	}

	return w.reply(ctx, w.relaxBatch(msg.Candidates))
}

// relaxBatch applies TryRelax to each candidate and returns those that improved.
func (w *worker) relaxBatch(batch []transport.Candidate) []transport.Candidate {
	var improved []transport.Candidate
	for _, c := range batch {
		ok := w.table.TryRelax(c.Vertex, c.Dist)
		countRelax(ok)
		if !ok {
			w.tally.Rejected++

			continue
		}
		w.tally.Relaxed++
		improved = append(improved, c)
	}

	return improved
}

// reply delivers this destination's single answer for the round. The
// coordinator folds its own answer straight into the frontier.
func (w *worker) reply(ctx context.Context, improved []transport.Candidate) error {
	if w.isCoordinator() {
		w.enqueue(improved)

		return nil
	}

	err := w.ep.Send(ctx, w.coord, transport.Message{
		Kind:       transport.KindAck,
		Round:      w.round,
		Candidates: improved,
	})
	if err != nil {
		return fmt.Errorf("sssp: worker %d acknowledging round %d: %w", w.rank, w.round, err)
	}

	return nil
}
