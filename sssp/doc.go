// Package sssp computes single-source shortest paths over an unweighted
// directed graph whose vertices are partitioned across P workers that share
// no memory and cooperate only by message passing.
//
// Vertex v is owned by worker v mod P. The owner of the source is the
// coordinator: it alone holds the frontier of candidate distances and drives
// the computation in rounds.
//
// One round:
//
//  1. The coordinator extracts the closest unsettled vertex v and broadcasts it.
//  2. The owner of v finalizes it and relays d(v)+1 to every worker owning an
//     out-neighbor of v, one batch per destination. Neighbors it owns itself
//     are relaxed locally without touching the network.
//  3. Each destination relaxes its batch and replies to the coordinator
//     exactly once with the candidates that improved, possibly none.
//  4. The coordinator inserts the improvements into the frontier and starts
//     the next round only after every expected reply has arrived.
//
// When the frontier is exhausted the coordinator broadcasts a termination
// sentinel; the round that carries it is counted. Workers then report their
// distances to the coordinator, which assembles the Result.
//
// Every message carries its round number. A worker accepts messages for its
// current round or the next one and holds early arrivals until they are due;
// anything else is a protocol violation returned as an *InvariantError
// naming the broken invariant (finalize-once, one-reply-per-destination or
// round-synchronization). A reply that does not arrive within
// Options.RoundTimeout fails the run with ErrRoundTimeout.
//
// With P == 1 the network is bypassed and the same table and frontier are
// driven serially.
//
// Example:
//
//	res, err := sssp.Run(ctx, g, sssp.Source(0), sssp.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Distances)
package sssp
