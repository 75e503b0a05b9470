// Package builder provides deterministic, composable constructors for the
// unweighted directed graphs consumed by the sssp and bfs packages.
//
// Every constructor is a Constructor value; BuildGraph applies them in order
// as a disjoint union, each claiming the next block of consecutive vertex
// ids, and freezes the result into an immutable *graph.Graph.
//
// The package offers the following key components:
//
//   - Topologies:
//     – Path(n):            0→1→…→n-1.
//     – Cycle(n):           i→(i+1) mod n.
//     – Star(n):            first id is the center, center→leaf.
//     – Complete(n):        every ordered pair i≠j.
//     – Grid(rows, cols):   row-major cells, right and down edges.
//     – RandomSparse(n, p): each admissible edge kept with probability p.
//     – Isolated(n):        n vertices without edges.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithUndirected:      emit every edge in both directions.
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinGridDim, …
//     – MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens prefixing constructor errors.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical edge lists.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) for invalid build parameters.
//   - Documented algorithmic complexity per constructor.
package builder
