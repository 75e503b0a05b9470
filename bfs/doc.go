// Package bfs provides breadth-first search over a graph.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, distance.Infinity if unreached
//   - Parent: vertex → its predecessor in the BFS tree, NoParent otherwise
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	BFS is the single-process reference for the partitioned shortest-path
//	protocol in package sssp: on unit-weight graphs both must agree on every
//	distance, whatever the worker count.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order as stored in the graph, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth, Parent and visited slices)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
