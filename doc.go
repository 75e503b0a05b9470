// Package dsssp computes single-source shortest paths on unweighted directed
// graphs with a group of cooperating workers, each owning a slice of the
// vertices.
//
// 🚀 What is dsssp?
//
//	A small, dependency-light toolkit that brings together:
//		• Graph storage: immutable adjacency lists, binary / edge-list / DOT loaders
//		• Partitioning: vertex v lives on worker v mod P, in slot v div P
//		• A round-synchronous protocol: one vertex finalized per round,
//		  candidates batched per destination, one reply per destination
//		• A serial path for P = 1 built from the same parts
//		• Breadth-first search as a reference oracle
//
// ✨ Guarantees
//
//   - Every reachable vertex is finalized exactly once, at its BFS depth.
//   - Unreachable vertices report an explicit sentinel, never a number.
//   - A missing reply fails the run with a typed error instead of hanging.
//
// Everything is organized under these subpackages:
//
//	graph/     - immutable Graph, Edge and the input loaders
//	partition/ - owner / slot arithmetic
//	distance/  - per-worker distance table with finalize-once semantics
//	frontier/  - coordinator min-heap with FIFO tie-break
//	transport/ - in-process mailboxes, round-tagged messages
//	sssp/      - Run, the worker protocol, metrics and tracing
//	bfs/       - breadth-first search
//	builder/   - deterministic graph generators
//	report/    - text and CSV output
//	config/    - YAML and environment configuration
//	cmd/sssp/  - command-line front end
//
// Quick ASCII example, four workers:
//
//	    0───►1───►2───►3
//	   w0   w1   w2   w3
//
//	round 1 finalizes 0 on w0 and sends {1:1} to w1, round 4 finalizes 3,
//	round 5 finds the frontier empty and terminates.
//
//	go get github.com/katalvlaran/dsssp
package dsssp
