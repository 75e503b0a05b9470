// Package graph defines the read-only adjacency structure that every worker
// holds a full replica of, plus loaders for the supported input formats.
//
// Vertices are dense integer ids in [0, N). Each vertex keeps an ordered list
// of outgoing neighbor ids; the order edges were supplied in is preserved.
//
// Errors:
//
//	ErrBadVertexCount   - vertex count is negative.
//	ErrVertexOutOfRange - an edge endpoint or query id is outside [0, N).
//	ErrBadFormat        - an input stream does not match the expected format.
package graph

import "errors"

// Sentinel errors for graph construction and loading.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an id outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrBadFormat indicates malformed input data.
	ErrBadFormat = errors.New("graph: malformed input")
)

// Edge is a directed edge From→To. Weights are implicitly 1.
type Edge struct {
	// From is the tail vertex id.
	From int

	// To is the head vertex id.
	To int
}

// Graph is an immutable directed graph stored as compressed sparse rows.
//
// offsets has N+1 entries; the neighbors of v are targets[offsets[v]:offsets[v+1]].
// No method mutates the receiver, so a *Graph may be shared by any number of
// goroutines without locking.
type Graph struct {
	n       int
	offsets []int
	targets []int
}
