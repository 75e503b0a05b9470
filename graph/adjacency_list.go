package graph

import "fmt"

// New builds a Graph with n vertices from the given edge list.
// Edges leaving the same vertex keep their relative input order, so
// Neighbors(v) is deterministic for a fixed input.
//
// Complexity: O(n + len(edges)) time and space (counting sort by tail).
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	// 1) Validate every endpoint and count out-degrees.
	offsets := make([]int, n+1)
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge #%d %d→%d with n=%d", ErrVertexOutOfRange, i, e.From, e.To, n)
		}
		offsets[e.From+1]++
	}

	// 2) Prefix sums turn degrees into row starts.
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	// 3) Scatter heads into their rows, stable in input order.
	targets := make([]int, len(edges))
	cursor := make([]int, n)
	copy(cursor, offsets[:n])
	for _, e := range edges {
		targets[cursor[e.From]] = e.To
		cursor[e.From]++
	}

	return &Graph{n: n, offsets: offsets, targets: targets}, nil
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of directed edges.
func (g *Graph) M() int { return len(g.targets) }

// Has reports whether v is a valid vertex id.
func (g *Graph) Has(v int) bool { return v >= 0 && v < g.n }

// OutDegree returns the number of outgoing edges of v.
// It panics if v is out of range, like a slice index would.
func (g *Graph) OutDegree(v int) int {
	return g.offsets[v+1] - g.offsets[v]
}

// Neighbor returns the i-th outgoing neighbor of v.
func (g *Graph) Neighbor(v, i int) int {
	return g.targets[g.offsets[v]+i]
}

// Neighbors returns the outgoing neighbors of v in input order.
// The returned slice aliases internal storage and must not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.targets[g.offsets[v]:g.offsets[v+1]:g.offsets[v+1]]
}

// Edges returns a fresh copy of all edges, grouped by tail in ascending order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.targets))
	for v := 0; v < g.n; v++ {
		for _, u := range g.Neighbors(v) {
			out = append(out, Edge{From: v, To: u})
		}
	}

	return out
}
