package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsssp/bfs"
	"github.com/katalvlaran/dsssp/graph"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Vertex i*3+j is cell (i,j); we expect the start, then its 2 neighbors, then the next frontier, etc.
func ExampleBFS_gridTraversal() {
	var edges []graph.Edge
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			id := i*3 + j
			// connect to right neighbor
			if j+1 < 3 {
				edges = append(edges, graph.Edge{From: id, To: id + 1}, graph.Edge{From: id + 1, To: id})
			}
			// connect to down neighbor
			if i+1 < 3 {
				edges = append(edges, graph.Edge{From: id, To: id + 3}, graph.Edge{From: id + 3, To: id})
			}
		}
	}
	g, err := graph.New(9, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// BFS from top-left corner
	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Print the visit order; should follow non-decreasing Manhattan distance
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleBFSResult_PathTo finds the fewest-hop path in a network of 11 vertices.
// Two competing routes exist from 0 to 10: one of length 4, another length 3.
func ExampleBFSResult_PathTo() {
	pairs := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 10}, // route 1: 4 hops
		{0, 4}, {4, 5}, {5, 10}, // route 2: 3 hops
		{2, 6}, {6, 7}, {3, 8}, {8, 9}, // extra branches
	}
	g, err := graph.New(11, undirected(pairs...))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo(10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 10]
}

// ExampleWithMaxDepth shows applying WithMaxDepth to a linear chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleWithMaxDepth() {
	edges := make([]graph.Edge, 0, 9)
	for i := 0; i < 9; i++ {
		edges = append(edges, graph.Edge{From: i, To: i + 1})
	}
	g, _ := graph.New(10, edges)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2]
}

// ExampleWithContext demonstrates OnEnqueue, OnDequeue, OnVisit hooks
// alongside context cancellation on a 7-node chain.
func ExampleWithContext() {
	edges := make([]graph.Edge, 0, 6)
	for i := 0; i < 6; i++ {
		edges = append(edges, graph.Edge{From: i, To: i + 1})
	}
	g, _ := graph.New(7, edges)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, deqSeq, visSeq []string

	// after depth 4, we call cancel()
	hookVisit := func(id int, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%d@%d]", id, d))
		if d == 4 {
			cancel() // force mid-traversal cancellation
		}
		return nil
	}

	_, err := bfs.BFS(
		g, 0,
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id int, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%d@%d]", id, d)) }),
		bfs.WithOnDequeue(func(id int, d int) { deqSeq = append(deqSeq, fmt.Sprintf("D[%d@%d]", id, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Dequeued:", deqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[0@0] E[1@1] E[2@2] E[3@3] E[4@4]]
	// Dequeued: [D[0@0] D[1@1] D[2@2] D[3@3] D[4@4]]
	// Visited:  [V[0@0] V[1@1] V[2@2] V[3@3] V[4@4]]
}
