package sssp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsssp/builder"
	"github.com/katalvlaran/dsssp/sssp"
)

// ExampleRun computes distances on a four-vertex path split over two workers.
func ExampleRun() {
	g, _ := builder.BuildGraph(nil, builder.Path(4))

	res, err := sssp.Run(context.Background(), g, sssp.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Distances)
	fmt.Println("rounds:", res.Rounds)
	for _, f := range res.Order {
		fmt.Printf("round %d: vertex %d at %d\n", f.Round, f.Vertex, f.Dist)
	}
	// Output:
	// [0 1 2 3]
	// rounds: 5
	// round 1: vertex 0 at 0
	// round 2: vertex 1 at 1
	// round 3: vertex 2 at 2
	// round 4: vertex 3 at 3
}

// ExampleResult_Reachable shows how unreachable vertices are reported.
func ExampleResult_Reachable() {
	g, _ := builder.BuildGraph(nil, builder.Star(3), builder.Isolated(1))

	res, _ := sssp.Run(context.Background(), g, sssp.WithWorkers(3))
	for v := range res.Distances {
		fmt.Println(v, res.Reachable(v))
	}
	// Output:
	// 0 true
	// 1 true
	// 2 true
	// 3 false
}
