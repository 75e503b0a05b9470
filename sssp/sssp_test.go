package sssp_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsssp/bfs"
	"github.com/katalvlaran/dsssp/builder"
	"github.com/katalvlaran/dsssp/graph"
	"github.com/katalvlaran/dsssp/sssp"
)

// chain returns the directed path 0→1→…→n-1.
func chain(t testing.TB, n int) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(n))
	require.NoError(t, err)

	return g
}

// sumStats totals the per-worker tallies of res.
func sumStats(res *sssp.Result) (slots, finalized int) {
	for _, s := range res.Stats {
		slots += s.Slots
		finalized += s.Finalized
	}

	return slots, finalized
}

func TestRun_NilGraph(t *testing.T) {
	res, err := sssp.Run(context.Background(), nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, sssp.ErrNilGraph)
}

func TestRun_EmptyGraph(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	res, err := sssp.Run(context.Background(), g, sssp.WithWorkers(3))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, sssp.ErrEmptyGraph)
}

func TestRun_OptionViolations(t *testing.T) {
	g := chain(t, 3)
	cases := map[string]sssp.Option{
		"zero workers":     sssp.WithWorkers(0),
		"negative timeout": sssp.WithRoundTimeout(-time.Second),
		"negative mailbox": sssp.WithMailboxSize(-1),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sssp.Run(context.Background(), g, opt)
			assert.ErrorIs(t, err, sssp.ErrOptionViolation)
		})
	}
}

func TestRun_PathTwoWorkers(t *testing.T) {
	res, err := sssp.Run(context.Background(), chain(t, 4), sssp.WithWorkers(2))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 2, 3}, res.Distances)
	assert.Equal(t, uint64(5), res.Rounds, "four finalizing rounds plus the terminating one")
	assert.Equal(t, []sssp.Finalized{
		{Round: 1, Vertex: 0, Dist: 0},
		{Round: 2, Vertex: 1, Dist: 1},
		{Round: 3, Vertex: 2, Dist: 2},
		{Round: 4, Vertex: 3, Dist: 3},
	}, res.Order)
	assert.Equal(t, 0, res.Coordinator)
	assert.Equal(t, 2, res.Workers)
	require.Len(t, res.Stats, 2)
	assert.Equal(t, 2, res.Stats[0].Finalized)
	assert.Equal(t, 2, res.Stats[1].Finalized)
	assert.False(t, res.SourceFallback)
}

func TestRun_CoordinatorFollowsSource(t *testing.T) {
	res, err := sssp.Run(context.Background(), chain(t, 6), sssp.WithWorkers(4), sssp.Source(3))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Coordinator)
	assert.Equal(t, 3, res.Source)
	want := []int64{sssp.Unreachable, sssp.Unreachable, sssp.Unreachable, 0, 1, 2}
	assert.Equal(t, want, res.Distances)
	assert.False(t, res.Reachable(0))
	assert.True(t, res.Reachable(5))
	assert.False(t, res.Reachable(-1))
}

func TestRun_IsolatedVertexUnreachable(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Isolated(1))
	require.NoError(t, err)

	for _, p := range []int{1, 2, 3, 4} {
		t.Run(fmt.Sprintf("P=%d", p), func(t *testing.T) {
			res, err := sssp.Run(context.Background(), g, sssp.WithWorkers(p))
			require.NoError(t, err)
			assert.Equal(t, []int64{0, 1, 2, sssp.Unreachable}, res.Distances)
			assert.Equal(t, uint64(4), res.Rounds)
		})
	}
}

func TestRun_SourceWithoutEdges(t *testing.T) {
	g, err := graph.New(3, nil)
	require.NoError(t, err)

	for _, p := range []int{1, 3} {
		res, err := sssp.Run(context.Background(), g, sssp.WithWorkers(p))
		require.NoError(t, err)
		assert.Equal(t, []int64{0, sssp.Unreachable, sssp.Unreachable}, res.Distances)
		assert.Equal(t, uint64(2), res.Rounds)
		assert.Len(t, res.Order, 1)
	}
}

func TestRun_SourceFallback(t *testing.T) {
	for _, src := range []int{-1, 4, 99} {
		res, err := sssp.Run(context.Background(), chain(t, 4), sssp.WithWorkers(2), sssp.Source(src))
		require.NoError(t, err)
		assert.True(t, res.SourceFallback)
		assert.Equal(t, sssp.DefaultSource, res.Source)
		assert.Equal(t, []int64{0, 1, 2, 3}, res.Distances)
	}
}

func TestRun_FallbackSource(t *testing.T) {
	res, err := sssp.Run(context.Background(), chain(t, 4),
		sssp.WithWorkers(2), sssp.Source(10), sssp.WithFallbackSource(2))
	require.NoError(t, err)
	assert.True(t, res.SourceFallback)
	assert.Equal(t, 2, res.Source)
	assert.Equal(t, []int64{sssp.Unreachable, sssp.Unreachable, 0, 1}, res.Distances)

	// An out-of-range fallback resolves to DefaultSource.
	res, err = sssp.Run(context.Background(), chain(t, 4), sssp.Source(10), sssp.WithFallbackSource(-3))
	require.NoError(t, err)
	assert.Equal(t, sssp.DefaultSource, res.Source)
}

func TestRun_SingleVertex(t *testing.T) {
	g, err := graph.New(1, nil)
	require.NoError(t, err)

	for _, p := range []int{1, 2, 5} {
		res, err := sssp.Run(context.Background(), g, sssp.WithWorkers(p))
		require.NoError(t, err)
		assert.Equal(t, []int64{0}, res.Distances)
		assert.Len(t, res.Stats, p)
	}
}

// TestRun_MatchesBFS checks every worker count against breadth-first search,
// which computes the same unit-weight distances.
func TestRun_MatchesBFS(t *testing.T) {
	graphs := map[string][]builder.Constructor{
		"sparse":   {builder.RandomSparse(60, 0.05)},
		"grid":     {builder.Grid(6, 7)},
		"cycle":    {builder.Cycle(17)},
		"complete": {builder.Complete(8)},
		"union":    {builder.Star(5), builder.Path(4), builder.Isolated(2), builder.Grid(3, 3)},
	}
	for name, cons := range graphs {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, cons...)
		require.NoError(t, err, name)

		for _, src := range []int{0, g.N() / 2} {
			want, err := bfs.BFS(g, src)
			require.NoError(t, err)

			for _, p := range []int{1, 2, 3, 4, g.N()} {
				t.Run(fmt.Sprintf("%s/src=%d/P=%d", name, src, p), func(t *testing.T) {
					res, err := sssp.Run(context.Background(), g, sssp.WithWorkers(p), sssp.Source(src))
					require.NoError(t, err)
					assert.Equal(t, want.Depth, res.Distances)

					reachable := 0
					for v := 0; v < g.N(); v++ {
						if res.Reachable(v) {
							reachable++
						}
					}
					assert.Len(t, res.Order, reachable)
					assert.Equal(t, uint64(reachable+1), res.Rounds)

					slots, finalized := sumStats(res)
					assert.Equal(t, g.N(), slots)
					assert.Equal(t, reachable, finalized)

					// Finalizations come out in non-decreasing distance, one per round.
					for i, f := range res.Order {
						assert.Equal(t, uint64(i+1), f.Round)
						assert.Equal(t, res.Distances[f.Vertex], f.Dist)
						if i > 0 {
							assert.LessOrEqual(t, res.Order[i-1].Dist, f.Dist)
						}
					}
				})
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7), builder.WithUndirected()},
		builder.RandomSparse(40, 0.08))
	require.NoError(t, err)

	first, err := sssp.Run(context.Background(), g, sssp.WithWorkers(3))
	require.NoError(t, err)
	second, err := sssp.Run(context.Background(), g, sssp.WithWorkers(3))
	require.NoError(t, err)
	serial, err := sssp.Run(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, first.Distances, second.Distances)
	assert.Equal(t, first.Distances, serial.Distances)
	assert.Equal(t, first.Rounds, serial.Rounds)
}

func TestRun_OnFinalize(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 5))
	require.NoError(t, err)

	for _, p := range []int{1, 3} {
		t.Run(fmt.Sprintf("P=%d", p), func(t *testing.T) {
			var (
				mu   sync.Mutex
				seen = make(map[int]int64)
			)
			res, err := sssp.Run(context.Background(), g,
				sssp.WithWorkers(p),
				sssp.WithOnFinalize(func(_ uint64, v int, d int64) {
					mu.Lock()
					defer mu.Unlock()
					_, dup := seen[v]
					assert.False(t, dup, "vertex %d finalized twice", v)
					seen[v] = d
				}))
			require.NoError(t, err)
			require.Len(t, seen, g.N())
			for v, d := range seen {
				assert.Equal(t, res.Distances[v], d)
			}
		})
	}
}

func TestRun_ContextCancel(t *testing.T) {
	g := chain(t, 2000)
	for _, p := range []int{1, 2} {
		t.Run(fmt.Sprintf("P=%d", p), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			res, err := sssp.Run(ctx, g,
				sssp.WithWorkers(p),
				sssp.WithOnFinalize(func(_ uint64, v int, _ int64) {
					if v == 10 {
						cancel()
					}
				}))
			assert.Nil(t, res)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}
