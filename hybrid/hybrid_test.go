package hybrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbfs/bfs"
	"github.com/katalvlaran/lvlbfs/builder"
	"github.com/katalvlaran/lvlbfs/core"
	"github.com/katalvlaran/lvlbfs/dist"
	"github.com/katalvlaran/lvlbfs/hybrid"
)

const unreached = dist.Unreached

// mustGraph builds a CSR graph from an edge list over n vertices.
func mustGraph(t *testing.T, n int, edges [][2]int32) *core.Graph {
	t.Helper()
	adj := make([][]int32, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}
	offsets := make([]int64, n+1)
	var flat []int32
	for u, row := range adj {
		offsets[u+1] = offsets[u] + int64(len(row))
		flat = append(flat, row...)
	}
	g, err := core.New(offsets, flat)
	require.NoError(t, err)

	return g
}

func TestBFS_Errors(t *testing.T) {
	g := mustGraph(t, 2, [][2]int32{{0, 1}})

	if _, err := hybrid.BFS(nil, 0, dist.NewVector(2)); !errors.Is(err, hybrid.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := hybrid.BFS(g, 9, dist.NewVector(2)); !errors.Is(err, hybrid.ErrSourceRange) {
		t.Errorf("bad source: want ErrSourceRange, got %v", err)
	}
	if _, err := hybrid.BFS(g, 0, dist.NewVector(5)); !errors.Is(err, hybrid.ErrVectorLength) {
		t.Errorf("short vector: want ErrVectorLength, got %v", err)
	}
	if _, err := hybrid.BFS(g, 0, dist.NewVector(2), hybrid.WithWorkers(0)); !errors.Is(err, hybrid.ErrBadWorkers) {
		t.Errorf("zero workers: want ErrBadWorkers, got %v", err)
	}
	if _, err := hybrid.MultiSource(g, dist.NewVector(3)); !errors.Is(err, hybrid.ErrVectorLength) {
		t.Errorf("multi-source short vector: want ErrVectorLength, got %v", err)
	}
}

// TestBFS_Scenarios pins exact distances on the contract graphs for the
// single-source parallel kernel.
func TestBFS_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		edges  [][2]int32
		source int32
		want   []int32
	}{
		{"single vertex", 1, nil, 0, []int32{0}},
		{"path from head", 4, [][2]int32{{0, 1}, {1, 2}, {2, 3}}, 0, []int32{0, 1, 2, 3}},
		{"path from tail", 4, [][2]int32{{0, 1}, {1, 2}, {2, 3}}, 3,
			[]int32{unreached, unreached, unreached, 0}},
		{"disconnected", 5, [][2]int32{{0, 1}, {2, 3}, {3, 4}}, 0,
			[]int32{0, 1, unreached, unreached, unreached}},
		{"star", 5, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, 0, []int32{0, 1, 1, 1, 1}},
		{"complete K4", 4, [][2]int32{
			{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 2}, {1, 3},
			{2, 0}, {2, 1}, {2, 3}, {3, 0}, {3, 1}, {3, 2},
		}, 2, []int32{1, 1, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.n, tc.edges)
			for _, workers := range []int{1, 4} {
				d := dist.NewVector(tc.n)
				res, err := hybrid.BFS(g, tc.source, d, hybrid.WithWorkers(workers))
				require.NoError(t, err)
				assert.Equal(t, tc.want, d.Snapshot(), "workers=%d", workers)
				assert.Positive(t, res.Iterations)
			}
		})
	}
}

func TestMultiSource_Star(t *testing.T) {
	g := mustGraph(t, 5, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	d := dist.NewVector(5)
	res, err := hybrid.MultiSource(g, d)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 1, 1, 1}, d.Snapshot())
	assert.Equal(t, 5, res.Visited)
}

func TestMultiSource_IsolatedStaysUnreached(t *testing.T) {
	// Vertex 2 has neither in- nor out-edges; vertex 3 has only an
	// in-edge and becomes distance 1.
	g := mustGraph(t, 4, [][2]int32{{0, 1}, {1, 3}})
	d := dist.NewVector(4)
	_, err := hybrid.MultiSource(g, d)
	require.NoError(t, err)

	snap := d.Snapshot()
	assert.Equal(t, int32(0), snap[0])
	assert.Equal(t, int32(0), snap[1]) // has an out-edge, so it is a root
	assert.Equal(t, unreached, snap[2])
	assert.Equal(t, int32(1), snap[3])
}

// TestBFS_MatchesBaseline_Undirected is the oracle cross-check on
// random symmetric graphs, where the bottom-up sweep is exactly
// equivalent to classical BFS.
func TestBFS_MatchesBaseline_Undirected(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		g, err := builder.RandomUndirected(300, 0.02, builder.WithSeed(seed))
		require.NoError(t, err)

		for _, source := range []int32{0, 17, 299} {
			want := dist.NewVector(300)
			require.NoError(t, bfs.Baseline(g, source, want))

			got := dist.NewVector(300)
			_, err := hybrid.BFS(g, source, got, hybrid.WithWorkers(8))
			require.NoError(t, err)

			assert.Equal(t, want.Snapshot(), got.Snapshot(),
				"seed=%d source=%d", seed, source)
		}
	}
}

// TestBFS_MatchesBaseline_DirectedShallow cross-checks sparse directed
// graphs whose traversals stay top-down (the estimated work never
// crosses the remainder-materialization threshold).
func TestBFS_MatchesBaseline_DirectedShallow(t *testing.T) {
	g, err := builder.RandomDirected(400, 0.003, builder.WithSeed(3))
	require.NoError(t, err)

	for _, source := range []int32{0, 100, 399} {
		want := dist.NewVector(400)
		require.NoError(t, bfs.Baseline(g, source, want))

		got := dist.NewVector(400)
		_, err := hybrid.BFS(g, source, got, hybrid.WithWorkers(4))
		require.NoError(t, err)

		assert.Equal(t, want.Snapshot(), got.Snapshot(), "source=%d", source)
	}
}

// TestDistancesDeterministic runs the kernel with different worker
// counts; frontier ordering differs, distances must not.
func TestDistancesDeterministic(t *testing.T) {
	g, err := builder.RandomUndirected(500, 0.01, builder.WithSeed(11))
	require.NoError(t, err)

	var want []int32
	for _, workers := range []int{1, 2, 8} {
		d := dist.NewVector(500)
		_, err := hybrid.MultiSource(g, d, hybrid.WithWorkers(workers))
		require.NoError(t, err)
		if want == nil {
			want = d.Snapshot()
			continue
		}
		assert.Equal(t, want, d.Snapshot(), "workers=%d", workers)
	}
}

// TestMultiSource_PerformanceSmoke mirrors the reference harness's
// medium configuration: the traversal must terminate well under the
// iteration bound and reach every non-isolated vertex.
func TestMultiSource_PerformanceSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping generator-heavy smoke test in -short mode")
	}

	g, err := builder.RandomDirected(10_000, 0.001, builder.WithSeed(42))
	require.NoError(t, err)

	d := dist.NewVector(10_000)
	res, err := hybrid.MultiSource(g, d)
	require.NoError(t, err)
	assert.Less(t, res.Iterations, 200)

	// Every vertex with an out-edge is a root, so at minimum all
	// non-isolated vertices are visited.
	snap := d.Snapshot()
	for u := int32(0); u < 10_000; u++ {
		deg, _ := g.OutDegree(u)
		if deg > 0 {
			assert.NotEqual(t, unreached, snap[u], "vertex %d", u)
		}
	}
}
