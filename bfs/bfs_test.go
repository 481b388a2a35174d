package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbfs/bfs"
	"github.com/katalvlaran/lvlbfs/core"
	"github.com/katalvlaran/lvlbfs/dist"
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

func TestBaseline_Errors(t *testing.T) {
	g := mustGraph(t, 2, [][2]int32{{0, 1}})
	d := dist.NewVector(2)

	if err := bfs.Baseline(nil, 0, d); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if err := bfs.Baseline(g, 5, d); !errors.Is(err, bfs.ErrSourceRange) {
		t.Errorf("bad source: want ErrSourceRange, got %v", err)
	}
	if err := bfs.Baseline(g, -1, d); !errors.Is(err, bfs.ErrSourceRange) {
		t.Errorf("negative source: want ErrSourceRange, got %v", err)
	}
	if err := bfs.Baseline(g, 0, dist.NewVector(3)); !errors.Is(err, bfs.ErrVectorLength) {
		t.Errorf("short vector: want ErrVectorLength, got %v", err)
	}
}

// Scenario table from the kernel contract: path, star, disconnected,
// complete graphs with exact expected distances.
func TestBaseline_Scenarios(t *testing.T) {
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
			d := dist.NewVector(tc.n)
			require.NoError(t, bfs.Baseline(g, tc.source, d))
			assert.Equal(t, tc.want, d.Snapshot())
		})
	}
}

// TestBaseline_ResetsVector checks that stale distances from a previous
// run do not leak into the next one.
func TestBaseline_ResetsVector(t *testing.T) {
	g := mustGraph(t, 3, [][2]int32{{0, 1}})
	d := dist.NewVector(3)
	d.Fill(7)

	require.NoError(t, bfs.Baseline(g, 0, d))
	assert.Equal(t, []int32{0, 1, unreached}, d.Snapshot())
}
