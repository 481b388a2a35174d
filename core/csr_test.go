package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlbfs/core"
)

// pathGraph builds the 4-vertex directed path 0→1→2→3.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New([]int64{0, 1, 2, 3, 3}, []int32{1, 2, 3})
	require.NoError(t, err)

	return g
}

func TestNew_Shape(t *testing.T) {
	g := pathGraph(t)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.InDelta(t, 0.75, g.AvgDegree(), 1e-12)
	assert.True(t, g.Validate())
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int64
		edges   []int32
		want    error
	}{
		{"empty offsets", nil, nil, core.ErrNoVertices},
		{"single offset", []int64{0}, nil, core.ErrNoVertices},
		{"nonzero first", []int64{1, 1}, nil, core.ErrOffsetsShape},
		{"last mismatch", []int64{0, 2}, []int32{0}, core.ErrOffsetsShape},
		{"decreasing", []int64{0, 2, 1, 3}, []int32{0, 1, 2}, core.ErrOffsetsShape},
		{"edge too large", []int64{0, 1}, []int32{1}, core.ErrEdgeRange},
		{"edge negative", []int64{0, 1}, []int32{-1}, core.ErrEdgeRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.New(tc.offsets, tc.edges)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNeighbors_Borrow(t *testing.T) {
	g := pathGraph(t)

	nbr, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, nbr)

	// Sink vertex has an empty, non-nil view.
	nbr, err = g.Neighbors(3)
	require.NoError(t, err)
	assert.Empty(t, nbr)
}

func TestNeighbors_Range(t *testing.T) {
	g := pathGraph(t)
	if _, err := g.Neighbors(-1); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("Neighbors(-1): want ErrVertexRange, got %v", err)
	}
	if _, err := g.Neighbors(4); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("Neighbors(4): want ErrVertexRange, got %v", err)
	}
	if _, err := g.OutDegree(4); !errors.Is(err, core.ErrVertexRange) {
		t.Errorf("OutDegree(4): want ErrVertexRange, got %v", err)
	}
}

func TestOutDegree(t *testing.T) {
	g := pathGraph(t)
	for u, want := range map[int32]int{0: 1, 1: 1, 2: 1, 3: 0} {
		got, err := g.OutDegree(u)
		require.NoError(t, err)
		assert.Equal(t, want, got, "OutDegree(%d)", u)
	}
}

func TestRawView_Aliases(t *testing.T) {
	g := pathGraph(t)
	v := g.RawView()
	require.Len(t, v.Offsets, 5)
	require.Len(t, v.Edges, 3)

	nbr, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, v.Edges[v.Offsets[1]:v.Offsets[2]], nbr)
}
