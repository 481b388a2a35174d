// SPDX-License-Identifier: MIT
// Package: lvlbfs/verify
//
// verify.go — oracle comparison for single- and multi-source runs.

package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlbfs/bfs"
	"github.com/katalvlaran/lvlbfs/core"
	"github.com/katalvlaran/lvlbfs/dist"
)

// Sentinel errors for verification outcomes.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("verify: graph is nil")

	// ErrVectorLength is returned when the candidate vector is not
	// sized to the graph's vertex count.
	ErrVectorLength = errors.New("verify: distance vector length mismatch")

	// ErrMismatch indicates the candidate distances disagree with the
	// oracle (or with the multi-source contract).
	ErrMismatch = errors.New("verify: distance mismatch")
)

// Distances re-runs the serial oracle from source and compares the
// candidate vector elementwise. Returns nil when every distance agrees,
// ErrMismatch (wrapped with the first offending vertex) otherwise.
func Distances(g *core.Graph, source int32, candidate *dist.Vector) error {
	if g == nil {
		return ErrGraphNil
	}
	if candidate.Len() != g.VertexCount() {
		return fmt.Errorf("Distances: len(d)=%d, V=%d: %w",
			candidate.Len(), g.VertexCount(), ErrVectorLength)
	}

	want := dist.NewVector(g.VertexCount())
	if err := bfs.Baseline(g, source, want); err != nil {
		return fmt.Errorf("Distances: oracle: %w", err)
	}

	for u := int32(0); int(u) < g.VertexCount(); u++ {
		if got, exp := candidate.Load(u), want.Load(u); got != exp {
			return fmt.Errorf("Distances: vertex %d: got %d, oracle %d: %w",
				u, got, exp, ErrMismatch)
		}
	}

	return nil
}

// MultiSource checks a multi-source run, where every vertex with at
// least one out-edge is a root:
//
//   - out-degree ≥ 1            → distance 0,
//   - out-degree 0, in-degree ≥ 1 → distance 1,
//   - no edges at all           → Unreached.
func MultiSource(g *core.Graph, candidate *dist.Vector) error {
	if g == nil {
		return ErrGraphNil
	}
	v := g.VertexCount()
	if candidate.Len() != v {
		return fmt.Errorf("MultiSource: len(d)=%d, V=%d: %w", candidate.Len(), v, ErrVectorLength)
	}

	view := g.RawView()
	inDeg := make([]int32, v)
	for _, t := range view.Edges {
		inDeg[t]++
	}

	for u := 0; u < v; u++ {
		got := candidate.Load(int32(u))
		var exp int32
		switch {
		case view.Offsets[u] < view.Offsets[u+1]:
			exp = 0
		case inDeg[u] > 0:
			exp = 1
		default:
			exp = dist.Unreached
		}
		if got != exp {
			return fmt.Errorf("MultiSource: vertex %d: got %d, want %d: %w",
				u, got, exp, ErrMismatch)
		}
	}

	return nil
}
