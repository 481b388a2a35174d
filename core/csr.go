// SPDX-License-Identifier: MIT
// Package: lvlbfs/core
//
// csr.go — the immutable CSR Graph and its constructor.

package core

import "fmt"

// Graph is a directed graph in compressed-sparse-row form.
//
// offsets[u] and offsets[u+1] delimit the out-edges of u inside edges.
// The zero value is not usable; construct via New.
type Graph struct {
	offsets   []int64
	edges     []int32
	avgDegree float64
}

// New takes ownership of offsets and edges and returns a validated Graph.
//
// The slices must not be mutated by the caller afterwards; Graph shares
// them rather than copying. Returns ErrNoVertices, ErrOffsetsShape or
// ErrEdgeRange (wrapped with context) when the shape is invalid.
func New(offsets []int64, edges []int32) (*Graph, error) {
	if len(offsets) < 2 {
		return nil, fmt.Errorf("New: len(offsets)=%d: %w", len(offsets), ErrNoVertices)
	}
	if offsets[0] != 0 {
		return nil, fmt.Errorf("New: offsets[0]=%d: %w", offsets[0], ErrOffsetsShape)
	}
	v := len(offsets) - 1
	if offsets[v] != int64(len(edges)) {
		return nil, fmt.Errorf("New: offsets[%d]=%d != len(edges)=%d: %w",
			v, offsets[v], len(edges), ErrOffsetsShape)
	}
	for i := 0; i < v; i++ {
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("New: offsets decrease at %d (%d > %d): %w",
				i, offsets[i], offsets[i+1], ErrOffsetsShape)
		}
	}
	for i, e := range edges {
		if e < 0 || int(e) >= v {
			return nil, fmt.Errorf("New: edges[%d]=%d, V=%d: %w", i, e, v, ErrEdgeRange)
		}
	}

	return &Graph{
		offsets:   offsets,
		edges:     edges,
		avgDegree: float64(len(edges)) / float64(v),
	}, nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return len(g.offsets) - 1 }

// EdgeCount returns E.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AvgDegree returns E/V, cached at construction.
func (g *Graph) AvgDegree() float64 { return g.avgDegree }

// OutDegree returns the number of out-edges of u,
// or ErrVertexRange when u is outside [0, V).
func (g *Graph) OutDegree(u int32) (int, error) {
	if u < 0 || int(u) >= g.VertexCount() {
		return 0, fmt.Errorf("OutDegree(%d): %w", u, ErrVertexRange)
	}

	return int(g.offsets[u+1] - g.offsets[u]), nil
}

// Neighbors returns the out-neighbors of u as a sub-slice of the shared
// edge array. The result is a borrow: callers must treat it as
// read-only. Returns ErrVertexRange when u is outside [0, V).
func (g *Graph) Neighbors(u int32) ([]int32, error) {
	if u < 0 || int(u) >= g.VertexCount() {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexRange)
	}

	return g.edges[g.offsets[u]:g.offsets[u+1]], nil
}

// Validate re-runs the construction invariants and reports whether they
// all still hold. A Graph produced by New always validates; this exists
// for defensive checks on graphs whose backing slices crossed an API
// boundary.
func (g *Graph) Validate() bool {
	if len(g.offsets) < 2 || g.offsets[0] != 0 {
		return false
	}
	v := len(g.offsets) - 1
	if g.offsets[v] != int64(len(g.edges)) {
		return false
	}
	for i := 0; i < v; i++ {
		if g.offsets[i] > g.offsets[i+1] {
			return false
		}
	}
	for _, e := range g.edges {
		if e < 0 || int(e) >= v {
			return false
		}
	}

	return true
}
