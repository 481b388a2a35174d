// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// impl_random.go — uniform-random (Erdős–Rényi-like) constructors.
//
// Canonical model:
//   - RandomDirected: include each ordered pair (u,v), u≠v, independently
//     with probability p. Trials run in lexicographic (u,v) order, so the
//     CSR rows come out sorted naturally.
//   - RandomUndirected: enumerate unordered pairs {u,v}, u<v, once; each
//     accepted pair contributes both arcs.
//
// Contract:
//   - n ≥ MinVertices (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required whenever 0 < p < 1 (else ErrNeedRandSource).
//   - Deterministic outcomes for a fixed seed due to the fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlbfs/core"
)

// RandomDirected samples a directed uniform-random graph over n vertices
// with independent edge probability density.
func RandomDirected(n int, density float64, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts)
	if err := checkRandomParams(methodRandomDirected, n, density, cfg); err != nil {
		return nil, err
	}

	offsets := make([]int64, n+1)
	edges := make([]int32, 0, int(float64(n)*float64(n)*density))

	var pos int64
	for u := 0; u < n; u++ {
		offsets[u] = pos
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if keepEdge(cfg, density) {
				edges = append(edges, int32(v))
				pos++
			}
		}
	}
	offsets[n] = pos

	return core.New(offsets, edges)
}

// RandomUndirected samples an undirected uniform-random graph: unordered
// pairs are tried once, and every accepted pair is stored as two arcs.
func RandomUndirected(n int, density float64, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts)
	if err := checkRandomParams(methodRandomUndirected, n, density, cfg); err != nil {
		return nil, err
	}

	// Per-vertex adjacency rows; appends stay sorted because trials run
	// in increasing (u,v) order on both endpoints.
	adj := make([][]int32, n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if keepEdge(cfg, density) {
				adj[u] = append(adj[u], int32(v))
				adj[v] = append(adj[v], int32(u))
			}
		}
	}

	return flattenAdjacency(adj)
}

// checkRandomParams validates the shared (n, density, rng) contract.
func checkRandomParams(method string, n int, density float64, cfg builderConfig) error {
	if n < MinVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinVertices, ErrTooFewVertices)
	}
	if density < probMin || density > probMax {
		return fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			method, density, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && density > probMin && density < probMax {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// keepEdge runs one Bernoulli trial. The degenerate densities 0 and 1
// need no RNG draw, keeping them usable without a seed.
func keepEdge(cfg builderConfig, density float64) bool {
	switch density {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < density
	}
}

// flattenAdjacency assembles per-vertex rows into a CSR graph.
func flattenAdjacency(adj [][]int32) (*core.Graph, error) {
	n := len(adj)
	offsets := make([]int64, n+1)
	var total int64
	for u, row := range adj {
		offsets[u] = total
		total += int64(len(row))
	}
	offsets[n] = total

	edges := make([]int32, 0, total)
	for _, row := range adj {
		edges = append(edges, row...)
	}

	return core.New(offsets, edges)
}
