// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// impl_scale_free.go — preferential-attachment generator.
//
// Canonical model:
//   - Vertices arrive one at a time. Each newcomer u emits roughly e/n
//     arcs whose targets are drawn from a pool of prior edge endpoints,
//     so high-degree vertices keep attracting edges (rich get richer).
//   - The resulting out-degree distribution is heavily skewed, which is
//     the workload the bottom-up step's dynamic chunking is tuned for.
//
// Contract:
//   - n ≥ MinVertices (else ErrTooFewVertices).
//   - e ≥ 0 (else ErrBadEdgeCount).
//   - An RNG is required whenever e > 0 (else ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlbfs/core"
)

// ScaleFree samples a directed scale-free graph with n vertices and
// approximately e edges via preferential attachment.
func ScaleFree(n, e int, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts)
	if n < MinVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodScaleFree, n, MinVertices, ErrTooFewVertices)
	}
	if e < 0 {
		return nil, fmt.Errorf("%s: e=%d: %w", methodScaleFree, e, ErrBadEdgeCount)
	}
	if cfg.rng == nil && e > 0 {
		return nil, fmt.Errorf("%s: %w", methodScaleFree, ErrNeedRandSource)
	}

	perVertex := 0
	if n > 1 {
		perVertex = e / (n - 1)
		if perVertex < 1 {
			perVertex = 1
		}
	}

	// pool holds one entry per edge endpoint seen so far; sampling it
	// uniformly is sampling vertices proportional to degree.
	pool := make([]int32, 0, 2*e+1)
	pool = append(pool, 0)

	var src, dst []int32
	for u := 1; u < n && len(src) < e; u++ {
		for k := 0; k < perVertex && len(src) < e; k++ {
			t := pool[cfg.rng.Intn(len(pool))]
			if t == int32(u) {
				continue
			}
			src = append(src, int32(u))
			dst = append(dst, t)
			pool = append(pool, int32(u), t)
		}
	}

	return csrFromPairs(n, src, dst)
}
