// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// impl_rmat.go — recursive-matrix (R-MAT) generator.
//
// Canonical model:
//   - The 2^scale × 2^scale adjacency matrix is split into quadrants;
//     each edge descends scale times, picking a quadrant with
//     probabilities (a, b, c, d=1-a-b-c), then lands on a single cell.
//   - Self-loops are discarded and re-drawn; duplicate edges are kept,
//     matching the usual Graph500 kernel-1 input.
//
// Contract:
//   - 1 ≤ scale ≤ maxRMATScale (else ErrTooFewVertices).
//   - e ≥ 0 (else ErrBadEdgeCount).
//   - An RNG is required whenever e > 0 (else ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlbfs/core"
)

// RMAT samples a directed R-MAT graph over n = 1<<scale vertices with e
// edges. Quadrant probabilities default to (DefaultRMATA, DefaultRMATB,
// DefaultRMATC) and can be overridden with WithRMATProbs.
func RMAT(scale, e int, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts)
	if scale < 1 || scale > maxRMATScale {
		return nil, fmt.Errorf("%s: scale=%d not in [1,%d]: %w",
			methodRMAT, scale, maxRMATScale, ErrTooFewVertices)
	}
	if e < 0 {
		return nil, fmt.Errorf("%s: e=%d: %w", methodRMAT, e, ErrBadEdgeCount)
	}
	if cfg.rng == nil && e > 0 {
		return nil, fmt.Errorf("%s: %w", methodRMAT, ErrNeedRandSource)
	}

	n := 1 << scale
	src := make([]int32, 0, e)
	dst := make([]int32, 0, e)

	// Degenerate probability settings can keep landing on the diagonal;
	// stop after redrawLimit consecutive self-loops instead of spinning.
	const redrawLimit = 64
	misses := 0
	for len(src) < e && misses < redrawLimit {
		u, v := rmatDraw(cfg, scale)
		if u == v {
			misses++
			continue
		}
		misses = 0
		src = append(src, u)
		dst = append(dst, v)
	}

	return csrFromPairs(n, src, dst)
}

// rmatDraw descends the quadrant tree once and returns one (u, v) cell.
func rmatDraw(cfg builderConfig, scale int) (int32, int32) {
	var u, v int32
	for bit := 0; bit < scale; bit++ {
		r := cfg.rng.Float64()
		u <<= 1
		v <<= 1
		switch {
		case r < cfg.rmatA:
			// top-left: both bits 0
		case r < cfg.rmatA+cfg.rmatB:
			v |= 1
		case r < cfg.rmatA+cfg.rmatB+cfg.rmatC:
			u |= 1
		default:
			u |= 1
			v |= 1
		}
	}

	return u, v
}
