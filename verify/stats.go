// SPDX-License-Identifier: MIT
// Package: lvlbfs/verify
//
// stats.go — out-degree distribution summary.

package verify

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlbfs/core"
)

// DegreeStats summarizes a graph's out-degree distribution.
type DegreeStats struct {
	Min    int
	Max    int
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
	P99    float64
}

// Degrees computes the out-degree distribution of g. The skew between
// Mean and the tail quantiles is the signal the direction heuristic
// exploits: a heavy tail means bottom-up sweeps amortize well.
func Degrees(g *core.Graph) DegreeStats {
	view := g.RawView()
	v := g.VertexCount()

	degrees := make([]float64, v)
	for u := 0; u < v; u++ {
		degrees[u] = float64(view.Offsets[u+1] - view.Offsets[u])
	}
	sort.Float64s(degrees)

	s := DegreeStats{
		Min:    int(degrees[0]),
		Max:    int(degrees[v-1]),
		Mean:   stat.Mean(degrees, nil),
		Median: stat.Quantile(0.5, stat.Empirical, degrees, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, degrees, nil),
		P99:    stat.Quantile(0.99, stat.Empirical, degrees, nil),
	}
	s.StdDev = stat.StdDev(degrees, nil)

	return s
}
