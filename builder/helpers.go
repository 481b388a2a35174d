// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// helpers.go — shared CSR assembly from flat edge pairs.

package builder

import "github.com/katalvlaran/lvlbfs/core"

// csrFromPairs assembles parallel source/destination id slices into a
// CSR graph over n vertices: (a) count degrees via a histogram on the
// source ids, (b) prefix-sum into offsets, (c) place each destination
// with a per-source cursor. Runs in O(V+E) time.
func csrFromPairs(n int, src, dst []int32) (*core.Graph, error) {
	offsets := make([]int64, n+1)
	for _, u := range src {
		offsets[u+1]++
	}
	for i := 1; i <= n; i++ {
		offsets[i] += offsets[i-1]
	}

	edges := make([]int32, len(dst))
	cursor := make([]int64, n)
	copy(cursor, offsets[:n])
	for i, u := range src {
		edges[cursor[u]] = dst[i]
		cursor[u]++
	}

	return core.New(offsets, edges)
}
