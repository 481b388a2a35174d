// SPDX-License-Identifier: MIT
// Package: lvlbfs/hybrid
//
// bottomup.go — the bottom-up sweep step.
//
// Scheduling: remainder vertices have highly skewed out-degrees, so
// workers pull BottomUpChunk-sized chunks off a shared atomic cursor
// (dynamic chunking) instead of fixed ranges.

package hybrid

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvlbfs/dist"
)

// stepBottomUp sweeps the unvisited remainder: each remainder vertex
// scans its out-neighbors for one whose distance predates this level
// and adopts that distance plus one. Returns the vertices claimed this
// level and refilters the remainder in a single linear pass.
//
// The level bound matters: a plain finite-distance check could observe
// a claim made by a racing worker in the same sweep and chain off it,
// producing a distance one level too deep. Bounding adoption to
// distances ≤ the current level keeps every observation on the far
// side of the previous barrier, so distances stay deterministic.
func (r *runner) stepBottomUp() []int32 {
	workers := r.workerCount(len(r.remainder))
	next := make([]int32, 0, len(r.remainder))
	level := int32(r.iteration)

	var cursor atomic.Int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local []int32
			for {
				lo := int(cursor.Add(BottomUpChunk)) - BottomUpChunk
				if lo >= len(r.remainder) {
					break
				}
				hi := lo + BottomUpChunk
				if hi > len(r.remainder) {
					hi = len(r.remainder)
				}
				for _, u := range r.remainder[lo:hi] {
					// The remainder is refiltered only after bottom-up
					// levels, so skip entries a top-down level claimed.
					if r.d.Load(u) != dist.Unreached {
						continue
					}
					for _, v := range r.view.Edges[r.view.Offsets[u]:r.view.Offsets[u+1]] {
						dv := r.d.Load(v)
						if dv == dist.Unreached || dv > level {
							continue
						}
						if r.d.CompareAndSwap(u, dist.Unreached, dv+1) {
							local = append(local, u)
						}
						break
					}
				}
			}
			mu.Lock()
			next = append(next, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Refilter in place: keep only vertices still unreached.
	live := r.remainder[:0]
	for _, u := range r.remainder {
		if r.d.Load(u) == dist.Unreached {
			live = append(live, u)
		}
	}
	r.remainder = live

	return next
}
