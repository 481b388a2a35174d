// SPDX-License-Identifier: MIT
// Package: lvlbfs/hybrid
//
// topdown.go — the top-down expansion step and the shared parallel-for
// plumbing.
//
// Scheduling: the frontier is split into one contiguous slice per
// worker (static chunking — frontier vertices have roughly uniform work
// under most distributions). Each worker appends CAS-claimed children
// to a private buffer; buffers are concatenated into the next frontier
// under a single mutex after the barrier.

package hybrid

import (
	"sync"

	"github.com/katalvlaran/lvlbfs/dist"
)

// stepTopDown expands the current frontier one level and returns the
// next frontier. Each newly reached vertex appears exactly once: the
// CAS admits a single winner per vertex.
func (r *runner) stepTopDown() []int32 {
	workers := r.workerCount(len(r.frontier))
	next := make([]int32, 0, len(r.frontier))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := sliceRange(len(r.frontier), workers, w)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(slice []int32) {
			defer wg.Done()
			local := make([]int32, 0, len(slice))
			for _, u := range slice {
				du := r.d.Load(u)
				for _, v := range r.view.Edges[r.view.Offsets[u]:r.view.Offsets[u+1]] {
					if r.d.CompareAndSwap(v, dist.Unreached, du+1) {
						local = append(local, v)
					}
				}
			}
			mu.Lock()
			next = append(next, local...)
			mu.Unlock()
		}(r.frontier[lo:hi])
	}
	wg.Wait()

	return next
}

// parallelFill stores x into every distance cell using the run's worker
// pool; the final wg.Wait is the barrier that publishes the writes.
func (r *runner) parallelFill(x int32) {
	workers := r.workerCount(r.v)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := sliceRange(r.v, workers, w)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for u := lo; u < hi; u++ {
				r.d.Store(int32(u), x)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// workerCount caps the configured worker count by the amount of work,
// so tiny levels do not fork idle goroutines.
func (r *runner) workerCount(work int) int {
	if work < r.opts.workers {
		if work < 1 {
			return 1
		}
		return work
	}

	return r.opts.workers
}

// sliceRange returns the w-th of `workers` near-equal contiguous ranges
// over [0, n).
func sliceRange(n, workers, w int) (int, int) {
	per := (n + workers - 1) / workers
	lo := w * per
	hi := lo + per
	if hi > n {
		hi = n
	}
	if lo > n {
		lo = n
	}

	return lo, hi
}
