// SPDX-License-Identifier: MIT
// Package: lvlbfs/hybrid
//
// hybrid.go — kernel entry points and the level-synchronous loop.

package hybrid

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlbfs/core"
	"github.com/katalvlaran/lvlbfs/dist"
)

// runner holds the mutable state of one kernel call. The frontier,
// next, and remainder slices are owned by the calling goroutine between
// levels; workers only read them inside a parallel region.
type runner struct {
	view core.View
	d    *dist.Vector
	opts options

	v         int
	avgDegree float64

	frontier       []int32
	remainder      []int32
	remainderReady bool

	iteration int
	visited   int
	res       Result
}

// MultiSource runs the hybrid kernel with every non-isolated vertex
// (out-degree ≥ 1) as a root at distance 0. Isolated vertices and
// vertices with no path from any root are left at dist.Unreached.
func MultiSource(g *core.Graph, d *dist.Vector, opts ...Option) (*Result, error) {
	r, err := newRunner(g, d, opts)
	if err != nil {
		return nil, err
	}

	// Parallel reset, then seed the frontier with all non-isolated roots.
	r.parallelFill(dist.Unreached)
	r.frontier = make([]int32, 0, r.v)
	for u := 0; u < r.v; u++ {
		if r.view.Offsets[u] < r.view.Offsets[u+1] {
			r.d.Store(int32(u), 0)
			r.frontier = append(r.frontier, int32(u))
		}
	}

	return r.run()
}

// BFS runs the hybrid kernel as a single-source traversal from source.
// Same skeleton and heuristics as MultiSource; the frontier starts as
// {source}.
func BFS(g *core.Graph, source int32, d *dist.Vector, opts ...Option) (*Result, error) {
	r, err := newRunner(g, d, opts)
	if err != nil {
		return nil, err
	}
	if source < 0 || int(source) >= r.v {
		return nil, fmt.Errorf("BFS: source=%d, V=%d: %w", source, r.v, ErrSourceRange)
	}

	r.parallelFill(dist.Unreached)
	r.d.Store(source, 0)
	r.frontier = []int32{source}

	return r.run()
}

// newRunner validates preconditions and builds the per-call state.
func newRunner(g *core.Graph, d *dist.Vector, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if d.Len() != g.VertexCount() {
		return nil, fmt.Errorf("kernel: len(d)=%d, V=%d: %w", d.Len(), g.VertexCount(), ErrVectorLength)
	}

	return &runner{
		view:      g.RawView(),
		d:         d,
		opts:      o,
		v:         g.VertexCount(),
		avgDegree: g.AvgDegree(),
	}, nil
}

// run executes the level loop until the frontier drains.
func (r *runner) run() (*Result, error) {
	r.visited = len(r.frontier)

	for len(r.frontier) > 0 {
		workEst := float64(len(r.frontier)) * r.avgDegree
		bottomUp := r.chooseBottomUp(workEst)

		var next []int32
		if bottomUp {
			next = r.stepBottomUp()
			r.res.BottomUpLevels++
		} else {
			// One linear scan here buys cheap mode switches later.
			if !r.remainderReady && workEst > float64(r.v)/RemainderDivisor {
				r.materializeRemainder()
			}
			next = r.stepTopDown()
			r.res.TopDownLevels++
		}

		r.visited += len(next)
		r.frontier = next
		r.iteration++
		r.logProgress(bottomUp)
	}

	r.res.Iterations = r.iteration
	r.res.Visited = r.visited

	return &r.res, nil
}

// chooseBottomUp applies the direction heuristic: bottom-up when the
// estimated top-down edge work exceeds the unvisited sweep, or when a
// tiny frontier lingers late in the traversal. Never before the
// remainder has been materialized, hence never on the first level.
func (r *runner) chooseBottomUp(workEst float64) bool {
	if !r.remainderReady {
		return false
	}

	return workEst > float64(len(r.remainder)) ||
		(r.iteration > StaleIterations && len(r.frontier) < SmallFrontier)
}

// materializeRemainder collects every still-unreached vertex in one
// linear scan.
func (r *runner) materializeRemainder() {
	r.remainder = make([]int32, 0, r.v)
	for u := 0; u < r.v; u++ {
		if r.d.Load(int32(u)) == dist.Unreached {
			r.remainder = append(r.remainder, int32(u))
		}
	}
	r.remainderReady = true
}

// logProgress emits one structured record per progress interval.
func (r *runner) logProgress(bottomUp bool) {
	if r.opts.logger == nil || r.iteration%r.opts.progressEvery != 0 {
		return
	}
	mode := "top-down"
	if bottomUp {
		mode = "bottom-up"
	}
	r.opts.logger.Info("level",
		slog.Int("iteration", r.iteration),
		slog.String("mode", mode),
		slog.Int("frontier", len(r.frontier)),
		slog.Int("remainder", len(r.remainder)),
		slog.Int("visited", r.visited),
	)
}
