// Package lvlbfs computes unit-weight shortest-path distances on large
// directed graphs with a hybrid direction-optimizing parallel BFS.
//
// 🚀 What is lvlbfs?
//
//	A shared-memory parallel BFS toolkit built around a compressed
//	sparse row graph:
//		• core/    — immutable CSR adjacency store
//		• builder/ — uniform-random, scale-free, R-MAT and edge-list producers
//		• dist/    — the atomic distance vector shared by all kernels
//		• bfs/     — serial reference BFS (the correctness oracle)
//		• hybrid/  — the level-synchronous top-down ↔ bottom-up kernel
//		• verify/  — oracle cross-checks and degree statistics
//
// ✨ Why choose lvlbfs?
//
//   - Work-efficient – the kernel switches to bottom-up sweeps when the
//     estimated top-down edge work exceeds the unvisited remainder
//   - Lock-free hot path – vertices are claimed with a single CAS; the
//     next frontier needs no deduplication
//   - Deterministic distances – frontier ordering races, distances don't
//   - Validated – every parallel run can be replayed against the serial
//     oracle with one call
//
// Quick start:
//
//	g, _ := builder.RandomUndirected(100_000, 0.0002, builder.WithSeed(42))
//	d := dist.NewVector(g.VertexCount())
//	res, _ := hybrid.MultiSource(g, d)
//	fmt.Println(res.Iterations, d.CountReached())
//
// The cmd/lvlbfs harness wraps the same surface in a CLI with timed
// runs, YAML benchmark suites, and CSV reporting.
//
//	go get github.com/katalvlaran/lvlbfs
package lvlbfs
