// Package bfs provides the serial reference breadth-first search used as
// a correctness oracle for the parallel kernels.
//
// What
//
//   - Baseline(g, source, d): canonical FIFO-queue BFS writing unit-weight
//     shortest-path distances into d.
//   - Deterministic: distances are fully determined by (g, source), and
//     the traversal itself visits vertices in a fixed order.
//
// Why
//
//	The hybrid kernel's frontier ordering is nondeterministic, so its
//	output is checked against this oracle elementwise (see package
//	verify). Baseline is deliberately simple: no parallelism, no
//	direction switching, one queue.
//
// Complexity
//
//   - Time O(V + E), space O(V) for the queue.
package bfs
