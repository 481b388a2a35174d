// Package verify cross-checks kernel output against the serial oracle
// and reports degree statistics for a CSR graph.
//
// What
//
//   - Distances(g, source, d): re-runs bfs.Baseline into a scratch
//     vector and compares elementwise; the first mismatch is reported
//     in the wrapped error.
//   - MultiSource(g, d): checks the multi-source contract — vertices
//     with out-edges sit at distance 0, sink vertices with at least one
//     in-edge at distance 1, and isolated vertices stay Unreached.
//   - Degrees(g): out-degree distribution summary (min, max, mean,
//     standard deviation, median, tail quantiles) built on gonum/stat.
//
// Why
//
//	The hybrid kernel's claims race by design; checking a run against
//	the deterministic oracle is the cheapest way to catch an ordering
//	bug. Degree statistics feed the benchmark reports, where the skew
//	of the distribution explains when bottom-up sweeps pay off.
package verify
