// Package core defines the compressed-sparse-row (CSR) Graph consumed by
// every traversal kernel in lvlbfs.
//
// What
//
//   - Graph: an immutable two-array adjacency store.
//   - offsets has length V+1; edges has length E.
//   - The out-neighbors of vertex u are the half-open sub-slice
//     edges[offsets[u]:offsets[u+1]].
//   - Accessors: VertexCount, EdgeCount, AvgDegree, OutDegree, Neighbors.
//   - Neighbors returns a borrow of the underlying edge array, never a copy,
//     so traversal hot paths perform no allocation.
//   - Validate re-checks the structural invariants on demand.
//
// Why
//
//   - CSR keeps adjacency contiguous in memory: sequential scans of a
//     vertex's out-edges are cache-friendly, and the whole structure is
//     trivially shareable across goroutines because it never mutates
//     after construction.
//
// Invariants (established by New, re-checkable via Validate)
//
//   - len(offsets) >= 2 (at least one vertex).
//   - offsets[0] == 0 and offsets[V] == E.
//   - offsets is monotonically non-decreasing.
//   - every entry of edges lies in [0, V).
//
// Concurrency
//
//	A *Graph is read-only after New returns; any number of goroutines may
//	query it concurrently without synchronization.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - New / Validate: O(V + E) time, O(1) extra space.
//   - Neighbors / OutDegree: O(1) time, zero allocation.
package core
