// Package dist provides the shared atomic distance vector written by the
// traversal kernels.
//
// What
//
//   - Vector: V cells of atomically accessed int32 distances.
//   - Unreached: the sentinel distance of a vertex not yet visited
//     (the maximum positive int32).
//   - Load / Store / CompareAndSwap per cell; Fill and Snapshot over the
//     whole vector.
//
// Why
//
//	The hybrid kernel claims vertices with a single compare-and-swap of
//	Unreached → level+1 per cell. CAS admits exactly one winner per
//	vertex, which is what lets the kernel skip any deduplication of the
//	next frontier. The Vector is the only mutable state the kernel
//	shares between workers.
//
// Memory ordering
//
//	Go's sync/atomic operations are sequentially consistent, which is
//	strictly stronger than the kernel's requirement: every successful
//	CAS that happens before a level barrier is visible to every worker
//	after it.
//
// Lifetime
//
//	The caller allocates a Vector sized to the graph, hands it to a
//	kernel by pointer, and owns the result afterwards.
package dist
