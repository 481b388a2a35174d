// File: view.go
// Role: Zero-copy read view of the raw CSR arrays for traversal kernels.
// Concurrency:
//   - The Graph never mutates after New, so sharing the backing arrays is safe.
//   - Callers MUST NOT write through the returned slices.

package core

// View is a borrowed, read-only look at the raw CSR arrays.
//
// Traversal kernels index Offsets/Edges directly instead of calling
// Neighbors per vertex, which keeps the per-vertex cost to two array
// loads with no bounds-error branch inside the hot loop.
type View struct {
	// Offsets has length V+1; Offsets[u]..Offsets[u+1] delimit u's out-edges.
	Offsets []int64

	// Edges has length E; entries are destination vertex ids.
	Edges []int32
}

// RawView returns the shared CSR arrays. The slices alias the Graph's
// internal storage: treat them as immutable.
func (g *Graph) RawView() View {
	return View{Offsets: g.offsets, Edges: g.edges}
}
