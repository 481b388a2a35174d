// Package hybrid implements the parallel direction-optimizing BFS kernel:
// a level-synchronous traversal that switches between top-down and
// bottom-up expansion at level boundaries.
//
// What
//
//   - MultiSource(g, d): every vertex with at least one out-edge is a
//     root at distance 0; distances become the level of each vertex from
//     its nearest root.
//   - BFS(g, source, d): single-source variant on the same skeleton.
//   - Both fill the caller-owned dist.Vector and return a Result with
//     per-run counters (iterations, visited, per-mode level counts).
//
// How
//
//	Each level either expands the frontier top-down (every frontier
//	vertex claims its unvisited out-neighbors with a CAS of
//	Unreached → level+1) or sweeps bottom-up (every still-unvisited
//	vertex scans its out-neighbors for one that is already finite and
//	adopts that distance plus one). The mode heuristic compares the
//	estimated top-down edge work |frontier|·avgDegree against the size
//	of the unvisited remainder, with an escape clause for tiny stale
//	frontiers late in the traversal; see the tunables in types.go.
//
//	Workers are forked per parallel region and joined at the level
//	barrier; each fills a private buffer of claimed vertices, and the
//	buffers are concatenated into the next frontier under one mutex.
//	The distance vector is the only state shared between workers, and
//	every write to it goes through CAS, so the next frontier contains
//	each vertex exactly once with no deduplication pass.
//
// Directed-graph caveat
//
//	The bottom-up step scans out-edges and adopts a parent whose
//	distance is already finite. On undirected graphs (and on directed
//	graphs presented with symmetric adjacency) this is equivalent to
//	the classical in-edge sweep. On strictly directed inputs a
//	bottom-up level may claim a vertex through an out-edge that no
//	in-path mirrors, which diverges from canonical BFS distances.
//	Callers that need exact directed distances should either keep the
//	graph symmetric or verify against bfs.Baseline; the heuristic never
//	picks bottom-up before the remainder is materialized, so small or
//	shallow traversals stay purely top-down.
//
// Complexity
//
//   - Work: O(V + E) across all levels in either mode.
//   - Span: O(diameter) level barriers.
//   - Memory: O(V) for frontier, next, remainder, and worker buffers,
//     all scoped to a single call.
package hybrid
