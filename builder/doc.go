// Package builder constructs core.Graph values from synthetic generator
// parameters or from textual edge lists.
//
// The package offers the following constructors, all yielding a CSR graph:
//
//   - RandomDirected(n, p):   Erdős–Rényi-like directed graph; each ordered
//     pair (u,v), u≠v, is kept independently with probability p.
//   - RandomUndirected(n, p): unordered pairs are sampled once; each accepted
//     pair contributes both arcs.
//   - ScaleFree(n, e):        preferential-attachment graph with a skewed
//     degree distribution.
//   - RMAT(scale, e):         recursive-matrix generator over 2^scale
//     vertices with tunable quadrant probabilities.
//   - FromFile(path) / FromReader(r): whitespace-separated "u v" integer
//     pairs; endpoint ids are remapped to contiguous internal ids in
//     first-encounter order.
//
// Determinism
//
//	Stochastic constructors require an explicit RNG via WithSeed or
//	WithRand and sample edge trials in a fixed order, so a fixed seed
//	reproduces the same graph byte for byte.
//
// Errors
//
//	Only sentinel errors are returned (ErrTooFewVertices,
//	ErrInvalidProbability, ErrBadEdgeCount, ErrNeedRandSource, ErrRead);
//	callers branch with errors.Is. Constructors return a complete graph
//	or an error, never both.
//
// Complexity
//
//   - RandomDirected/RandomUndirected: O(n²) Bernoulli trials.
//   - ScaleFree/RMAT: O(e) sampling + O(V+E) CSR assembly.
//   - FromFile: two passes over the edge list, O(V+E) space.
package builder
