// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with %w at the call site.

package builder

import "errors"

// ErrTooFewVertices indicates a vertex-count parameter smaller than the
// allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: vertex count too small")

// ErrInvalidProbability indicates a RandomDirected/RandomUndirected
// density outside the closed interval [0,1]. R-MAT quadrant parameters
// are checked by WithRMATProbs, which panics instead.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBadEdgeCount indicates a negative or otherwise unusable target edge
// count for ScaleFree or RMAT.
var ErrBadEdgeCount = errors.New("builder: invalid edge count")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without an RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrRead indicates that the edge-list file could not be opened. A read
// failure after a successful open is not reported: like a malformed
// record, it ends the parse and the edges read so far are kept.
var ErrRead = errors.New("builder: cannot read edge list")
