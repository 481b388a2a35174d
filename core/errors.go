// SPDX-License-Identifier: MIT
// Package: lvlbfs/core
//
// errors.go — sentinel errors for CSR construction and queries.
//
// Error policy:
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Construction wraps sentinels with %w plus offending indices/values.

package core

import "errors"

// ErrNoVertices indicates an offsets slice shorter than two entries,
// i.e. a graph with no vertices at all.
var ErrNoVertices = errors.New("core: graph must have at least 1 vertex")

// ErrOffsetsShape indicates offsets that are non-monotone, do not start
// at zero, or whose final entry disagrees with len(edges).
var ErrOffsetsShape = errors.New("core: malformed offsets array")

// ErrEdgeRange indicates an edge target outside [0, V).
var ErrEdgeRange = errors.New("core: edge target out of range")

// ErrVertexRange is returned by per-vertex queries when the requested
// vertex id lies outside [0, V).
var ErrVertexRange = errors.New("core: vertex index out of range")
