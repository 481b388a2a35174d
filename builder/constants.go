// Package builder shared constants: method tags for error context and
// validation domains for the stochastic constructors.
package builder

// Canonical constructor names, used to prefix errors with context.
const (
	methodRandomDirected   = "RandomDirected"
	methodRandomUndirected = "RandomUndirected"
	methodScaleFree        = "ScaleFree"
	methodRMAT             = "RMAT"
	methodFromFile         = "FromFile"
	methodFromReader       = "FromReader"
)

// MinVertices is the smallest usable graph size for every constructor.
const MinVertices = 1

// Probability domain for edge density.
const (
	probMin = 0.0
	probMax = 1.0
)

// Default R-MAT quadrant probabilities (a, b, c); d is the remainder.
// These are the conventional Graph500-style parameters.
const (
	DefaultRMATA = 0.57
	DefaultRMATB = 0.19
	DefaultRMATC = 0.19
)

// maxRMATScale bounds 1<<scale to something addressable with int32 ids.
const maxRMATScale = 30
