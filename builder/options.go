// SPDX-License-Identifier: MIT
// Package: lvlbfs/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     constructors themselves never panic at runtime.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.

package builder

import "math/rand"

// Option customizes a constructor by mutating a builderConfig before
// construction begins. Applying N options costs O(N) time.
type Option func(*builderConfig)

// builderConfig holds the resolved configuration for one construction.
type builderConfig struct {
	rng                 *rand.Rand
	rmatA, rmatB, rmatC float64
}

// newBuilderConfig resolves defaults, then applies opts left to right.
func newBuilderConfig(opts []Option) builderConfig {
	cfg := builderConfig{
		rmatA: DefaultRMATA,
		rmatB: DefaultRMATB,
		rmatC: DefaultRMATC,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRMATProbs overrides the R-MAT quadrant probabilities (a, b, c).
// The remainder d = 1-a-b-c is implied. Each value must lie in [0,1]
// and a+b+c must not exceed 1; violations panic, surfacing programmer
// error at option-construction time.
func WithRMATProbs(a, b, c float64) Option {
	if a < probMin || b < probMin || c < probMin || a+b+c > probMax {
		panic("builder: WithRMATProbs: probabilities must be non-negative and sum to at most 1")
	}

	return func(cfg *builderConfig) {
		cfg.rmatA, cfg.rmatB, cfg.rmatC = a, b, c
	}
}
