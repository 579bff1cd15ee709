// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs
//     (nil functions, nil RNG). Constructors themselves never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes constructors by mutating the builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
		c.customIDs = true
	}
}

// WithRand provides an explicit RNG for stochastic builders and weight
// functions. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
