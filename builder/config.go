// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn        ("0","1","2",...)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn     (constant DefaultEdgeWeight)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex label strategy: index -> label.
	idFn IDFn
	// customIDs is set by WithIDScheme; Grid keeps its "r,c" labels otherwise.
	customIDs bool
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator, called once per emitted edge.
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
