// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// random.go — stochastic constructors.
//
// Determinism:
//   • Stable vertex order: i asc.
//   • Stable trial order: i asc, j > i asc; one Float64 draw per pair.
//   • Fixed seed and options ⇒ identical graph.

package builder

import (
	"fmt"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
	probMin, probMax      = 0.0, 1.0
)

// RandomSparse samples an Erdős–Rényi graph G(n, p) over n ≥ 1 vertices.
// p ∈ {0, 1} needs no RNG; any other p requires WithSeed or WithRand.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, n, minRandomNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		v := addVertices(s, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := connect(methodRandomSparse, s, cfg, v[i], v[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected builds a random spanning tree over n ≥ 1 vertices (each
// vertex i > 0 attaches to a uniformly chosen earlier vertex), then adds
// every other pair with probability p. The result is always connected.
// Requires an RNG.
// Complexity: O(n²) trials.
func RandomConnected(n int, p float64) Constructor {
	return func(s sink, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomConnected, n, minRandomNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		v := addVertices(s, cfg, n)
		parent := make([]int, n)
		for i := 1; i < n; i++ {
			parent[i] = cfg.rng.Intn(i)
			if err := connect(methodRandomConnected, s, cfg, v[parent[i]], v[i]); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if parent[j] == i || !bernoulli(cfg, p) {
					continue
				}
				if err := connect(methodRandomConnected, s, cfg, v[i], v[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli draws one trial with success probability p.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
