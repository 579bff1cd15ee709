// SPDX-License-Identifier: MIT
// Package: lvsearch/builder
//
// api.go - public entry-point and the Constructor contract.
//
// Design contract:
//   - One orchestrator: BuildGraph[W](bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are weight-agnostic: they emit float64 weights through a sink and
//     BuildGraph converts them to W (integer W truncates toward zero).
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// sink is the narrow graph surface a Constructor writes to.
type sink interface {
	addVertex(label string) int
	addEdge(u, v int, w float64) error
}

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Each Constructor adds its own vertices; composing several in
// one BuildGraph call yields their disjoint union (labels may repeat).
type Constructor func(s sink, cfg builderConfig) error

// graphSink adapts *core.Graph[string, W] to sink.
type graphSink[W core.Number] struct {
	g *core.Graph[string, W]
}

func (s graphSink[W]) addVertex(label string) int { return s.g.AddVertex(label) }

func (s graphSink[W]) addEdge(u, v int, w float64) error {
	return s.g.AddEdgeByIndices(u, v, W(w))
}

// BuildGraph creates a new labeled graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever sentinel the failing constructor returned (ErrTooFewVertices, ...).
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph[W core.Number](bopts []BuilderOption, cons ...Constructor) (*core.Graph[string, W], error) {
	g := core.NewGraph[string, W]()
	cfg := newBuilderConfig(bopts...)
	s := graphSink[W]{g: g}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild[W core.Number](bopts []BuilderOption, cons ...Constructor) *core.Graph[string, W] {
	g, err := BuildGraph[W](bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addVertices adds n vertices labeled cfg.idFn(0..n-1) and returns their
// indices in order.
func addVertices(s sink, cfg builderConfig, n int) []int {
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = s.addVertex(cfg.idFn(i))
	}

	return idx
}

// connect adds u—v with the next configured weight, wrapping failures with method context.
func connect(method string, s sink, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := s.addEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
