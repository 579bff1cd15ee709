// Package core_test contains test helpers for lvsearch/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvsearch/core"
)

// Common vertex labels used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// NewSquare RETURNS the weighted square A-B-D-C-A used by several tests.
//
//	A──1──B
//	│     │
//	7     3
//	│     │
//	C──5──D
func NewSquare(t *testing.T) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int](VertexA, VertexB, VertexC, VertexD)
	MustNoError(t, g.AddEdgeByLabels(VertexA, VertexB, Weight1), "AddEdgeByLabels(A,B)")
	MustNoError(t, g.AddEdgeByLabels(VertexB, VertexD, Weight3), "AddEdgeByLabels(B,D)")
	MustNoError(t, g.AddEdgeByLabels(VertexC, VertexD, Weight5), "AddEdgeByLabels(C,D)")
	MustNoError(t, g.AddEdgeByLabels(VertexA, VertexC, Weight7), "AddEdgeByLabels(A,C)")

	return g
}

// MustNoError FAILS the test immediately if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test immediately unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", op, target, err)
	}
}

// MustEqualInt FAILS the test immediately if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}
