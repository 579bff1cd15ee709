// Package core defines the central Graph and Edge types used by every
// search, shortest-path and spanning-tree algorithm in lvsearch.
//
// A Graph stores an ordered sequence of vertex labels and, for each vertex
// index, an ordered slice of outgoing edges. Edges carry a payload W:
// unweighted graphs use the zero-size Unit payload, weighted graphs use any
// Number.
//
// Errors:
//
//	ErrVertexNotFound   - a label is not present in the graph.
//	ErrIndexOutOfRange  - a vertex index is negative or ≥ VertexCount().
//	ErrInvalidArgument  - malformed construction input (e.g. a NaN weight).
package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a label that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrIndexOutOfRange indicates an operation referenced an invalid vertex index.
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrInvalidArgument indicates malformed construction input.
	ErrInvalidArgument = errors.New("core: invalid argument")
)

// Number is the set of payload types that algorithms may add and compare.
type Number interface {
	constraints.Integer | constraints.Float
}

// Unit is the payload of an unweighted edge.
type Unit struct{}

// Edge is a directed connection between two vertex indices.
//
// An undirected connection is stored as two Edges, one per direction,
// sharing the same Weight.
type Edge[W any] struct {
	// U is the index of the "from" vertex.
	U int

	// V is the index of the "to" vertex.
	V int

	// Weight is the payload (Unit for unweighted graphs).
	Weight W
}

// Reversed returns the edge pointing the other way with the same weight.
func (e Edge[W]) Reversed() Edge[W] {
	return Edge[W]{U: e.V, V: e.U, Weight: e.Weight}
}

// Graph is an adjacency-list graph over vertex labels of type L with
// edge payloads of type W.
//
// Labels are expected to be unique. Duplicate labels are accepted, in which
// case IndexOf returns the first matching index.
//
// Graph performs no internal locking; it is owned and mutated by a single
// caller and must not be modified while an algorithm runs over it.
type Graph[L comparable, W any] struct {
	// labels[i] is the label of vertex i.
	labels []L

	// edges[i] holds the outgoing edges of vertex i in insertion order.
	edges [][]Edge[W]
}

// NewGraph creates a Graph with the given vertices, indexed 0..len(labels)-1
// in argument order.
// Complexity: O(V).
func NewGraph[L comparable, W any](labels ...L) *Graph[L, W] {
	g := &Graph[L, W]{
		labels: make([]L, 0, len(labels)),
		edges:  make([][]Edge[W], 0, len(labels)),
	}
	for _, l := range labels {
		g.AddVertex(l)
	}

	return g
}
