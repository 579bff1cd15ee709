// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertex indices are assigned densely in insertion order and never change.
package core

import "fmt"

// AddVertex appends a vertex with the given label and returns its index.
//
// Duplicate labels are not rejected; IndexOf resolves to the first one.
// Complexity: O(1) amortized.
func (g *Graph[L, W]) AddVertex(label L) int {
	g.labels = append(g.labels, label)
	g.edges = append(g.edges, nil)

	return len(g.labels) - 1
}

// VertexCount returns the number of vertices.
func (g *Graph[L, W]) VertexCount() int { return len(g.labels) }

// VertexAt returns the label of the vertex at index i.
//
// Errors:
//   - ErrIndexOutOfRange: if i < 0 or i ≥ VertexCount().
//
// Complexity: O(1).
func (g *Graph[L, W]) VertexAt(i int) (L, error) {
	if err := g.checkIndex(i); err != nil {
		var zero L
		return zero, err
	}

	return g.labels[i], nil
}

// IndexOf returns the index of the first vertex carrying label.
//
// Errors:
//   - ErrVertexNotFound: if no vertex carries label.
//
// Complexity: O(V).
func (g *Graph[L, W]) IndexOf(label L) (int, error) {
	for i, l := range g.labels {
		if l == label {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrVertexNotFound, label)
}

// HasLabel reports whether some vertex carries label.
func (g *Graph[L, W]) HasLabel(label L) bool {
	_, err := g.IndexOf(label)
	return err == nil
}

// Labels returns a copy of the vertex labels in index order.
func (g *Graph[L, W]) Labels() []L {
	out := make([]L, len(g.labels))
	copy(out, g.labels)

	return out
}

// checkIndex validates a vertex index.
func (g *Graph[L, W]) checkIndex(i int) error {
	if i < 0 || i >= len(g.labels) {
		return fmt.Errorf("%w: %d (vertex count %d)", ErrIndexOutOfRange, i, len(g.labels))
	}

	return nil
}
