// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Policy:
//   - AddEdge* always stores both directions; AddDirectedEdge stores one.
//   - Parallel edges and self-loops are accepted as-is (no dedup).
//   - Weights are not checked for sign; only non-finite floats are rejected.
package core

import (
	"fmt"
	"math"
)

// AddEdge inserts e and its reversal, keeping the graph symmetric.
// A self-loop (U == V) is therefore stored twice on the same vertex: it
// counts twice in EdgeCount and its vertex appears twice in Neighbors.
//
// Errors:
//   - ErrIndexOutOfRange: if either endpoint is not a valid index.
//   - ErrInvalidArgument: if the weight is a NaN or infinite float.
//
// Complexity: O(1) amortized.
func (g *Graph[L, W]) AddEdge(e Edge[W]) error {
	if err := g.validateEdge(e); err != nil {
		return err
	}
	g.edges[e.U] = append(g.edges[e.U], e)
	g.edges[e.V] = append(g.edges[e.V], e.Reversed())

	return nil
}

// AddEdgeByIndices inserts an undirected edge between vertices u and v.
func (g *Graph[L, W]) AddEdgeByIndices(u, v int, w W) error {
	return g.AddEdge(Edge[W]{U: u, V: v, Weight: w})
}

// AddEdgeByLabels inserts an undirected edge between the vertices carrying
// labels l1 and l2.
//
// Errors:
//   - ErrVertexNotFound: if either label is absent. The graph is left unchanged.
func (g *Graph[L, W]) AddEdgeByLabels(l1, l2 L, w W) error {
	u, err := g.IndexOf(l1)
	if err != nil {
		return err
	}
	v, err := g.IndexOf(l2)
	if err != nil {
		return err
	}

	return g.AddEdgeByIndices(u, v, w)
}

// AddDirectedEdge inserts only u→v. Callers that mix it with AddEdge give up
// the symmetry guarantee for the affected vertices.
func (g *Graph[L, W]) AddDirectedEdge(u, v int, w W) error {
	e := Edge[W]{U: u, V: v, Weight: w}
	if err := g.validateEdge(e); err != nil {
		return err
	}
	g.edges[u] = append(g.edges[u], e)

	return nil
}

// Edges returns a copy of the outgoing edges of vertex i in insertion order.
//
// Errors:
//   - ErrIndexOutOfRange: if i is not a valid index.
func (g *Graph[L, W]) Edges(i int) ([]Edge[W], error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]Edge[W], len(g.edges[i]))
	copy(out, g.edges[i])

	return out, nil
}

// EdgesOfLabel returns the outgoing edges of the vertex carrying label.
func (g *Graph[L, W]) EdgesOfLabel(label L) ([]Edge[W], error) {
	i, err := g.IndexOf(label)
	if err != nil {
		return nil, err
	}

	return g.Edges(i)
}

// EdgeCount returns the number of stored directed adjacency entries.
// An undirected edge inserted with AddEdge counts twice.
// Complexity: O(V).
func (g *Graph[L, W]) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}

	return n
}

// TotalWeight returns the sum of the weights of edges.
func TotalWeight[W Number](edges []Edge[W]) W {
	var sum W
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}

// validateEdge checks both endpoints and rejects non-finite float weights.
func (g *Graph[L, W]) validateEdge(e Edge[W]) error {
	if err := g.checkIndex(e.U); err != nil {
		return err
	}
	if err := g.checkIndex(e.V); err != nil {
		return err
	}

	var f float64
	switch w := any(e.Weight).(type) {
	case float64:
		f = w
	case float32:
		f = float64(w)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: non-finite weight %v on edge %d->%d", ErrInvalidArgument, f, e.U, e.V)
	}

	return nil
}
