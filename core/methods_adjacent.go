// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors are reported in edge insertion order, one entry per stored
//     edge (parallel edges yield repeated neighbors).
package core

// Neighbors returns the labels of the vertices reachable from vertex i by a
// single outgoing edge.
//
// Errors:
//   - ErrIndexOutOfRange: if i is not a valid index.
//
// Complexity: O(deg(i)).
func (g *Graph[L, W]) Neighbors(i int) ([]L, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]L, 0, len(g.edges[i]))
	for _, e := range g.edges[i] {
		out = append(out, g.labels[e.V])
	}

	return out, nil
}

// NeighborIndices returns the indices of the vertices reachable from vertex i
// by a single outgoing edge.
func (g *Graph[L, W]) NeighborIndices(i int) ([]int, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.edges[i]))
	for _, e := range g.edges[i] {
		out = append(out, e.V)
	}

	return out, nil
}

// NeighborsOfLabel returns the neighbor labels of the vertex carrying label.
//
// Errors:
//   - ErrVertexNotFound: if label is absent.
func (g *Graph[L, W]) NeighborsOfLabel(label L) ([]L, error) {
	i, err := g.IndexOf(label)
	if err != nil {
		return nil, err
	}

	return g.Neighbors(i)
}
