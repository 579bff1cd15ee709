// File: methods_clone.go
// Role: Cloning graph instances.

package core

// CloneEmpty returns a new Graph with the same vertices (same indices and
// labels) but no edges.
// Complexity: O(V).
func (g *Graph[L, W]) CloneEmpty() *Graph[L, W] {
	return NewGraph[L, W](g.labels...)
}

// Clone returns a copy of the Graph whose vertex and edge slices share no
// backing arrays with the original. Labels and weights are copied by value.
// Complexity: O(V + E).
func (g *Graph[L, W]) Clone() *Graph[L, W] {
	clone := g.CloneEmpty()
	for i, es := range g.edges {
		if len(es) == 0 {
			continue
		}
		clone.edges[i] = make([]Edge[W], len(es))
		copy(clone.edges[i], es)
	}

	return clone
}
