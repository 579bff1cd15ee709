package prim_kruskal

import (
	"github.com/katalvlaran/lvsearch/core"
)

// IsSpanningTree reports whether the distinct endpoints of edges cover every
// vertex of g. An endpoint outside g fails the check. It does not check
// acyclicity or connectivity; see IsTree.
// On a single-vertex graph the empty edge set covers nothing and fails.
func IsSpanningTree[L comparable, W any](g *core.Graph[L, W], edges []core.Edge[W]) bool {
	n := g.VertexCount()
	seen := make(map[int]struct{}, 2*len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return false
		}
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}

	return len(seen) == n
}

// IsTree reports whether edges form a spanning tree of g: they cover every
// vertex, there are exactly V-1 of them, and they connect all endpoints
// without a cycle. An empty or single-vertex graph accepts an empty edge set.
func IsTree[L comparable, W any](g *core.Graph[L, W], edges []core.Edge[W]) bool {
	n := g.VertexCount()
	if n <= 1 {
		return len(edges) == 0
	}
	if len(edges) != n-1 || !IsSpanningTree(g, edges) {
		return false
	}
	ds := newDisjointSet(n)
	for _, e := range edges {
		if !ds.union(e.U, e.V) {
			return false
		}
	}

	return true
}
