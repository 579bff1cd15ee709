package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvsearch/core"
)

// Kruskal computes a minimum spanning tree of the undirected graph g.
// It uses a disjoint-set (union-find) with path compression and union by rank.
//
// Steps:
//  1. Collect one copy of each undirected edge (U < V), skipping self-loops.
//  2. Sort edges by ascending weight; the stable sort keeps adjacency order on ties.
//  3. Accept an edge whenever its endpoints lie in different components.
//  4. Stop at V-1 edges; fewer after the scan means ErrDisconnected.
//
// An empty graph and a single vertex both yield an empty tree.
//
// Only the U < V copy of each edge is read, which is exactly one copy per
// AddEdge call. On a graph built with AddDirectedEdge, edges stored from a
// higher to a lower index are ignored, so Kruskal may report
// ErrDisconnected where Jarnik, which follows stored directions, does not.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[L comparable, W core.Number](g *core.Graph[L, W]) ([]core.Edge[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n <= 1 {
		return []core.Edge[W]{}, nil
	}

	edges := make([]core.Edge[W], 0, g.EdgeCount()/2)
	for u := 0; u < n; u++ {
		adj, _ := g.Edges(u)
		for _, e := range adj {
			if e.U < e.V {
				edges = append(edges, e)
			}
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	ds := newDisjointSet(n)
	mst := make([]core.Edge[W], 0, n-1)
	for _, e := range edges {
		if ds.union(e.U, e.V) {
			mst = append(mst, e)
			if len(mst) == n-1 {
				break
			}
		}
	}
	if len(mst) < n-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}

// disjointSet is a union-find over vertex indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the representative of u, halving the path as it walks.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
