package prim_kruskal

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// Jarnik computes a minimum spanning tree of g by growing outwards from a
// start vertex (Jarnik's algorithm, popularly attributed to Prim).
//
// Steps:
//  1. Validate g and the start vertex; an empty graph yields an empty tree.
//  2. Mark start visited and push its edges onto a min-heap keyed by weight,
//     ties broken by push order.
//  3. Pop the lightest edge; skip it if its far endpoint is already visited
//     (such entries are stale). Otherwise accept it, mark the far endpoint
//     and push its edges toward unvisited vertices.
//  4. Stop when the heap is empty or the tree has V-1 edges.
//
// A disconnected graph yields the spanning tree of the start vertex's
// component. With WithRequireConnected it yields ErrDisconnected instead.
// The graph is treated as undirected; on a graph built with AddDirectedEdge
// the result is only defined over the stored directions.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Jarnik[L comparable, W core.Number](g *core.Graph[L, W], opts ...Option) ([]core.Edge[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	if n == 0 {
		return []core.Edge[W]{}, nil
	}
	if _, err = g.VertexAt(o.Start); err != nil {
		return nil, fmt.Errorf("prim_kruskal: start: %w", err)
	}

	visited := sparsesets.New(n)
	mst := make([]core.Edge[W], 0, n-1)
	pq := frontier.NewPriorityQueue(func(a, b core.Edge[W]) bool { return a.Weight < b.Weight })

	visit := func(u int) {
		visited.Insert(u)
		edges, _ := g.Edges(u)
		for _, e := range edges {
			if !visited.Contains(e.V) {
				pq.Push(e)
			}
		}
	}

	visit(o.Start)
	for !pq.Empty() && len(mst) < n-1 {
		e, _ := pq.Pop()
		if visited.Contains(e.V) {
			continue
		}
		if o.Logger != nil {
			o.Logger.Debug("tree edge", "edge", g.FormatEdge(e))
		}
		mst = append(mst, e)
		visit(e.V)
	}

	if o.RequireConnected && len(mst) < n-1 {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from %d", ErrDisconnected, len(mst)+1, n, o.Start)
	}

	return mst, nil
}
