package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// ShortestPaths computes shortest distances from root to every vertex of g.
//
// Steps:
//  1. Validate g and root, apply options, scan all edges for negative weights.
//  2. Seed the priority queue with (root, 0).
//  3. Pop the closest entry; discard it if its distance is no longer the best
//     known distance of its vertex (lazy decrease-key leaves stale entries).
//  4. Relax every outgoing edge; on strict improvement record the distance,
//     the predecessor edge, and push a new entry.
//
// Vertices not connected to root stay unreached: a disconnected graph yields a
// partial result, not an error.
//
// Returns:
//   - ErrNilGraph when g is nil.
//   - core.ErrIndexOutOfRange when root is not a vertex of g.
//   - ErrNegativeWeight when any edge weight is negative.
//   - ErrOptionViolation for invalid options.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) (heap holds up to E stale entries)
func ShortestPaths[L comparable, W core.Number](g *core.Graph[L, W], root int, opts ...Option[W]) (*Result[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := g.VertexAt(root); err != nil {
		return nil, fmt.Errorf("dijkstra: root: %w", err)
	}

	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if err := scanWeights(g); err != nil {
		return nil, err
	}

	r := &runner[L, W]{
		g:    g,
		opts: cfg,
		res: &Result[W]{
			Root:         root,
			Distances:    make([]Distance[W], g.VertexCount()),
			Predecessors: make(map[int]core.Edge[W]),
		},
		pq: frontier.NewPriorityQueue(func(a, b entry[W]) bool { return a.dist < b.dist }),
	}
	r.run()

	return r.res, nil
}

// ShortestPathsFrom resolves rootLabel to its vertex index and calls
// ShortestPaths. With duplicate labels the first matching vertex is used.
func ShortestPathsFrom[L comparable, W core.Number](g *core.Graph[L, W], rootLabel L, opts ...Option[W]) (*Result[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	root, err := g.IndexOf(rootLabel)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: root: %w", err)
	}

	return ShortestPaths(g, root, opts...)
}

// entry is a heap element: vertex v at tentative distance dist.
type entry[W core.Number] struct {
	v    int
	dist W
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[L comparable, W core.Number] struct {
	g    *core.Graph[L, W]
	opts Options[W]
	res  *Result[W]
	pq   *frontier.PriorityQueue[entry[W]]
}

func (r *runner[L, W]) run() {
	dist := r.res.Distances
	root := r.res.Root

	dist[root] = Distance[W]{Value: 0, Reached: true}
	r.pq.Push(entry[W]{v: root, dist: 0})

	for !r.pq.Empty() {
		cur, _ := r.pq.Pop()

		// stale: a shorter distance was recorded after this entry was pushed
		if cur.dist != dist[cur.v].Value {
			if r.opts.Logger != nil {
				r.opts.Logger.Debug("stale entry", "vertex", cur.v, "dist", cur.dist, "best", dist[cur.v].Value)
			}
			continue
		}
		if r.opts.Logger != nil {
			r.opts.Logger.Debug("settle", "vertex", cur.v, "dist", cur.dist)
		}

		r.relax(cur)
	}
}

// relax examines each edge leaving cur.v and improves neighbor distances.
func (r *runner[L, W]) relax(cur entry[W]) {
	dist := r.res.Distances
	edges, _ := r.g.Edges(cur.v)

	for _, e := range edges {
		nd := cur.dist + e.Weight
		if r.opts.HasMaxDistance && nd > r.opts.MaxDistance {
			continue
		}
		// strict improvement only, so equal-cost alternatives keep the first predecessor
		if dist[e.V].Reached && nd >= dist[e.V].Value {
			continue
		}
		dist[e.V] = Distance[W]{Value: nd, Reached: true}
		r.res.Predecessors[e.V] = e
		r.pq.Push(entry[W]{v: e.V, dist: nd})
	}
}

// scanWeights fails fast on the first negative edge weight.
func scanWeights[L comparable, W core.Number](g *core.Graph[L, W]) error {
	for u := 0; u < g.VertexCount(); u++ {
		edges, _ := g.Edges(u)
		for _, e := range edges {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s", ErrNegativeWeight, g.FormatEdge(e))
			}
		}
	}

	return nil
}
