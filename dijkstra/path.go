package dijkstra

import (
	"github.com/katalvlaran/lvsearch/core"
)

// PathBetween walks predecessors back from end until start and returns the
// edges in start→end order.
//
// The result is empty when predecessors is empty, when end has no
// predecessor (unreached or the root itself), or when start == end. If the
// walk reaches a vertex without a predecessor before meeting start, the
// edges collected so far lead from that vertex to end.
func PathBetween[W core.Number](start, end int, predecessors map[int]core.Edge[W]) []core.Edge[W] {
	if len(predecessors) == 0 || start == end {
		return []core.Edge[W]{}
	}
	e, ok := predecessors[end]
	if !ok {
		return []core.Edge[W]{}
	}

	path := []core.Edge[W]{e}
	// a well-formed map is acyclic; the length bound guards hand-built ones
	for e.U != start && len(path) <= len(predecessors) {
		if e, ok = predecessors[e.U]; !ok {
			break
		}
		path = append(path, e)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathTo returns the shortest path from the run's root to end as edges.
// It is empty for the root and for unreached vertices.
func (r *Result[W]) PathTo(end int) []core.Edge[W] {
	return PathBetween(r.Root, end, r.Predecessors)
}

// DistancesByLabel keys distances by vertex label.
// With duplicate labels the later vertex wins.
func DistancesByLabel[L comparable, W core.Number](g *core.Graph[L, W], distances []Distance[W]) map[L]Distance[W] {
	out := make(map[L]Distance[W], len(distances))
	for i, d := range distances {
		label, err := g.VertexAt(i)
		if err != nil {
			break
		}
		out[label] = d
	}

	return out
}
