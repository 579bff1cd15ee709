package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
)

// AStar performs A* search from initial.
//
// The frontier is a PriorityQueue ordered by Cost+Heuristic ascending, ties
// broken by generation order. A child's cost is parent.Cost + step(parent,
// child) and its heuristic is evaluated fresh for every generated node.
//
// Relaxation uses a cost map (state → best known accumulated cost) instead
// of a boolean explored set: a child is pushed when it is unseen or reached
// strictly cheaper than before, which may reintroduce a state that was
// already expanded. Because superseded entries are never removed from the
// heap, a popped node whose cost exceeds the cost-map entry for its state is
// stale and is discarded without expansion.
//
// Optimality requires an admissible heuristic; that is the caller's
// responsibility. With heuristic ≡ 0 AStar behaves as uniform-cost search and
// returns the same cost as Dijkstra on the equivalent graph.
//
// Returns the same Result/error contract as DFS, plus ErrNilCost and
// ErrNilHeuristic for nil callables.
//
// Complexity: O(E log E) heap operations in the worst case (lazy decrease-key).
func AStar[S comparable](
	initial S,
	goal GoalFunc[S],
	successors SuccessorFunc[S],
	step StepCostFunc[S],
	heuristic HeuristicFunc[S],
	opts ...Option,
) (*Result[S], error) {
	if step == nil {
		return nil, ErrNilCost
	}
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}
	r, err := newRunner("astar", goal, successors, opts)
	if err != nil {
		return nil, err
	}

	arena := r.arena
	pq := frontier.NewPriorityQueue(func(a, b NodeID) bool {
		return arena.nodes[a].Priority() < arena.nodes[b].Priority()
	})
	best := map[S]float64{initial: 0}

	pq.Push(arena.Add(initial, NoParent, 0, heuristic(initial)))

	for !pq.Empty() {
		id, _ := pq.Pop()
		n := arena.nodes[id]

		// discard entries superseded by a cheaper path to the same state
		if n.Cost > best[n.State] {
			if r.opts.Logger != nil {
				r.opts.Logger.Debug("stale entry", "search", r.name, "state", n.State, "cost", n.Cost, "best", best[n.State])
			}
			continue
		}

		if err = r.expand(id); err != nil {
			return r.exhausted(), err
		}
		if r.goal(n.State) {
			return r.found(id), nil
		}

		for _, child := range r.succ(n.State) {
			cost := n.Cost + step(n.State, child)
			if known, seen := best[child]; seen && known <= cost {
				continue
			}
			best[child] = cost
			pq.Push(arena.Add(child, id, cost, heuristic(child)))
		}
	}

	return r.exhausted(), nil
}
