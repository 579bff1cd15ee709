package search

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/lvsearch/frontier"
)

// BFS performs breadth-first search from initial.
//
// The frontier is a FIFO Queue. States are marked explored when enqueued
// (not when dequeued), so no state is ever queued twice. Expansion proceeds
// level by level, hence the first goal found has the minimum number of steps
// from initial. That minimality is in edge count only; BFS ignores weights.
//
// Returns the same Result/error contract as DFS.
//
// Complexity: O(V + E) for a finite state space.
func BFS[S comparable](initial S, goal GoalFunc[S], successors SuccessorFunc[S], opts ...Option) (*Result[S], error) {
	r, err := newRunner("bfs", goal, successors, opts)
	if err != nil {
		return nil, err
	}

	queue := frontier.NewQueue[NodeID](64)
	explored := mapset.NewThreadUnsafeSet()

	explored.Add(initial)
	queue.Push(r.arena.Add(initial, NoParent, 0, 0))

	for !queue.Empty() {
		id, _ := queue.Pop()
		if err = r.expand(id); err != nil {
			return r.exhausted(), err
		}

		state := r.arena.nodes[id].State
		if r.goal(state) {
			return r.found(id), nil
		}

		for _, child := range r.succ(state) {
			// mark on enqueue to avoid duplicate enqueues
			if !explored.Add(child) {
				continue
			}
			queue.Push(r.arena.Add(child, id, 0, 0))
		}
	}

	return r.exhausted(), nil
}
