package search

import (
	mapset "github.com/deckarep/golang-set"

	"github.com/katalvlaran/lvsearch/frontier"
)

// DFS performs depth-first search from initial.
//
// The frontier is an explicit Stack, so the Go call stack stays flat no
// matter how deep the state space is. A state is recorded as explored the
// moment it is pushed (the initial state included) and is never pushed again.
// The last-pushed state is expanded first; the goal test runs on expansion.
//
// DFS guarantees reachability only: the returned path is not necessarily the
// shortest one.
//
// Returns:
//   - Result with Found == true and the terminal node on success.
//   - Result with Found == false when the frontier empties (no solution).
//   - ErrNilGoalTest, ErrNilSuccessors, ErrOptionViolation for invalid input.
//   - ErrExpansionLimit or a wrapped OnExpand error when aborted; the partial
//     Result is returned alongside the error.
//
// Complexity: O(V + E) expansions/pushes for a finite state space, plus the
// cost of goal and successors.
func DFS[S comparable](initial S, goal GoalFunc[S], successors SuccessorFunc[S], opts ...Option) (*Result[S], error) {
	r, err := newRunner("dfs", goal, successors, opts)
	if err != nil {
		return nil, err
	}

	stack := frontier.NewStack[NodeID](64)
	explored := mapset.NewThreadUnsafeSet()

	// Seed the frontier with the root node.
	explored.Add(initial)
	stack.Push(r.arena.Add(initial, NoParent, 0, 0))

	for !stack.Empty() {
		id, _ := stack.Pop()
		if err = r.expand(id); err != nil {
			return r.exhausted(), err
		}

		state := r.arena.nodes[id].State
		if r.goal(state) {
			return r.found(id), nil
		}

		for _, child := range r.succ(state) {
			// Add reports false when child is already explored.
			if !explored.Add(child) {
				continue
			}
			stack.Push(r.arena.Add(child, id, 0, 0))
		}
	}

	return r.exhausted(), nil
}
