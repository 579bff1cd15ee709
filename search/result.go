package search

import "fmt"

// Result holds the outcome of a search run:
//   - Found: whether a goal state was reached.
//   - Goal: arena id of the terminal node (NoParent when not found).
//   - Expanded: number of nodes taken off the frontier and expanded.
type Result[S any] struct {
	Found    bool
	Goal     NodeID
	Expanded int

	arena *Arena[S]
}

// Arena exposes every node generated during the run.
func (r *Result[S]) Arena() *Arena[S] { return r.arena }

// Node returns the terminal node; ok is false when no goal was found.
func (r *Result[S]) Node() (Node[S], bool) {
	if !r.Found {
		return Node[S]{}, false
	}

	return r.arena.Node(r.Goal)
}

// Path returns the states from the initial state to the goal, or nil when
// no goal was found.
func (r *Result[S]) Path() []S {
	if !r.Found {
		return nil
	}

	return r.arena.PathOf(r.Goal)
}

// Cost returns the accumulated cost of the terminal node (AStar), or 0.
func (r *Result[S]) Cost() float64 {
	n, _ := r.Node()
	return n.Cost
}

// PathTo is an alias of Path returning an error when no goal was found,
// for callers that prefer the error-returning form.
func (r *Result[S]) PathTo() ([]S, error) {
	if !r.Found {
		return nil, fmt.Errorf("search: no path after %d expansions", r.Expanded)
	}

	return r.Path(), nil
}
