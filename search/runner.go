package search

import "fmt"

// runner encapsulates the state shared by every search variant.
type runner[S comparable] struct {
	name     string
	opts     Options
	goal     GoalFunc[S]
	succ     SuccessorFunc[S]
	arena    *Arena[S]
	expanded int
}

// newRunner validates the common inputs and builds a runner.
func newRunner[S comparable](name string, goal GoalFunc[S], succ SuccessorFunc[S], opts []Option) (*runner[S], error) {
	if goal == nil {
		return nil, ErrNilGoalTest
	}
	if succ == nil {
		return nil, ErrNilSuccessors
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &runner[S]{
		name:  name,
		opts:  o,
		goal:  goal,
		succ:  succ,
		arena: NewArena[S](64),
	}, nil
}

// expand accounts for one node leaving the frontier: it enforces the
// expansion budget and runs the OnExpand hook.
func (r *runner[S]) expand(id NodeID) error {
	if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%s: %w after %d expansions", r.name, ErrExpansionLimit, r.expanded)
	}
	r.expanded++

	n := r.arena.nodes[id]
	if r.opts.Logger != nil {
		r.opts.Logger.Debug("expand", "search", r.name, "state", n.State, "depth", n.Depth, "cost", n.Cost)
	}
	if r.opts.OnExpand != nil {
		if err := r.opts.OnExpand(n.State, n.Depth); err != nil {
			return fmt.Errorf("%s: OnExpand error at depth %d: %w", r.name, n.Depth, err)
		}
	}

	return nil
}

// found builds a successful Result for the terminal node id.
func (r *runner[S]) found(id NodeID) *Result[S] {
	if r.opts.Logger != nil {
		r.opts.Logger.Debug("goal reached", "search", r.name, "expanded", r.expanded, "nodes", r.arena.Len())
	}

	return &Result[S]{Found: true, Goal: id, Expanded: r.expanded, arena: r.arena}
}

// exhausted builds the Result for a search that ran out of frontier (or was aborted).
func (r *runner[S]) exhausted() *Result[S] {
	return &Result[S]{Found: false, Goal: NoParent, Expanded: r.expanded, arena: r.arena}
}
