package search

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for search execution.
var (
	// ErrNilGoalTest is returned when the goal test callable is nil.
	ErrNilGoalTest = errors.New("search: goal test is nil")

	// ErrNilSuccessors is returned when the successor callable is nil.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilCost is returned when AStar receives a nil step-cost callable.
	ErrNilCost = errors.New("search: cost function is nil")

	// ErrNilHeuristic is returned when AStar receives a nil heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the search expands more nodes than
	// allowed by WithMaxExpansions without reaching a goal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// GoalFunc reports whether state satisfies the search goal.
type GoalFunc[S any] func(state S) bool

// SuccessorFunc returns the states reachable from state in one step.
type SuccessorFunc[S any] func(state S) []S

// StepCostFunc returns the cost of moving from one state to a successor.
// AStar computes a child's accumulated cost as parent.Cost + step(parent, child).
type StepCostFunc[S any] func(from, to S) float64

// HeuristicFunc estimates the remaining cost from state to the goal.
// It must never overestimate (admissibility) for AStar to be optimal;
// the engine does not verify this.
type HeuristicFunc[S any] func(state S) float64

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many nodes have been expanded without reaching a goal.
	MaxExpansions int

	// OnExpand is called for every node taken off the frontier, before the
	// goal test. Returning an error aborts the search with that error.
	OnExpand func(state any, depth int) error

	// Logger, if non-nil, receives debug traces of frontier activity.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no expansion limit (MaxExpansions == 0)
//   - no expansion hook
//   - no logger.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		OnExpand:      nil,
		Logger:        nil,
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// buildOptions applies opts over the defaults and returns any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
