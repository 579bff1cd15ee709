package dijkstra

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was found by the
	// upfront scan. Shortest paths over negative weights are not supported.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Distance is the shortest known distance to a vertex.
// Reached is false for vertices not connected to the root; Value is then zero.
type Distance[W core.Number] struct {
	Value   W
	Reached bool
}

// String renders the distance, or "-" when unreached.
func (d Distance[W]) String() string {
	if !d.Reached {
		return "-"
	}

	return fmt.Sprint(d.Value)
}

// Result holds the outcome of a single-source run.
//
//   - Root: index of the root vertex.
//   - Distances: indexed by vertex; Distances[Root] is {0, true}.
//   - Predecessors: for every reached non-root vertex v, the edge (u→v) that
//     ends the shortest path to v. The root has no entry.
type Result[W core.Number] struct {
	Root         int
	Distances    []Distance[W]
	Predecessors map[int]core.Edge[W]
}

// Options configures a Dijkstra run.
//
//	MaxDistance  – if HasMaxDistance, vertices farther than MaxDistance are left unreached.
//	Logger       – if non-nil, receives debug traces of heap activity.
type Options[W core.Number] struct {
	MaxDistance    W
	HasMaxDistance bool
	Logger         *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option[W core.Number] func(*Options[W])

// DefaultOptions returns Options with no distance cap and no logger.
func DefaultOptions[W core.Number]() Options[W] {
	return Options[W]{}
}

// WithMaxDistance stops exploration beyond max. A negative max is recorded
// and surfaced as ErrOptionViolation.
func WithMaxDistance[W core.Number](max W) Option[W] {
	return func(o *Options[W]) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
		o.HasMaxDistance = true
	}
}

// WithLogger enables debug tracing through l.
func WithLogger[W core.Number](l *log.Logger) Option[W] {
	return func(o *Options[W]) {
		o.Logger = l
	}
}
