package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvsearch/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so no
// spanning tree covers all vertices. Jarnik only reports it under
// WithRequireConnected; Kruskal always does.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrOptionViolation indicates that an invalid Option was supplied.
var ErrOptionViolation = errors.New("prim_kruskal: invalid option supplied")

// MethodJarnik selects Jarnik's (Prim's) algorithm: grow from a start vertex using an edge min-heap.
const MethodJarnik = "jarnik"

// MethodKruskal selects Kruskal's algorithm: sort all edges and union-find.
const MethodKruskal = "kruskal"

// Options configures an MST run.
//
//	Method           – MethodJarnik (default) or MethodKruskal; used by Compute.
//	Start            – start vertex for Jarnik; ignored by Kruskal.
//	RequireConnected – Jarnik returns ErrDisconnected instead of a partial tree.
//	Logger           – if non-nil, receives debug traces of accepted edges.
type Options struct {
	Method           string
	Start            int
	RequireConnected bool
	Logger           *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for Jarnik from vertex 0 with partial trees allowed.
func DefaultOptions() Options {
	return Options{
		Method:           MethodJarnik,
		Start:            0,
		RequireConnected: false,
	}
}

// WithMethod selects the algorithm run by Compute.
func WithMethod(m string) Option {
	return func(o *Options) {
		if m != MethodJarnik && m != MethodKruskal {
			o.err = fmt.Errorf("%w: unknown method %q", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithStart sets the start vertex for Jarnik. Negative indices are recorded
// as ErrOptionViolation; indices past the vertex count surface as
// core.ErrIndexOutOfRange when the run starts.
func WithStart(i int) Option {
	return func(o *Options) {
		if i < 0 {
			o.err = fmt.Errorf("%w: start index cannot be negative (%d)", ErrOptionViolation, i)
			return
		}
		o.Start = i
	}
}

// WithRequireConnected makes Jarnik fail with ErrDisconnected when some
// vertex is not reachable from the start vertex.
func WithRequireConnected() Option {
	return func(o *Options) {
		o.RequireConnected = true
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Compute selects and runs the MST algorithm named by the Method option and
// returns the tree edges with their total weight.
func Compute[L comparable, W core.Number](g *core.Graph[L, W], opts ...Option) ([]core.Edge[W], W, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, 0, err
	}

	var mst []core.Edge[W]
	switch o.Method {
	case MethodKruskal:
		mst, err = Kruskal(g)
	default:
		mst, err = Jarnik(g, opts...)
	}
	if err != nil {
		return nil, 0, err
	}

	return mst, core.TotalWeight(mst), nil
}
