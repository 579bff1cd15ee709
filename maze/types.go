package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for maze construction and queries.
var (
	// ErrEmptyMaze indicates a maze with no rows or no columns.
	ErrEmptyMaze = errors.New("maze: maze must have at least one row and one column")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrOutOfBounds indicates a location outside the grid.
	ErrOutOfBounds = errors.New("maze: location outside the grid")
	// ErrUnknownCell indicates an unrecognized cell character in Parse input.
	ErrUnknownCell = errors.New("maze: unrecognized cell character")
	// ErrEndpoints indicates Parse input without exactly one start and one goal.
	ErrEndpoints = errors.New("maze: exactly one start and one goal required")
	// ErrUnknownMethod indicates Solve was asked for an unsupported algorithm.
	ErrUnknownMethod = errors.New("maze: unknown search method")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Cell is the content of one grid square, rendered as its rune.
type Cell rune

const (
	// Empty squares can be entered.
	Empty Cell = ' '
	// Blocked squares are walls.
	Blocked Cell = 'X'
	// Start marks the initial location.
	Start Cell = 'S'
	// Goal marks the target location.
	Goal Cell = 'G'
	// Path marks a square on a solution drawn by MarkPath.
	Path Cell = '*'
)

// valid reports whether c is one of the known cell kinds.
func (c Cell) valid() bool {
	switch c {
	case Empty, Blocked, Start, Goal, Path:
		return true
	}
	return false
}

// Location addresses a square by row and column, both zero-based.
type Location struct {
	Row, Col int
}

// String renders the location as "(row,col)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Method names a search algorithm understood by Solve.
type Method string

const (
	MethodDFS   Method = "dfs"
	MethodBFS   Method = "bfs"
	MethodAStar Method = "astar"
)

// Option configures New.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters of a randomly filled maze.
type Options struct {
	// BlockedFraction is the probability that any square becomes a wall.
	BlockedFraction float64
	// Start is the initial location.
	Start Location
	// Goal is the target location; the bottom-right corner unless HasGoal.
	Goal    Location
	HasGoal bool
	// Rand drives the fill; nil means a time-seeded source.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns Options with a 0.2 blocked fraction, the start in
// the top-left corner and the goal in the bottom-right corner.
func DefaultOptions() Options {
	return Options{
		BlockedFraction: 0.2,
		Start:           Location{0, 0},
	}
}

// WithBlockedFraction sets the wall probability; f must lie in [0,1].
func WithBlockedFraction(f float64) Option {
	return func(o *Options) {
		if math.IsNaN(f) || f < 0 || f > 1 {
			o.err = fmt.Errorf("%w: blocked fraction %v not in [0,1]", ErrOptionViolation, f)
			return
		}
		o.BlockedFraction = f
	}
}

// WithStart sets the start location.
func WithStart(loc Location) Option {
	return func(o *Options) { o.Start = loc }
}

// WithGoal sets the goal location.
func WithGoal(loc Location) Option {
	return func(o *Options) {
		o.Goal = loc
		o.HasGoal = true
	}
}

// WithSeed fills the maze from a source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand fills the maze from r.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}
