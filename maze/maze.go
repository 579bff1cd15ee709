package maze

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/lvsearch/core"
)

// Maze is a rectangular grid of cells with one start and one goal.
// Moves go left, right, up or down into any square that is not Blocked.
type Maze struct {
	rows, cols int
	grid       [][]Cell
	start      Location
	goal       Location
}

// New builds a rows×cols maze whose squares are walled independently with
// probability BlockedFraction. The start and goal squares are always open.
// Returns ErrEmptyMaze for non-positive dimensions, ErrOutOfBounds when the
// start or goal lies outside the grid, ErrOptionViolation for invalid options.
// Complexity: O(rows×cols).
func New(rows, cols int, opts ...Option) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyMaze, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.HasGoal {
		o.Goal = Location{rows - 1, cols - 1}
	}
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Maze{rows: rows, cols: cols, start: o.Start, goal: o.Goal}
	for _, loc := range []Location{o.Start, o.Goal} {
		if !m.InBounds(loc) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, loc, rows, cols)
		}
	}
	m.grid = make([][]Cell, rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, cols)
		for c := range m.grid[r] {
			m.grid[r][c] = Empty
			if rng.Float64() < o.BlockedFraction {
				m.grid[r][c] = Blocked
			}
		}
	}
	m.set(o.Start, Start)
	m.set(o.Goal, Goal)

	return m, nil
}

// Parse reads a maze from text rows using the Cell runes
// (' ' empty, 'X' blocked, 'S' start, 'G' goal, '*' path).
// Exactly one 'S' and one 'G' are required.
// Complexity: O(rows×cols).
func Parse(lines []string) (*Maze, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	m := &Maze{rows: len(lines), cols: len([]rune(lines[0]))}
	m.grid = make([][]Cell, m.rows)
	var starts, goals int
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), m.cols)
		}
		m.grid[r] = make([]Cell, m.cols)
		for c, ch := range runes {
			cell := Cell(ch)
			if !cell.valid() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, ch, r, c)
			}
			switch cell {
			case Start:
				starts++
				m.start = Location{r, c}
			case Goal:
				goals++
				m.goal = Location{r, c}
			}
			m.grid[r][c] = cell
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: found %d start, %d goal", ErrEndpoints, starts, goals)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the start location.
func (m *Maze) Start() Location { return m.start }

// Goal returns the goal location.
func (m *Maze) Goal() Location { return m.goal }

// InBounds reports whether loc lies within the grid.
func (m *Maze) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < m.rows && loc.Col >= 0 && loc.Col < m.cols
}

// At returns the cell at loc, or ErrOutOfBounds.
func (m *Maze) At(loc Location) (Cell, error) {
	if !m.InBounds(loc) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, loc)
	}
	return m.grid[loc.Row][loc.Col], nil
}

// Blocked returns the number of walled squares.
func (m *Maze) Blocked() int {
	n := 0
	for _, row := range m.grid {
		for _, c := range row {
			if c == Blocked {
				n++
			}
		}
	}
	return n
}

// GoalTest reports whether loc is the goal.
func (m *Maze) GoalTest(loc Location) bool { return loc == m.goal }

// Successors returns the open neighbours of loc in the order
// left, right, up, down.
func (m *Maze) Successors(loc Location) []Location {
	next := make([]Location, 0, 4)
	for _, d := range [...]Location{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		n := Location{loc.Row + d.Row, loc.Col + d.Col}
		if m.open(n) {
			next = append(next, n)
		}
	}
	return next
}

// Manhattan is the L1 distance from loc to the goal, admissible for
// unit-cost orthogonal moves.
func (m *Maze) Manhattan(loc Location) float64 {
	dr := math.Abs(float64(loc.Row - m.goal.Row))
	dc := math.Abs(float64(loc.Col - m.goal.Col))
	return dr + dc
}

// Euclidean is the straight-line distance from loc to the goal.
func (m *Maze) Euclidean(loc Location) float64 {
	return math.Hypot(float64(loc.Row-m.goal.Row), float64(loc.Col-m.goal.Col))
}

// MarkPath draws path onto the grid with Path cells; the start and goal
// keep their own marks.
func (m *Maze) MarkPath(path []Location) {
	for _, loc := range path {
		if m.InBounds(loc) {
			m.grid[loc.Row][loc.Col] = Path
		}
	}
	m.set(m.start, Start)
	m.set(m.goal, Goal)
}

// ClearPath turns every Path cell back into Empty.
func (m *Maze) ClearPath() {
	for _, row := range m.grid {
		for c := range row {
			if row[c] == Path {
				row[c] = Empty
			}
		}
	}
}

// String renders one text line per row, each terminated by a newline.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for _, row := range m.grid {
		for _, c := range row {
			sb.WriteRune(rune(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Graph converts the open squares into an undirected unit-weight graph
// labeled by Location, with one edge per pair of orthogonally adjacent
// open squares. Vertices are added in row-major order.
// Complexity: O(rows×cols).
func (m *Maze) Graph() *core.Graph[Location, core.Unit] {
	g := core.NewGraph[Location, core.Unit]()
	index := make(map[Location]int, m.rows*m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			loc := Location{r, c}
			if m.open(loc) {
				index[loc] = g.AddVertex(loc)
			}
		}
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			u, ok := index[Location{r, c}]
			if !ok {
				continue
			}
			// right and down only, so each pair is added once
			for _, d := range [...]Location{{0, 1}, {1, 0}} {
				if v, ok := index[Location{r + d.Row, c + d.Col}]; ok {
					_ = g.AddEdgeByIndices(u, v, core.Unit{})
				}
			}
		}
	}
	return g
}

func (m *Maze) open(loc Location) bool {
	return m.InBounds(loc) && m.grid[loc.Row][loc.Col] != Blocked
}

func (m *Maze) set(loc Location, c Cell) {
	m.grid[loc.Row][loc.Col] = c
}
