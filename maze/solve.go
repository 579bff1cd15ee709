package maze

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// Solve runs the named search from the start to the goal. AStar uses unit
// step costs and the Manhattan heuristic. opts are passed to the search.
// Returns ErrUnknownMethod for an unsupported method.
func (m *Maze) Solve(method Method, opts ...search.Option) (*search.Result[Location], error) {
	switch method {
	case MethodDFS:
		return search.DFS(m.start, m.GoalTest, m.Successors, opts...)
	case MethodBFS:
		return search.BFS(m.start, m.GoalTest, m.Successors, opts...)
	case MethodAStar:
		return search.AStar(m.start, m.GoalTest, m.Successors, unitStep, m.Manhattan, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// ParseMethod maps a case-sensitive name ("dfs", "bfs", "astar") to a Method.
func ParseMethod(name string) (Method, error) {
	switch m := Method(name); m {
	case MethodDFS, MethodBFS, MethodAStar:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

func unitStep(_, _ Location) float64 { return 1 }
