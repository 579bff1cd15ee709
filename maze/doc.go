// Package maze is a grid state space for the search package.
//
// A Maze is a rectangle of Cells (Empty, Blocked, Start, Goal, Path) with a
// single start and goal. It supplies the callables the searches need:
//
//   - GoalTest: loc == goal
//   - Successors: open neighbours in the order left, right, up, down
//   - Manhattan and Euclidean: distance-to-goal heuristics
//
// Mazes are filled randomly by New (seeded with WithSeed or WithRand for
// reproducible layouts) or read from text by Parse. MarkPath and ClearPath
// draw a solution onto the grid, and String renders it one line per row.
// Graph exposes the open squares as a *core.Graph for the graph algorithms.
//
// Example:
//
//	m, _ := maze.Parse([]string{"S X", "   ", "X G"})
//	res, _ := m.Solve(maze.MethodAStar)
//	m.MarkPath(res.Path())
//	fmt.Print(m)
package maze
