// Package search implements generic state-space search over an opaque,
// comparable state type S.
//
// Entry points:
//
//   - DFS(initial, goal, successors, opts...)   depth-first, explicit stack
//   - BFS(initial, goal, successors, opts...)   breadth-first, fewest steps
//   - AStar(initial, goal, successors, step, heuristic, opts...)
//     best-first on Cost+Heuristic with cost-indexed relaxation
//
// Every run allocates an Arena of Nodes. A Node stores its parent as an
// arena index (NodeID), so parent chains can be walked and serialized without
// pointer cycles; Arena.PathOf and Result.Path rebuild the root→goal state
// sequence.
//
// "No solution" is a normal outcome (Result.Found == false), never an error.
// Errors are reserved for invalid input (nil callables, bad options) and for
// caller-imposed aborts (WithMaxExpansions, an OnExpand hook returning an
// error).
//
// Options:
//
//   - WithMaxExpansions(n)   bound the number of expansions (n ≥ 0).
//   - WithOnExpand(fn)       hook per expanded node; an error aborts.
//   - WithLogger(l)          debug tracing via charmbracelet/log.
//
// Example:
//
//	res, err := search.BFS("Boston",
//	    func(s string) bool { return s == "Miami" },
//	    func(s string) []string { nbs, _ := g.NeighborsOfLabel(s); return nbs },
//	)
//	if err == nil && res.Found {
//	    fmt.Println(res.Path())
//	}
//
// Concurrency: a search run is single-goroutine and synchronous; callables are
// invoked on the calling goroutine.
package search
