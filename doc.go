// Package lvsearch is a small, generic toolkit for searching state spaces
// and weighted graphs.
//
// 🚀 What is inside?
//
//	• core/         — Graph[L, W]: labeled vertices, symmetric weighted edges
//	• frontier/     — Stack, Queue and PriorityQueue containers
//	• search/       — DFS, BFS and A* over any comparable state type
//	• dijkstra/     — single-source shortest paths with stale-entry discard
//	• prim_kruskal/ — minimum spanning trees (Jarnik, Kruskal) and checks
//	• builder/      — deterministic fixture graphs (cycles, grids, random)
//	• maze/         — grid maze state space with heuristics
//	• cities/       — the fifteen-metro US route network
//
// ✨ Guarantees
//
//   - Generic all the way down: states, labels and weights are type parameters
//   - No recursion: DFS keeps an explicit stack, so deep spaces are safe
//   - Errors are sentinels; branch with errors.Is
//   - Optional charmbracelet/log tracing through WithLogger options
//
// Quick example:
//
//	g := cities.Unweighted()
//	res, _ := search.BFS("Boston",
//	    func(s string) bool { return s == "Miami" },
//	    func(s string) []string { nbs, _ := g.NeighborsOfLabel(s); return nbs })
//	fmt.Println(res.Path()) // [Boston Detroit Washington Miami]
//
// The lvsearch command (cmd/lvsearch) exposes the same algorithms:
//
//	go run ./cmd/lvsearch route "Los Angeles" Boston
package lvsearch
