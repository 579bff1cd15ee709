// Package core provides the in-memory Graph used by lvsearch algorithms.
//
// The Graph G = (V,E) is index-based:
//
//   - Vertices are numbered 0..V-1 in insertion order and carry a label.
//   - Each vertex owns an ordered slice of outgoing Edge values.
//   - AddEdge stores an undirected edge as (u→v) and its reversal (v→u), so a
//     graph built only with AddEdge is always symmetric.
//   - AddDirectedEdge stores a single direction for callers that need it.
//   - Parallel edges and self-loops are permitted (no dedup, no rejection).
//
// Edge payloads:
//
//	Graph[string, core.Unit]  // unweighted
//	Graph[string, int]        // integer weights
//	Graph[string, float64]    // float weights (NaN/Inf rejected)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label L) int                     // O(1)
//	VertexAt(i int) (L, error)                 // O(1)
//	IndexOf(label L) (int, error)              // O(V), first match wins
//
//	// Edge lifecycle
//	AddEdge(e Edge[W]) error                   // O(1)
//	AddEdgeByIndices(u, v int, w W) error      // O(1)
//	AddEdgeByLabels(l1, l2 L, w W) error       // O(V)
//	AddDirectedEdge(u, v int, w W) error       // O(1)
//
//	// Queries
//	Edges(i int) ([]Edge[W], error)            // O(deg)
//	Neighbors(i int) ([]L, error)              // O(deg)
//	NeighborsOfLabel(label L) ([]L, error)     // O(V + deg)
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Build it once, then hand it
//	to the search, dijkstra or prim_kruskal packages read-only.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph[string, core.Unit]("A", "B", "C", "D")
//	_ = g.AddEdgeByLabels("A", "B", core.Unit{})
//	_ = g.AddEdgeByLabels("A", "C", core.Unit{})
//	_ = g.AddEdgeByLabels("B", "D", core.Unit{})
//	_ = g.AddEdgeByLabels("C", "D", core.Unit{})
package core
