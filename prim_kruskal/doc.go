// Package prim_kruskal computes minimum spanning trees (MST) of undirected,
// weighted core.Graph values.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     connects every vertex with minimum total weight; it always has |V|-1 edges.
//   - Typical uses: cheapest network backbone, clustering by cutting heavy
//     tree edges, and as a bound in routing heuristics.
//
// Algorithms Provided
//
//   - Jarnik(g, opts...) ([]core.Edge[W], error)
//     Grows the tree from a start vertex (0 by default, see WithStart). The
//     visited set is a sparse set over vertex indices; candidate edges sit in
//     a frontier.PriorityQueue ordered by weight, ties by push order. Popped
//     edges whose far endpoint is already in the tree are discarded.
//     Time O(E log E), memory O(V + E).
//
//   - Kruskal(g) ([]core.Edge[W], error)
//     Sorts edges by weight and merges components with union-find.
//     Time O(E log E + α(V)·E). Used as a cross-check for Jarnik.
//
//   - Compute(g, opts...) dispatches on WithMethod and also returns the total weight.
//
// Disconnected graphs
//
// Jarnik returns the spanning tree of the start vertex's component only; it
// does not pretend that tree spans the graph. Pass WithRequireConnected to get
// ErrDisconnected instead. Kruskal always reports ErrDisconnected.
//
// Verification
//
//   - IsSpanningTree(g, edges): the edges touch exactly VertexCount distinct vertices.
//   - IsTree(g, edges): spanning, exactly V-1 edges, and acyclic.
//
// Callers holding a result of unknown provenance should prefer IsTree; a
// spanning edge set may still contain a cycle.
package prim_kruskal
