// Package dijkstra implements single-source shortest paths over a weighted
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths(g, root) returns a Result with one Distance per vertex and
//     a predecessor-edge map (vertex → edge ending its shortest path).
//   - ShortestPathsFrom(g, label) is the label-addressed variant.
//   - PathBetween and Result.PathTo rebuild a path as a slice of edges.
//   - DistancesByLabel re-keys a distance slice by vertex label.
//
// The frontier is a frontier.PriorityQueue ordered by tentative distance,
// ties broken by push order. Decrease-key is lazy: an improved distance is
// pushed as a new entry and the superseded one is discarded when popped.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d stay unreached.
//   - WithLogger(l): debug traces of settled and discarded entries.
//
// Errors (sentinel):
//
//   - ErrNilGraph:        g is nil.
//   - ErrNegativeWeight:  an edge weight is negative (O(E) upfront scan).
//   - ErrOptionViolation: e.g. negative MaxDistance.
//   - core.ErrIndexOutOfRange / core.ErrVertexNotFound: bad root.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Example:
//
//	g := cities.WeightedByDistance()
//	res, _ := dijkstra.ShortestPathsFrom(g, "Los Angeles")
//	for _, e := range res.PathTo(boston) {
//	    fmt.Println(g.FormatEdge(e))
//	}
package dijkstra
