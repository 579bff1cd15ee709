// Package cli implements the lvsearch command-line interface.
//
// # Commands
//
//   - hops: fewest-hop route between two metros (BFS)
//   - route: shortest route in miles between two metros (Dijkstra)
//   - mst: minimum cable network over all metros (Jarnik or Kruskal)
//   - maze: random maze solved with dfs, bfs or astar
//
// # Configuration
//
// --config names an optional TOML file with [log], [route] and [maze]
// tables; flags given on the command line take precedence.
//
// # Logging
//
// Loggers travel through context.Context. --verbose (-v) forces debug
// level, which also traces frontier activity inside the algorithms.
package cli
