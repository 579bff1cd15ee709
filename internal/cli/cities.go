package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/cities"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/prim_kruskal"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for the metro commands.
var (
	// ErrUnknownCity is returned for a metro name missing from the network.
	ErrUnknownCity = errors.New("cli: unknown city")
	// ErrNoRoute is returned when the destination cannot be reached.
	ErrNoRoute = errors.New("cli: no route")
)

// cityIndex resolves name to its vertex index.
func cityIndex[W any](g *core.Graph[string, W], name string) (int, error) {
	i, err := g.IndexOf(name)
	if err != nil {
		return 0, fmt.Errorf("%w %q (known: %s): %w", ErrUnknownCity, name, strings.Join(cities.Names(), ", "), err)
	}
	return i, nil
}

func newHopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hops <from> <to>",
		Short: "Find the route with the fewest hops between two metros",
		Example: `  lvsearch hops Boston Miami
  lvsearch hops "Los Angeles" "New York"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g := cities.Unweighted()
			from, to := args[0], args[1]
			for _, name := range args {
				if _, err := cityIndex(g, name); err != nil {
					return err
				}
			}

			p := newProgress(logger)
			res, err := search.BFS(from,
				func(s string) bool { return s == to },
				func(s string) []string { nbs, _ := g.NeighborsOfLabel(s); return nbs },
				search.WithLogger(logger))
			if err != nil {
				return err
			}
			p.done("bfs finished", "expanded", res.Expanded)

			path, err := res.PathTo()
			if err != nil {
				return fmt.Errorf("%w from %s to %s: %w", ErrNoRoute, from, to, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d hops)\n", strings.Join(path, " -> "), len(path)-1)
			return nil
		},
	}
}

func newRouteCmd() *cobra.Command {
	var maxMiles int

	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Find the shortest route in miles between two metros",
		Example: `  lvsearch route "Los Angeles" Boston
  lvsearch route Seattle Miami --max-miles 3000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if !cmd.Flags().Changed("max-miles") {
				maxMiles = configFromContext(ctx).Route.MaxMiles
			}

			g := cities.WeightedByDistance()
			from, err := cityIndex(g, args[0])
			if err != nil {
				return err
			}
			to, err := cityIndex(g, args[1])
			if err != nil {
				return err
			}

			opts := []dijkstra.Option[int]{dijkstra.WithLogger[int](logger)}
			if maxMiles > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(maxMiles))
			}
			p := newProgress(logger)
			res, err := dijkstra.ShortestPaths(g, from, opts...)
			if err != nil {
				return err
			}
			p.done("dijkstra finished", "root", args[0])

			if !res.Distances[to].Reached {
				if maxMiles > 0 {
					return fmt.Errorf("%w from %s to %s within %d miles", ErrNoRoute, args[0], args[1], maxMiles)
				}
				return fmt.Errorf("%w from %s to %s", ErrNoRoute, args[0], args[1])
			}
			out := cmd.OutOrStdout()
			for _, e := range res.PathTo(to) {
				fmt.Fprintf(out, "  %s\n", g.FormatEdge(e))
			}
			fmt.Fprintf(out, "total: %d miles\n", res.Distances[to].Value)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxMiles, "max-miles", 0, "ignore routes longer than this (0: unbounded)")

	return cmd
}

func newMSTCmd() *cobra.Command {
	var (
		method string
		start  string
	)

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute the minimum network of roads connecting every metro",
		Example: `  lvsearch mst
  lvsearch mst --method kruskal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g := cities.WeightedByDistance()
			s, err := cityIndex(g, start)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			tree, total, err := prim_kruskal.Compute(g,
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithStart(s),
				prim_kruskal.WithLogger(logger))
			if err != nil {
				return err
			}
			p.done("spanning tree finished", "method", method, "edges", len(tree))
			if !prim_kruskal.IsSpanningTree(g, tree) {
				logger.Warn("tree does not span every metro", "edges", len(tree), "metros", g.VertexCount())
			}

			out := cmd.OutOrStdout()
			for _, e := range tree {
				fmt.Fprintf(out, "  %s\n", g.FormatEdge(e))
			}
			fmt.Fprintf(out, "total: %d miles\n", total)
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodJarnik, "jarnik or kruskal")
	cmd.Flags().StringVar(&start, "start", "Seattle", "start metro for jarnik")

	return cmd
}
