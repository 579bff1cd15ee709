package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// mazeOpts holds the maze command flags; unset flags fall back to [maze].
type mazeOpts struct {
	rows, cols int
	blocked    float64
	seed       int64
	method     string
}

// merge fills every flag the user did not set from cfg.
func (o *mazeOpts) merge(cmd *cobra.Command, cfg MazeConfig) {
	flags := cmd.Flags()
	if !flags.Changed("rows") {
		o.rows = cfg.Rows
	}
	if !flags.Changed("cols") {
		o.cols = cfg.Cols
	}
	if !flags.Changed("blocked") {
		o.blocked = cfg.Blocked
	}
	if !flags.Changed("seed") {
		o.seed = cfg.Seed
	}
	if !flags.Changed("method") {
		o.method = cfg.Method
	}
}

func newMazeCmd() *cobra.Command {
	var opts mazeOpts

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a random maze and solve it",
		Example: `  lvsearch maze --seed 7
  lvsearch maze --rows 20 --cols 40 --blocked 0.3 --method bfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			opts.merge(cmd, configFromContext(ctx).Maze)

			method, err := maze.ParseMethod(opts.method)
			if err != nil {
				return err
			}
			mopts := []maze.Option{maze.WithBlockedFraction(opts.blocked)}
			if opts.seed != 0 {
				mopts = append(mopts, maze.WithSeed(opts.seed))
			}
			m, err := maze.New(opts.rows, opts.cols, mopts...)
			if err != nil {
				return err
			}
			logger.Debug("maze generated", "rows", m.Rows(), "cols", m.Cols(), "blocked", m.Blocked())

			p := newProgress(logger)
			res, err := m.Solve(method, search.WithLogger(logger))
			if err != nil {
				return err
			}
			p.done("search finished", "method", method, "expanded", res.Expanded)

			out := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprint(out, m)
				fmt.Fprintln(out, "no solution")
				return nil
			}
			m.MarkPath(res.Path())
			fmt.Fprint(out, m)
			fmt.Fprintf(out, "path: %d steps\n", len(res.Path())-1)
			return nil
		},
	}

	def := DefaultConfig().Maze
	cmd.Flags().IntVar(&opts.rows, "rows", def.Rows, "number of rows")
	cmd.Flags().IntVar(&opts.cols, "cols", def.Cols, "number of columns")
	cmd.Flags().Float64Var(&opts.blocked, "blocked", def.Blocked, "probability that a square is a wall")
	cmd.Flags().Int64Var(&opts.seed, "seed", def.Seed, "random seed (0: time-based)")
	cmd.Flags().StringVar(&opts.method, "method", def.Method, "dfs, bfs or astar")

	return cmd
}
