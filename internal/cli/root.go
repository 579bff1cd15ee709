package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the lvsearch command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "lvsearch",
		Short:         "lvsearch runs graph searches over US metros and random mazes",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			level, _ := charmlog.ParseLevel(cfg.Log.Level)
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvsearch %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newHopsCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newMSTCmd())
	root.AddCommand(newMazeCmd())

	return root
}

// Execute runs the command tree with ctx, logging to logOut.
func Execute(ctx context.Context, logOut io.Writer) error {
	return NewRootCommand(logOut).ExecuteContext(ctx)
}
