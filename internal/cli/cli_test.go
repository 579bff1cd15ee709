package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/prim_kruskal"
)

// run executes the command tree and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCommand(&logs)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvsearch.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestHops(t *testing.T) {
	out, _, err := run(t, "hops", "Boston", "Miami")
	require.NoError(t, err)
	assert.Equal(t, "Boston -> Detroit -> Washington -> Miami (3 hops)\n", out)

	out, _, err = run(t, "hops", "Seattle", "Seattle")
	require.NoError(t, err)
	assert.Equal(t, "Seattle (0 hops)\n", out)
}

func TestHops_UnknownCity(t *testing.T) {
	_, _, err := run(t, "hops", "Boston", "Gotham")
	assert.ErrorIs(t, err, ErrUnknownCity)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRoute(t *testing.T) {
	out, _, err := run(t, "route", "Los Angeles", "Boston")
	require.NoError(t, err)
	assert.Equal(t,
		"  Los Angeles -(50)> Riverside\n"+
			"  Riverside -(1704)> Chicago\n"+
			"  Chicago -(238)> Detroit\n"+
			"  Detroit -(613)> Boston\n"+
			"total: 2605 miles\n", out)
}

func TestRoute_MaxMiles(t *testing.T) {
	_, _, err := run(t, "route", "Los Angeles", "Boston", "--max-miles", "2000")
	assert.ErrorIs(t, err, ErrNoRoute)

	cfg := writeConfig(t, "[route]\nmax_miles = 2000\n")
	_, _, err = run(t, "--config", cfg, "route", "Los Angeles", "Boston")
	assert.ErrorIs(t, err, ErrNoRoute)

	// an explicit flag wins over the file
	out, _, err := run(t, "--config", cfg, "route", "Los Angeles", "Boston", "--max-miles", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 2605 miles")
}

func TestMST(t *testing.T) {
	for _, method := range []string{prim_kruskal.MethodJarnik, prim_kruskal.MethodKruskal} {
		out, _, err := run(t, "mst", "--method", method)
		require.NoError(t, err, method)
		assert.Contains(t, out, "total: 5372 miles", method)
	}

	_, _, err := run(t, "mst", "--method", "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrOptionViolation)

	_, _, err = run(t, "mst", "--start", "Gotham")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestMaze(t *testing.T) {
	for _, method := range []string{"dfs", "bfs", "astar"} {
		out, _, err := run(t, "maze", "--rows", "3", "--cols", "4", "--blocked", "0", "--seed", "1", "--method", method)
		require.NoError(t, err, method)
		assert.Contains(t, out, "S")
		assert.Contains(t, out, "G")
		if method != "dfs" {
			assert.Contains(t, out, "path: 5 steps", method)
		}
	}
}

func TestMaze_Errors(t *testing.T) {
	_, _, err := run(t, "maze", "--method", "greedy")
	assert.ErrorIs(t, err, maze.ErrUnknownMethod)

	_, _, err = run(t, "maze", "--blocked", "2")
	assert.ErrorIs(t, err, maze.ErrOptionViolation)

	_, _, err = run(t, "maze", "--rows", "0")
	assert.ErrorIs(t, err, maze.ErrEmptyMaze)
}

func TestMaze_ConfigAndVerbose(t *testing.T) {
	cfg := writeConfig(t, `
[maze]
rows = 2
cols = 2
blocked = 0.0
seed = 9
method = "bfs"
`)
	out, logs, err := run(t, "--config", cfg, "--verbose", "maze")
	require.NoError(t, err)
	assert.Contains(t, out, "path: 2 steps")
	assert.Contains(t, logs, "maze generated")
	assert.Contains(t, logs, "search finished")

	_, logs, err = run(t, "--config", cfg, "maze")
	require.NoError(t, err)
	assert.NotContains(t, logs, "maze generated")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = loadConfig(writeConfig(t, "[log]\nlevel = \"debug\"\n[maze]\nrows = 4\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Maze.Rows)
	assert.Equal(t, 10, cfg.Maze.Cols)

	tests := map[string]string{
		"syntax":      "[maze\n",
		"unknown key": "[maze]\nwidth = 3\n",
		"level":       "[log]\nlevel = \"loud\"\n",
		"miles":       "[route]\nmax_miles = -1\n",
		"rows":        "[maze]\nrows = 0\n",
		"blocked":     "[maze]\nblocked = 1.5\n",
		"method":      "[maze]\nmethod = \"greedy\"\n",
	}
	for name, body := range tests {
		_, err := loadConfig(writeConfig(t, body))
		assert.ErrorIs(t, err, ErrConfig, name)
	}

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrConfig)

	_, _, err = run(t, "--config", writeConfig(t, "[maze]\nrows = -2\n"), "mst")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, DefaultConfig(), configFromContext(ctx))

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(ctx, l)))

	newProgress(l).done("finished", "n", 1)
	assert.Contains(t, buf.String(), "finished")
	assert.Contains(t, buf.String(), "took")
}

func TestSetVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvsearch v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}
