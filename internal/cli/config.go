package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvsearch/maze"
)

// ErrConfig is returned for unreadable or invalid configuration files.
var ErrConfig = errors.New("cli: invalid configuration")

// Config is the optional TOML configuration. Command-line flags override it.
//
//	[log]
//	level = "debug"
//
//	[route]
//	max_miles = 3000
//
//	[maze]
//	rows = 10
//	cols = 10
//	blocked = 0.2
//	seed = 7
//	method = "astar"
type Config struct {
	Log   LogConfig   `toml:"log"`
	Route RouteConfig `toml:"route"`
	Maze  MazeConfig  `toml:"maze"`
}

// LogConfig selects the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `toml:"level"`
}

// RouteConfig bounds route searches; MaxMiles 0 means unbounded.
type RouteConfig struct {
	MaxMiles int `toml:"max_miles"`
}

// MazeConfig shapes the generated maze. Seed 0 means a time-based seed.
type MazeConfig struct {
	Rows    int     `toml:"rows"`
	Cols    int     `toml:"cols"`
	Blocked float64 `toml:"blocked"`
	Seed    int64   `toml:"seed"`
	Method  string  `toml:"method"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log:  LogConfig{Level: "info"},
		Maze: MazeConfig{Rows: 10, Cols: 10, Blocked: 0.2, Method: string(maze.MethodAStar)},
	}
}

// loadConfig decodes path over DefaultConfig. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: %s: unknown key %q", ErrConfig, path, undecoded[0].String())
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrConfig, err)
	}
	if c.Route.MaxMiles < 0 {
		return fmt.Errorf("%w: route.max_miles must not be negative", ErrConfig)
	}
	if c.Maze.Rows <= 0 || c.Maze.Cols <= 0 {
		return fmt.Errorf("%w: maze dimensions must be positive", ErrConfig)
	}
	if c.Maze.Blocked < 0 || c.Maze.Blocked > 1 {
		return fmt.Errorf("%w: maze.blocked must be in [0,1]", ErrConfig)
	}
	if _, err := maze.ParseMethod(c.Maze.Method); err != nil {
		return fmt.Errorf("%w: maze.method: %w", ErrConfig, err)
	}
	return nil
}
