package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacman-search/maze"
)

func validConfig() Config {
	return Config{
		Maze: Maze{Rows: []string{
			"#####",
			"#P.G#",
			"#####",
		}},
		Levels: []Level{{
			Number:     1,
			Name:       "test",
			TargetRule: "static",
			Recompute:  "on_exhausted",
			Ghosts:     []Ghost{{ID: "blue", Strategy: "bfs"}},
		}},
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Levels, 6)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, 150*time.Millisecond, cfg.PacmanTickInterval())

	// The layout must build a graph with enough spawns for every level.
	g, err := maze.NewGraph(cfg.Layout())
	require.NoError(t, err)
	_, ghosts, ok := g.SpawnPoints()
	require.True(t, ok)
	for _, level := range cfg.Levels {
		assert.GreaterOrEqual(t, len(ghosts), len(level.Ghosts),
			"level %d", level.Number)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty maze", func(c *Config) { c.Maze.Rows = nil }},
		{"ragged rows", func(c *Config) { c.Maze.Rows = []string{"####", "#P#"} }},
		{"unknown marker", func(c *Config) { c.Maze.Rows[1] = "#PxG#" }},
		{"no pacman spawn", func(c *Config) { c.Maze.Rows[1] = "#..G#" }},
		{"two pacman spawns", func(c *Config) { c.Maze.Rows[1] = "#PPG#" }},
		{"no levels", func(c *Config) { c.Levels = nil }},
		{"no ghosts", func(c *Config) { c.Levels[0].Ghosts = nil }},
		{"more ghosts than spawns", func(c *Config) {
			c.Levels[0].Ghosts = append(c.Levels[0].Ghosts, Ghost{ID: "pink", Strategy: "dfs"})
		}},
		{"empty ghost id", func(c *Config) { c.Levels[0].Ghosts[0].ID = "" }},
		{"duplicate ghost id", func(c *Config) {
			c.Maze.Rows[1] = "#PGG#"
			c.Levels[0].Ghosts = []Ghost{
				{ID: "blue", Strategy: "bfs"},
				{ID: "blue", Strategy: "dfs"},
			}
		}},
		{"unknown strategy", func(c *Config) { c.Levels[0].Ghosts[0].Strategy = "dijkstra" }},
		{"unknown target rule", func(c *Config) { c.Levels[0].TargetRule = "chase" }},
		{"unknown recompute cadence", func(c *Config) { c.Levels[0].Recompute = "sometimes" }},
		{"negative drift threshold", func(c *Config) { c.Levels[0].DriftThreshold = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLayoutMarkers(t *testing.T) {
	cfg := validConfig()
	cfg.Maze.Rows = []string{
		"#. GP",
	}

	assert.Equal(t, [][]int{{
		maze.MarkerWall,
		maze.MarkerFood,
		maze.MarkerFloor,
		maze.MarkerGhostSpawn,
		maze.MarkerPacmanSpawn,
	}}, cfg.Layout())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("valid file with defaults applied", func(t *testing.T) {
		path := write("levels.toml", `
[maze]
rows = ["#####", "#P.G#", "#####"]

[[levels]]
number = 1
name = "one"
ghosts = [{ id = "blue", strategy = "bfs" }]
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 200, cfg.TickMillis)
		assert.Equal(t, "data/sessions", cfg.StatsDir)
		require.Len(t, cfg.Levels, 1)
		assert.Equal(t, "static", cfg.Levels[0].TargetRule)
		assert.Equal(t, "on_exhausted", cfg.Levels[0].Recompute)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(write("broken.toml", "maze = ["))
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := Load(write("invalid.toml", `
[maze]
rows = ["#####", "#..G#", "#####"]

[[levels]]
number = 1
ghosts = [{ id = "blue", strategy = "bfs" }]
`))
		assert.Error(t, err)
	})

	t.Run("level lookup", func(t *testing.T) {
		cfg := validConfig()
		level, ok := cfg.LevelByNumber(1)
		require.True(t, ok)
		assert.Equal(t, "test", level.Name)
		_, ok = cfg.LevelByNumber(99)
		assert.False(t, ok)
	})
}
