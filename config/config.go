// Package config loads and validates the level configuration: the maze
// layout, the ghosts active per level with their strategy bindings, and the
// tick policy. Configuration errors are fatal before the first game tick.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"pacman-search/maze"
)

// Config is the root of a levels file.
type Config struct {
	// TickMillis is the delay between ghost moves, in milliseconds.
	TickMillis int `toml:"tick_millis"`
	// PacmanTickMillis is the delay between Pac-Man moves.
	PacmanTickMillis int `toml:"pacman_tick_millis"`
	// StatsDir is where session statistics are written on exit.
	StatsDir string `toml:"stats_dir"`

	Maze   Maze    `toml:"maze"`
	Levels []Level `toml:"levels"`
}

// Maze holds the layout grid as rows of marker characters:
// '#' wall, '.' food, ' ' floor, 'G' ghost spawn, 'P' pacman spawn.
type Maze struct {
	Rows []string `toml:"rows"`
}

// Level describes one selectable level.
type Level struct {
	Number         int     `toml:"number"`
	Name           string  `toml:"name"`
	Ghosts         []Ghost `toml:"ghosts"`
	UserControlled bool    `toml:"user_controlled"`
	// TargetRule is how Pac-Man moves when not user controlled:
	// "static" or "random_walk".
	TargetRule string `toml:"target_rule"`
	// Recompute is the path recompute cadence: "on_exhausted" or
	// "every_tick".
	Recompute string `toml:"recompute"`
	// DriftThreshold is the Manhattan distance the target may move
	// before a held path counts as stale.
	DriftThreshold int `toml:"drift_threshold"`
	// MaxExpansions bounds each search invocation; zero = unbounded.
	MaxExpansions int `toml:"max_expansions"`
}

// Ghost binds one ghost to a search strategy.
type Ghost struct {
	ID       string `toml:"id"`
	Strategy string `toml:"strategy"`
}

// Load reads a TOML levels file and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TickInterval returns the ghost move delay as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// PacmanTickInterval returns the Pac-Man move delay as a duration.
func (c Config) PacmanTickInterval() time.Duration {
	return time.Duration(c.PacmanTickMillis) * time.Millisecond
}

func (c *Config) applyDefaults() {
	if c.TickMillis == 0 {
		c.TickMillis = 200
	}
	if c.PacmanTickMillis == 0 {
		c.PacmanTickMillis = 150
	}
	if c.StatsDir == "" {
		c.StatsDir = "data/sessions"
	}
	for i := range c.Levels {
		level := &c.Levels[i]
		if level.TargetRule == "" {
			level.TargetRule = "static"
		}
		if level.Recompute == "" {
			level.Recompute = "on_exhausted"
		}
	}
}

// Validate checks the whole configuration and fails fast on the first
// problem.
func (c Config) Validate() error {
	if len(c.Maze.Rows) == 0 {
		return fmt.Errorf("maze layout is empty")
	}
	width := len(c.Maze.Rows[0])
	ghostSpawns, pacmanSpawns := 0, 0
	for i, row := range c.Maze.Rows {
		if len(row) != width {
			return fmt.Errorf("maze row %d has %d columns, want %d", i, len(row), width)
		}
		for _, marker := range row {
			switch marker {
			case '#', '.', ' ':
			case 'G':
				ghostSpawns++
			case 'P':
				pacmanSpawns++
			default:
				return fmt.Errorf("maze row %d: unknown marker %q", i, marker)
			}
		}
	}
	if pacmanSpawns != 1 {
		return fmt.Errorf("maze layout needs exactly one pacman spawn, found %d", pacmanSpawns)
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("no levels configured")
	}
	for _, level := range c.Levels {
		if len(level.Ghosts) == 0 {
			return fmt.Errorf("level %d has no ghosts", level.Number)
		}
		if len(level.Ghosts) > ghostSpawns {
			return fmt.Errorf("level %d needs %d ghost spawns, layout has %d",
				level.Number, len(level.Ghosts), ghostSpawns)
		}
		seen := make(map[string]bool)
		for _, ghost := range level.Ghosts {
			if ghost.ID == "" {
				return fmt.Errorf("level %d: ghost with empty id", level.Number)
			}
			if seen[ghost.ID] {
				return fmt.Errorf("level %d: duplicate ghost id %q", level.Number, ghost.ID)
			}
			seen[ghost.ID] = true
			switch ghost.Strategy {
			case "bfs", "dfs", "ucs", "astar":
			default:
				return fmt.Errorf("level %d ghost %q: unknown strategy %q",
					level.Number, ghost.ID, ghost.Strategy)
			}
		}
		switch level.TargetRule {
		case "static", "random_walk":
		default:
			return fmt.Errorf("level %d: unknown target rule %q", level.Number, level.TargetRule)
		}
		switch level.Recompute {
		case "on_exhausted", "every_tick":
		default:
			return fmt.Errorf("level %d: unknown recompute cadence %q", level.Number, level.Recompute)
		}
		if level.DriftThreshold < 0 {
			return fmt.Errorf("level %d: negative drift threshold", level.Number)
		}
	}
	return nil
}

// Layout converts the marker rows into a numeric layout grid.
func (c Config) Layout() [][]int {
	layout := make([][]int, len(c.Maze.Rows))
	for r, row := range c.Maze.Rows {
		layout[r] = make([]int, len(row))
		for col, marker := range []byte(row) {
			switch marker {
			case '#':
				layout[r][col] = maze.MarkerWall
			case '.':
				layout[r][col] = maze.MarkerFood
			case 'G':
				layout[r][col] = maze.MarkerGhostSpawn
			case 'P':
				layout[r][col] = maze.MarkerPacmanSpawn
			default:
				layout[r][col] = maze.MarkerFloor
			}
		}
	}
	return layout
}

// LevelByNumber returns the level with the given number.
func (c Config) LevelByNumber(n int) (Level, bool) {
	for _, level := range c.Levels {
		if level.Number == n {
			return level, true
		}
	}
	return Level{}, false
}
