package config

// defaultRows mirrors the classic layout: a bordered maze with a central
// ghost house and food on every corridor cell.
var defaultRows = []string{
	"###################",
	"#........#........#",
	"#.##.###.#.###.##.#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#..GGGG.#....#",
	"#.##.#.#####.#.##.#",
	"#.................#",
	"#.##.###.#.###.##.#",
	"#....#...P...#....#",
	"#.##.#.#####.#.##.#",
	"#.................#",
	"###################",
}

// Default returns the built-in configuration used when no levels file is
// supplied. It reproduces the original game's six levels.
func Default() Config {
	cfg := Config{
		Maze: Maze{Rows: defaultRows},
		Levels: []Level{
			{
				Number: 1,
				Name:   "Blue Ghost (BFS)",
				Ghosts: []Ghost{{ID: "blue", Strategy: "bfs"}},
			},
			{
				Number: 2,
				Name:   "Pink Ghost (DFS)",
				Ghosts: []Ghost{{ID: "pink", Strategy: "dfs"}},
			},
			{
				Number: 3,
				Name:   "Orange Ghost (UCS)",
				Ghosts: []Ghost{{ID: "orange", Strategy: "ucs"}},
			},
			{
				Number: 4,
				Name:   "Red Ghost (A*)",
				Ghosts: []Ghost{{ID: "red", Strategy: "astar"}},
			},
			{
				Number: 5,
				Name:   "All Ghosts in Parallel",
				Ghosts: []Ghost{
					{ID: "blue", Strategy: "bfs"},
					{ID: "pink", Strategy: "dfs"},
					{ID: "orange", Strategy: "ucs"},
					{ID: "red", Strategy: "astar"},
				},
			},
			{
				Number:         6,
				Name:           "User-Controlled Pac-Man",
				UserControlled: true,
				Ghosts: []Ghost{
					{ID: "blue", Strategy: "bfs"},
					{ID: "pink", Strategy: "dfs"},
					{ID: "orange", Strategy: "ucs"},
					{ID: "red", Strategy: "astar"},
				},
			},
		},
	}
	cfg.applyDefaults()
	return cfg
}
