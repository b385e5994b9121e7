package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pacman-search/config"
	"pacman-search/game"
	"pacman-search/logging"
	"pacman-search/ui"
)

type screen int

const (
	screenMenu screen = iota
	screenLevelSelect
	screenGame
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML levels file (built-in levels when empty)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := logging.New("pacman-search", *debug)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid configuration")
		}
		cfg = loaded
	}

	rl.InitWindow(1280, 800, "Pac-Man Search Algorithms")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	// ESC navigates back between screens; only Q quits.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()

	current := screenMenu
	selected := 0
	showPath := false
	showStats := false
	var session *game.Session

	ghostInterval := cfg.TickInterval()
	pacmanInterval := cfg.PacmanTickInterval()
	lastGhostTick := time.Now()
	lastPacmanTick := time.Now()
	var animTime float32

	startLevel := func(level config.Level) {
		s, err := game.NewSession(cfg, level, logger, uint64(time.Now().UnixNano()))
		if err != nil {
			logger.Fatal().Err(err).Msg("level setup failed")
		}
		session = s
		lastGhostTick = time.Now()
		lastPacmanTick = time.Now()
		logger.Info().Int("level", level.Number).Str("name", level.Name).Msg("level started")
	}

	saveStats := func() {
		if session == nil {
			return
		}
		if err := session.Stats().Save(cfg.StatsDir); err != nil {
			logger.Warn().Err(err).Msg("failed to save session stats")
		}
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		switch current {
		case screenMenu:
			if rl.IsKeyPressed(rl.KeySpace) {
				current = screenLevelSelect
			}
			renderer.DrawMenu()

		case screenLevelSelect:
			if rl.IsKeyPressed(rl.KeyEscape) {
				current = screenMenu
			}
			if rl.IsKeyPressed(rl.KeyUp) && selected > 0 {
				selected--
			}
			if rl.IsKeyPressed(rl.KeyDown) && selected < len(cfg.Levels)-1 {
				selected++
			}
			if rl.IsKeyPressed(rl.KeyEnter) {
				startLevel(cfg.Levels[selected])
				current = screenGame
			}
			renderer.DrawLevelSelect(cfg.Levels, selected)

		case screenGame:
			if rl.IsKeyPressed(rl.KeyEscape) {
				saveStats()
				session = nil
				current = screenLevelSelect
				break
			}
			if rl.IsKeyPressed(rl.KeyP) {
				showPath = !showPath
			}
			if rl.IsKeyPressed(rl.KeyS) {
				showStats = !showStats
			}
			if session.LevelComplete() && rl.IsKeyPressed(rl.KeyEnter) {
				saveStats()
				if selected < len(cfg.Levels)-1 {
					selected++
				}
				startLevel(cfg.Levels[selected])
			}

			animTime += 5.25 * rl.GetFrameTime()

			if !session.LevelComplete() {
				if time.Since(lastPacmanTick) >= pacmanInterval {
					lastPacmanTick = time.Now()
					if session.Level.UserControlled {
						if dir, ok := pressedDirection(); ok {
							session.MovePacman(dir)
						}
					} else {
						session.MoveTarget()
					}
				}
				if time.Since(lastGhostTick) >= ghostInterval {
					lastGhostTick = time.Now()
					session.TickGhosts()
				}
			}

			renderer.DrawGame(session, showPath, showStats, animTime)
		}
	}

	saveStats()
}

// pressedDirection reads the held arrow keys in a fixed priority order.
func pressedDirection() (game.Direction, bool) {
	switch {
	case rl.IsKeyDown(rl.KeyRight):
		return game.DirRight, true
	case rl.IsKeyDown(rl.KeyDown):
		return game.DirDown, true
	case rl.IsKeyDown(rl.KeyLeft):
		return game.DirLeft, true
	case rl.IsKeyDown(rl.KeyUp):
		return game.DirUp, true
	}
	return game.DirRight, false
}
