// Package game holds the chase core: per-ghost path executors, the run
// coordinator that ticks them against a shared target snapshot, and the
// level session that owns Pac-Man, food and collisions.
package game

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"pacman-search/config"
	"pacman-search/maze"
	"pacman-search/search"
)

// Session is one playthrough of a level: the immutable maze graph, the
// ghost coordinator, Pac-Man's state and the remaining food.
type Session struct {
	Level config.Level

	graph  *maze.Graph
	coord  *Coordinator
	stats  *SessionStats
	logger zerolog.Logger
	rng    *rand.Rand

	pacman        maze.Cell
	pacmanDir     Direction
	pacmanSpawn   maze.Cell
	ghostSpawns   []maze.Cell
	food          map[maze.Cell]bool
	levelComplete bool

	prevSearches map[string]int
}

// NewSession builds a session for one level from the validated
// configuration. The seed fixes the target's random walk, making a session
// reproducible.
func NewSession(cfg config.Config, level config.Level, logger zerolog.Logger, seed uint64) (*Session, error) {
	graph, err := maze.NewGraph(cfg.Layout())
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", level.Number, err)
	}
	pacmanSpawn, ghostSpawns, ok := graph.SpawnPoints()
	if !ok {
		return nil, fmt.Errorf("level %d: %w: no pacman spawn", level.Number, maze.ErrMalformedLayout)
	}
	if len(ghostSpawns) < len(level.Ghosts) {
		return nil, fmt.Errorf("level %d: %d ghosts configured but only %d spawns",
			level.Number, len(level.Ghosts), len(ghostSpawns))
	}

	s := &Session{
		Level:        level,
		graph:        graph,
		stats:        NewSessionStats(level.Number),
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		pacman:       pacmanSpawn,
		pacmanDir:    DirRight,
		pacmanSpawn:  pacmanSpawn,
		ghostSpawns:  ghostSpawns,
		food:         make(map[maze.Cell]bool),
		prevSearches: make(map[string]int),
	}
	for _, c := range graph.FoodCells() {
		s.food[c] = true
	}

	// Overlap avoidance only matters once several ghosts share the maze.
	s.coord = NewCoordinator(logger, len(level.Ghosts) > 1)
	for i, gc := range level.Ghosts {
		strategy, err := search.New(gc.Strategy)
		if err != nil {
			return nil, fmt.Errorf("level %d ghost %q: %w", level.Number, gc.ID, err)
		}
		executor := NewPathExecutor(graph, strategy,
			Cadence(level.Recompute), level.DriftThreshold, level.MaxExpansions)
		s.coord.Add(NewGhost(gc.ID, ghostSpawns[i], executor))
	}
	return s, nil
}

// Graph returns the session's maze graph.
func (s *Session) Graph() *maze.Graph { return s.graph }

// Stats returns the session's statistics record.
func (s *Session) Stats() *SessionStats { return s.stats }

// Coordinator returns the ghost run coordinator.
func (s *Session) Coordinator() *Coordinator { return s.coord }

// Pacman returns Pac-Man's current cell and heading.
func (s *Session) Pacman() (maze.Cell, Direction) { return s.pacman, s.pacmanDir }

// HasFood reports whether a pellet remains at the cell.
func (s *Session) HasFood(c maze.Cell) bool { return s.food[c] }

// FoodLeft returns the number of remaining pellets.
func (s *Session) FoodLeft() int { return len(s.food) }

// LevelComplete reports whether all pellets have been eaten.
func (s *Session) LevelComplete() bool { return s.levelComplete }

// TickGhosts advances every ghost one step toward Pac-Man's current cell,
// taken once as the shared snapshot for this tick. It reports whether a
// ghost caught Pac-Man, in which case the level has been reset.
func (s *Session) TickGhosts() (caught bool) {
	target := s.pacman
	positions := s.coord.Tick(target)

	// Fold freshly-run searches into the session stats.
	for _, ghost := range s.coord.Ghosts() {
		executor := ghost.Executor()
		if n := executor.Searches(); n > s.prevSearches[ghost.ID] {
			s.prevSearches[ghost.ID] = n
			s.stats.RecordSearch(ghost.ID, executor.Strategy().Name(), executor.LastStats())
		}
	}

	for id, cell := range positions {
		if cell == target {
			s.logger.Info().Str("ghost", id).Msg("pacman caught, resetting level")
			s.Reset()
			return true
		}
	}
	return false
}

// MovePacman attempts one user-controlled step. The move is ignored when it
// would walk into a wall. Eating the last pellet completes the level.
func (s *Session) MovePacman(dir Direction) bool {
	next := dir.Apply(s.pacman)
	walkable, err := s.graph.IsWalkable(next)
	if err != nil || !walkable {
		return false
	}
	s.pacman = next
	s.pacmanDir = dir
	if s.checkCaught() {
		return true
	}
	s.eatFood(next)
	return true
}

// MoveTarget applies the level's non-interactive movement rule to Pac-Man.
// With the "static" rule Pac-Man stays in place; "random_walk" picks a
// uniformly random walkable neighbor from the session's seeded generator.
func (s *Session) MoveTarget() {
	if s.Level.UserControlled || s.Level.TargetRule != "random_walk" {
		return
	}
	neighbors, err := s.graph.Neighbors(s.pacman)
	if err != nil || len(neighbors) == 0 {
		return
	}
	next := neighbors[s.rng.Intn(len(neighbors))]
	for _, d := range []Direction{DirRight, DirDown, DirLeft, DirUp} {
		if d.Apply(s.pacman) == next {
			s.pacmanDir = d
			break
		}
	}
	s.pacman = next
	if s.checkCaught() {
		return
	}
	s.eatFood(next)
}

// checkCaught resets the level when Pac-Man occupies a ghost's cell.
// Collisions are checked from both sides: TickGhosts covers a ghost moving
// onto Pac-Man, this covers Pac-Man moving onto a ghost between ghost
// ticks.
func (s *Session) checkCaught() bool {
	for _, ghost := range s.coord.Ghosts() {
		if ghost.Position() == s.pacman {
			s.logger.Info().Str("ghost", ghost.ID).Msg("pacman walked into a ghost, resetting level")
			s.Reset()
			return true
		}
	}
	return false
}

func (s *Session) eatFood(c maze.Cell) {
	if !s.food[c] {
		return
	}
	delete(s.food, c)
	if len(s.food) == 0 {
		s.levelComplete = true
	}
}

// Reset returns Pac-Man and the ghosts to their spawns, restores the food
// and drops all held paths.
func (s *Session) Reset() {
	s.pacman = s.pacmanSpawn
	s.pacmanDir = DirRight
	s.levelComplete = false
	s.food = make(map[maze.Cell]bool)
	for _, c := range s.graph.FoodCells() {
		s.food[c] = true
	}
	for i, ghost := range s.coord.Ghosts() {
		ghost.setPosition(s.ghostSpawns[i])
		ghost.Executor().Invalidate()
	}
	s.stats.RecordReset()
}
