package game

import (
	"sync"

	"github.com/rs/zerolog"

	"pacman-search/maze"
	"pacman-search/search"
)

// Diagnostic is the per-agent information the coordinator exposes after a
// tick, for the stats overlay and logging.
type Diagnostic struct {
	Strategy  string
	PathLeft  int
	LastStats search.Stats
	Err       error
}

// Coordinator drives every ghost's executor once per tick against a single
// target snapshot. Agents are strictly siloed: no ghost reads another
// ghost's state during a tick, so the per-agent ticks run concurrently with
// the same observable results as any sequential order.
type Coordinator struct {
	ghosts      []*Ghost
	avoidStack  bool // forbid two ghosts settling on the same cell
	logger      zerolog.Logger
	diagnostics map[string]Diagnostic
}

// NewCoordinator creates an empty coordinator. When avoidStacking is set,
// a ghost whose move would land on a cell already claimed this tick holds
// position instead and recomputes next tick.
func NewCoordinator(logger zerolog.Logger, avoidStacking bool) *Coordinator {
	return &Coordinator{
		avoidStack:  avoidStacking,
		logger:      logger,
		diagnostics: make(map[string]Diagnostic),
	}
}

// Add registers a ghost. Registration order decides priority when two
// ghosts contend for the same cell.
func (c *Coordinator) Add(g *Ghost) {
	c.ghosts = append(c.ghosts, g)
}

// Ghosts returns the registered agents in registration order.
func (c *Coordinator) Ghosts() []*Ghost { return c.ghosts }

// Tick advances every ghost one step toward the shared target snapshot and
// returns the new cell per ghost ID. Per-agent search failures leave that
// agent in place and surface in Diagnostics; they never affect other
// agents.
func (c *Coordinator) Tick(target maze.Cell) map[string]maze.Cell {
	type outcome struct {
		next maze.Cell
		err  error
	}
	outcomes := make([]outcome, len(c.ghosts))

	var wg sync.WaitGroup
	for i, ghost := range c.ghosts {
		wg.Add(1)
		go func(i int, ghost *Ghost) {
			defer wg.Done()
			current := ghost.Position()
			next, err := ghost.executor.Tick(current, target)
			if err != nil {
				next = current
			}
			outcomes[i] = outcome{next: next, err: err}
		}(i, ghost)
	}
	wg.Wait()

	// Commit in registration order so conflict resolution stays
	// deterministic regardless of goroutine scheduling.
	claimed := make(map[maze.Cell]bool, len(c.ghosts))
	positions := make(map[string]maze.Cell, len(c.ghosts))
	for i, ghost := range c.ghosts {
		next := outcomes[i].next
		if c.avoidStack && next != ghost.Position() && claimed[next] {
			// Another ghost took the cell this tick; stay put and
			// look for a way around next tick.
			ghost.executor.Invalidate()
			next = ghost.Position()
		}
		claimed[next] = true
		ghost.setPosition(next)
		positions[ghost.ID] = next

		executor := ghost.executor
		c.diagnostics[ghost.ID] = Diagnostic{
			Strategy:  executor.Strategy().Name(),
			PathLeft:  executor.Remaining(),
			LastStats: executor.LastStats(),
			Err:       outcomes[i].err,
		}
		if err := outcomes[i].err; err != nil {
			c.logger.Warn().
				Str("ghost", ghost.ID).
				Str("strategy", executor.Strategy().Name()).
				Err(err).
				Msg("path computation failed, agent holds position")
		}
	}
	return positions
}

// Positions returns the current cell of every ghost.
func (c *Coordinator) Positions() map[string]maze.Cell {
	positions := make(map[string]maze.Cell, len(c.ghosts))
	for _, ghost := range c.ghosts {
		positions[ghost.ID] = ghost.Position()
	}
	return positions
}

// Diagnostics returns the per-agent outcome of the most recent tick.
func (c *Coordinator) Diagnostics() map[string]Diagnostic {
	out := make(map[string]Diagnostic, len(c.diagnostics))
	for id, d := range c.diagnostics {
		out[id] = d
	}
	return out
}
