package game

import (
	"pacman-search/maze"
	"pacman-search/search"
)

// Cadence controls when a PathExecutor recomputes its path. It is part of
// the level configuration because it changes visible chase behavior.
type Cadence string

const (
	// CadenceOnExhausted recomputes only when the held path runs out or
	// the target drifts past the threshold.
	CadenceOnExhausted Cadence = "on_exhausted"
	// CadenceEveryTick recomputes a fresh path on every tick.
	CadenceEveryTick Cadence = "every_tick"
)

type execState int

const (
	stateIdle execState = iota
	stateFollowing
)

// PathExecutor advances one agent a single cell per tick along a computed
// path, asking its strategy for a new path when it has none, when the path
// is exhausted, or when the target has moved too far from where the path
// was aimed.
type PathExecutor struct {
	graph    *maze.Graph
	strategy search.Strategy
	cadence  Cadence
	drift    int // max Manhattan drift of the target before a recompute
	budget   int // expansion budget per search, zero = unbounded

	state     execState
	path      []maze.Cell
	next      int       // index of the next step within path
	target    maze.Cell // target the held path was computed for
	lastStats search.Stats
	searches  int
}

// NewPathExecutor binds a strategy to a maze for one agent. driftThreshold
// is the Manhattan distance the target may move before the held path is
// considered stale; budget bounds each search's expansions (zero for
// unbounded).
func NewPathExecutor(g *maze.Graph, strategy search.Strategy, cadence Cadence, driftThreshold, budget int) *PathExecutor {
	return &PathExecutor{
		graph:    g,
		strategy: strategy,
		cadence:  cadence,
		drift:    driftThreshold,
		budget:   budget,
		state:    stateIdle,
	}
}

// Strategy returns the bound search strategy.
func (e *PathExecutor) Strategy() search.Strategy { return e.strategy }

// Tick advances the agent by at most one cell toward the target and returns
// the cell the agent occupies after this tick. The returned error reports a
// failed path computation; the agent holds position in that case.
func (e *PathExecutor) Tick(agent, target maze.Cell) (maze.Cell, error) {
	if e.needsPath(target) {
		result, err := e.strategy.FindPath(e.graph, agent, target, e.searchOptions()...)
		e.searches++
		e.lastStats = result.Stats
		if err != nil {
			e.Invalidate()
			return agent, err
		}
		if len(result.Path) == 0 {
			// No path exists; hold position until the next recompute.
			e.Invalidate()
			return agent, nil
		}
		// Index 0 is the agent's current cell; the first actual move
		// uses index 1.
		e.path = result.Path
		e.next = 1
		e.target = target
		e.state = stateFollowing
	}

	if e.state != stateFollowing || e.next >= len(e.path) {
		e.Invalidate()
		return agent, nil
	}

	step := e.path[e.next]
	e.next++
	return step, nil
}

func (e *PathExecutor) needsPath(target maze.Cell) bool {
	if e.state != stateFollowing || e.next >= len(e.path) {
		return true
	}
	if e.cadence == CadenceEveryTick {
		return true
	}
	return maze.ManhattanDistance(target, e.target) > e.drift
}

// Invalidate drops the held path and returns the executor to idle, forcing
// a recompute on the next tick.
func (e *PathExecutor) Invalidate() {
	e.state = stateIdle
	e.path = nil
	e.next = 0
}

func (e *PathExecutor) searchOptions() []search.Option {
	if e.budget > 0 {
		return []search.Option{search.WithMaxExpansions(e.budget)}
	}
	return nil
}

// Remaining returns how many steps of the held path are still unconsumed.
func (e *PathExecutor) Remaining() int {
	if e.state != stateFollowing {
		return 0
	}
	return len(e.path) - e.next
}

// Path returns a copy of the held path for display purposes.
func (e *PathExecutor) Path() []maze.Cell {
	if e.state != stateFollowing {
		return nil
	}
	path := make([]maze.Cell, len(e.path))
	copy(path, e.path)
	return path
}

// LastStats returns the metrics of the most recent search invocation.
func (e *PathExecutor) LastStats() search.Stats { return e.lastStats }

// Searches returns how many search invocations this executor has made.
func (e *PathExecutor) Searches() int { return e.searches }
