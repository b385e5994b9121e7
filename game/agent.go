package game

import (
	"sync"

	"pacman-search/maze"
)

// Ghost is the per-agent state record: current cell, path-following
// progress (owned by its executor) and the strategy bound for the level.
// Only the coordinator mutates it; the renderer reads positions through
// Position while a tick may be in flight on another goroutine.
type Ghost struct {
	ID       string
	executor *PathExecutor

	mu   sync.RWMutex
	cell maze.Cell
}

// NewGhost creates an agent at a starting cell with its own executor.
func NewGhost(id string, start maze.Cell, executor *PathExecutor) *Ghost {
	return &Ghost{ID: id, executor: executor, cell: start}
}

// Position returns the ghost's current cell.
func (g *Ghost) Position() maze.Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cell
}

func (g *Ghost) setPosition(c maze.Cell) {
	g.mu.Lock()
	g.cell = c
	g.mu.Unlock()
}

// Executor returns the ghost's path executor.
func (g *Ghost) Executor() *PathExecutor { return g.executor }
