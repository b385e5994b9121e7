// Package search implements the four path search strategies the ghosts use
// to chase Pac-Man: breadth-first, depth-first, uniform-cost and A*.
//
// All strategies share the same contract: the returned path starts at the
// query start cell and ends at the goal cell, every consecutive pair is an
// edge of the maze graph, and an empty path means no path exists (which is
// a normal outcome, not an error).
package search

import (
	"errors"
	"fmt"
	"time"

	"pacman-search/maze"
)

var (
	// ErrInvalidQuery is returned when the start or goal cell is a wall.
	ErrInvalidQuery = errors.New("start or goal cell is not walkable")
	// ErrSearchAborted is returned when the expansion budget runs out
	// before the search settles.
	ErrSearchAborted = errors.New("search aborted: expansion budget exhausted")
	// ErrUnknownStrategy is returned by New for unrecognized names.
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// Stats carries performance metrics for a single search invocation.
type Stats struct {
	Expanded int           `json:"expanded"`
	Duration time.Duration `json:"duration"`
}

// Result is the outcome of one search invocation. Path is inclusive of both
// endpoints; an empty Path signals that no path exists.
type Result struct {
	Path  []maze.Cell
	Stats Stats
}

// Strategy computes a path between two cells of a maze graph.
type Strategy interface {
	Name() string
	FindPath(g *maze.Graph, start, goal maze.Cell, opts ...Option) (Result, error)
}

// Options tune a single search invocation.
type Options struct {
	// MaxExpansions bounds the number of frontier expansions; zero means
	// unbounded. Exhausting the budget yields ErrSearchAborted.
	MaxExpansions int
	// Costs maps a cell to the cost of stepping onto it. Cells without an
	// entry cost 1. Only UCS and A* consult it.
	Costs map[maze.Cell]float64
}

// Option mutates Options.
type Option func(*Options)

// WithMaxExpansions bounds the search to n frontier expansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithCosts supplies a per-cell traversal cost map.
func WithCosts(costs map[maze.Cell]float64) Option {
	return func(o *Options) { o.Costs = costs }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns the strategy registered under name: "bfs", "dfs", "ucs" or
// "astar".
func New(name string) (Strategy, error) {
	switch name {
	case "bfs":
		return BFS{}, nil
	case "dfs":
		return DFS{}, nil
	case "ucs":
		return UCS{}, nil
	case "astar":
		return AStar{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// All returns one instance of every strategy, in the order the game levels
// introduce them.
func All() []Strategy {
	return []Strategy{BFS{}, DFS{}, UCS{}, AStar{}}
}

// validateEndpoints rejects queries whose endpoints are out of bounds or
// fall on a wall. Out-of-bounds propagates maze.ErrInvalidCoordinate.
func validateEndpoints(g *maze.Graph, start, goal maze.Cell) error {
	for _, c := range []maze.Cell{start, goal} {
		walkable, err := g.IsWalkable(c)
		if err != nil {
			return err
		}
		if !walkable {
			return fmt.Errorf("%w: (%d,%d)", ErrInvalidQuery, c.Row, c.Col)
		}
	}
	return nil
}

// reconstruct rebuilds the start..goal path from the parent links laid down
// during the search.
func reconstruct(parent map[maze.Cell]maze.Cell, start, goal maze.Cell) []maze.Cell {
	path := []maze.Cell{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// stepCost returns the cost of stepping onto cell c under the given options.
func stepCost(o Options, c maze.Cell) float64 {
	if o.Costs == nil {
		return 1
	}
	if cost, ok := o.Costs[c]; ok {
		return cost
	}
	return 1
}
