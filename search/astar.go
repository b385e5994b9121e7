package search

import "pacman-search/maze"

// AStar orders the frontier by cumulative cost plus the Manhattan distance
// to the goal. On a 4-directional unit-cost grid the heuristic is
// admissible and consistent, so the result is cost-minimal. Ties on
// priority fall back to lower cumulative cost, then insertion order.
type AStar struct{}

// Name implements Strategy.
func (AStar) Name() string { return "astar" }

// FindPath implements Strategy.
func (AStar) FindPath(g *maze.Graph, start, goal maze.Cell, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	heuristic := func(c maze.Cell) float64 {
		return float64(maze.ManhattanDistance(c, goal))
	}
	return dijkstra(g, start, goal, o, heuristic)
}
