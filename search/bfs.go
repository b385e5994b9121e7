package search

import (
	"time"

	"pacman-search/maze"
)

// BFS explores the frontier in strict insertion order. On a unit-cost grid
// the returned path has the minimum number of edges among all start→goal
// paths; among equally short paths the fixed neighbor order decides.
type BFS struct{}

// Name implements Strategy.
func (BFS) Name() string { return "bfs" }

// FindPath implements Strategy.
func (BFS) FindPath(g *maze.Graph, start, goal maze.Cell, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	if err := validateEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}
	begin := time.Now()

	if start == goal {
		return Result{
			Path:  []maze.Cell{start},
			Stats: Stats{Duration: time.Since(begin)},
		}, nil
	}

	queue := []maze.Cell{start}
	visited := map[maze.Cell]bool{start: true}
	parent := make(map[maze.Cell]maze.Cell)
	expanded := 0

	for len(queue) > 0 {
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Stats: Stats{Expanded: expanded, Duration: time.Since(begin)}}, ErrSearchAborted
		}
		current := queue[0]
		queue = queue[1:]
		expanded++

		if current == goal {
			return Result{
				Path:  reconstruct(parent, start, goal),
				Stats: Stats{Expanded: expanded, Duration: time.Since(begin)},
			}, nil
		}

		neighbors, err := g.Neighbors(current)
		if err != nil {
			return Result{}, err
		}
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = current
			queue = append(queue, n)
		}
	}

	// Goal unreachable: empty path, no error.
	return Result{Stats: Stats{Expanded: expanded, Duration: time.Since(begin)}}, nil
}
