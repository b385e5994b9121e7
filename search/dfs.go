package search

import (
	"time"

	"pacman-search/maze"
)

// DFS explores the frontier depth-first. It returns the first path reached
// by the traversal, with no shortest-path guarantee. The visited set makes
// it terminate on any finite grid, cycles included.
type DFS struct{}

// Name implements Strategy.
func (DFS) Name() string { return "dfs" }

// FindPath implements Strategy.
func (DFS) FindPath(g *maze.Graph, start, goal maze.Cell, opts ...Option) (Result, error) {
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

	stack := []maze.Cell{start}
	visited := map[maze.Cell]bool{start: true}
	parent := make(map[maze.Cell]maze.Cell)
	expanded := 0

	for len(stack) > 0 {
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Stats: Stats{Expanded: expanded, Duration: time.Since(begin)}}, ErrSearchAborted
		}
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
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
			stack = append(stack, n)
		}
	}

	return Result{Stats: Stats{Expanded: expanded, Duration: time.Since(begin)}}, nil
}
