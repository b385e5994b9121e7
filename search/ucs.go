package search

import (
	"container/heap"
	"time"

	"pacman-search/maze"
)

// UCS explores the frontier ordered by cumulative path cost and returns a
// cost-minimal path. Edges cost 1 unless a cost map is supplied via
// WithCosts. Equal costs resolve to the earliest-inserted entry.
type UCS struct{}

// Name implements Strategy.
func (UCS) Name() string { return "ucs" }

// FindPath implements Strategy.
func (UCS) FindPath(g *maze.Graph, start, goal maze.Cell, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	return dijkstra(g, start, goal, o, nil)
}

// dijkstra is the shared frontier loop behind UCS and A*. heuristic may be
// nil, in which case priorities degenerate to plain cumulative cost.
func dijkstra(g *maze.Graph, start, goal maze.Cell, o Options, heuristic func(maze.Cell) float64) (Result, error) {
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

	h := func(c maze.Cell) float64 { return 0 }
	if heuristic != nil {
		h = heuristic
	}

	open := make(frontier, 0)
	heap.Init(&open)
	seq := 0
	heap.Push(&open, &frontierItem{cell: start, cost: 0, priority: h(start), seq: seq})

	bestCost := map[maze.Cell]float64{start: 0}
	parent := make(map[maze.Cell]maze.Cell)
	closed := make(map[maze.Cell]bool)
	expanded := 0

	for open.Len() > 0 {
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Stats: Stats{Expanded: expanded, Duration: time.Since(begin)}}, ErrSearchAborted
		}
		item := heap.Pop(&open).(*frontierItem)
		current := item.cell
		if closed[current] {
			continue
		}
		closed[current] = true
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
			if closed[n] {
				continue
			}
			cost := item.cost + stepCost(o, n)
			if known, ok := bestCost[n]; ok && cost >= known {
				continue
			}
			bestCost[n] = cost
			parent[n] = current
			seq++
			heap.Push(&open, &frontierItem{
				cell:     n,
				cost:     cost,
				priority: cost + h(n),
				seq:      seq,
			})
		}
	}

	return Result{Stats: Stats{Expanded: expanded, Duration: time.Since(begin)}}, nil
}
