package search

import "pacman-search/maze"

// frontierItem is one entry of the priority frontier used by UCS and A*.
type frontierItem struct {
	cell     maze.Cell
	cost     float64 // cumulative path cost from start
	priority float64 // cost for UCS, cost+heuristic for A*
	seq      int     // insertion order, breaks remaining ties
	index    int     // heap index, maintained by Swap
}

// frontier is a min-heap over priority. Equal priorities fall back to lower
// cumulative cost, then to insertion order, so results stay deterministic.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
