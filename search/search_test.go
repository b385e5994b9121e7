package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacman-search/maze"
)

// testMaze has corridors, dead ends and cycles.
var testMaze = []string{
	"#########",
	"#...#...#",
	"#.#.#.#.#",
	"#.#...#.#",
	"#.#####.#",
	"#.......#",
	"#########",
}

func mustGraph(t *testing.T, rows []string) *maze.Graph {
	t.Helper()
	layout := make([][]int, len(rows))
	for r, row := range rows {
		layout[r] = make([]int, len(row))
		for c, marker := range []byte(row) {
			if marker == '#' {
				layout[r][c] = maze.MarkerWall
			}
		}
	}
	g, err := maze.NewGraph(layout)
	require.NoError(t, err)
	return g
}

// referenceDistances runs an independent level-order count over the raw
// rows, without going through the Graph API under test.
func referenceDistances(rows []string, start maze.Cell) map[maze.Cell]int {
	distances := map[maze.Cell]int{start: 0}
	queue := []maze.Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := maze.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if n.Row < 0 || n.Row >= len(rows) || n.Col < 0 || n.Col >= len(rows[n.Row]) {
				continue
			}
			if rows[n.Row][n.Col] == '#' {
				continue
			}
			if _, seen := distances[n]; seen {
				continue
			}
			distances[n] = distances[cur] + 1
			queue = append(queue, n)
		}
	}
	return distances
}

func assertValidPath(t *testing.T, g *maze.Graph, path []maze.Cell, start, goal maze.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0], "path must begin at start")
	assert.Equal(t, goal, path[len(path)-1], "path must end at goal")
	for i := 0; i < len(path)-1; i++ {
		neighbors, err := g.Neighbors(path[i])
		require.NoError(t, err)
		assert.Contains(t, neighbors, path[i+1], "step %v -> %v is not an edge", path[i], path[i+1])
	}
}

func TestBFSMatchesReferenceDistances(t *testing.T) {
	g := mustGraph(t, testMaze)
	start := maze.Cell{Row: 1, Col: 1}
	distances := referenceDistances(testMaze, start)

	for _, goal := range g.Cells() {
		want, reachable := distances[goal]
		result, err := BFS{}.FindPath(g, start, goal)
		require.NoError(t, err)
		require.True(t, reachable, "test maze should be fully connected")
		assertValidPath(t, g, result.Path, start, goal)
		assert.Equal(t, want, len(result.Path)-1, "edge count to %v", goal)
	}
}

func TestOptimalStrategiesAgreeOnLength(t *testing.T) {
	g := mustGraph(t, testMaze)
	start := maze.Cell{Row: 5, Col: 7}

	for _, goal := range g.Cells() {
		bfs, err := BFS{}.FindPath(g, start, goal)
		require.NoError(t, err)
		ucs, err := UCS{}.FindPath(g, start, goal)
		require.NoError(t, err)
		astar, err := AStar{}.FindPath(g, start, goal)
		require.NoError(t, err)

		assert.Equal(t, len(bfs.Path), len(ucs.Path), "ucs length to %v", goal)
		assert.Equal(t, len(bfs.Path), len(astar.Path), "astar length to %v", goal)
		assertValidPath(t, g, ucs.Path, start, goal)
		assertValidPath(t, g, astar.Path, start, goal)
	}
}

func TestDFSTerminatesWithValidPathOnCyclicMaze(t *testing.T) {
	// The outer ring and inner openings form several cycles.
	g := mustGraph(t, testMaze)
	start := maze.Cell{Row: 1, Col: 1}

	for _, goal := range g.Cells() {
		result, err := DFS{}.FindPath(g, start, goal)
		require.NoError(t, err)
		assertValidPath(t, g, result.Path, start, goal)
	}
}

func TestIdempotence(t *testing.T) {
	g := mustGraph(t, testMaze)
	start := maze.Cell{Row: 1, Col: 1}
	goal := maze.Cell{Row: 3, Col: 5}

	for _, strategy := range All() {
		first, err := strategy.FindPath(g, start, goal)
		require.NoError(t, err)
		second, err := strategy.FindPath(g, start, goal)
		require.NoError(t, err)
		assert.Equal(t, first.Path, second.Path, "%s is not deterministic", strategy.Name())
		assert.Equal(t, first.Stats.Expanded, second.Stats.Expanded, "%s expansion count varies", strategy.Name())
	}
}

func TestStartEqualsGoal(t *testing.T) {
	g := mustGraph(t, testMaze)
	cell := maze.Cell{Row: 5, Col: 3}

	for _, strategy := range All() {
		result, err := strategy.FindPath(g, cell, cell)
		require.NoError(t, err)
		assert.Equal(t, []maze.Cell{cell}, result.Path, strategy.Name())
	}
}

func TestUnreachableGoalReturnsEmptyPath(t *testing.T) {
	// A full wall column separates the two halves.
	g := mustGraph(t, []string{
		"..#..",
		"..#..",
		"..#..",
	})
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 2, Col: 4}

	for _, strategy := range All() {
		result, err := strategy.FindPath(g, start, goal)
		require.NoError(t, err, "unreachable goal is not an error (%s)", strategy.Name())
		assert.Empty(t, result.Path, strategy.Name())
		assert.Greater(t, result.Stats.Expanded, 0, strategy.Name())
	}
}

func TestOpenGridScenario(t *testing.T) {
	g := mustGraph(t, []string{
		"...",
		"...",
		"...",
	})
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 2, Col: 2}

	bfs, err := BFS{}.FindPath(g, start, goal)
	require.NoError(t, err)
	// With the fixed up/down/left/right order, BFS walks down first.
	assert.Equal(t, []maze.Cell{
		{Row: 0, Col: 0},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0},
		{Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}, bfs.Path)

	for _, strategy := range []Strategy{UCS{}, AStar{}} {
		result, err := strategy.FindPath(g, start, goal)
		require.NoError(t, err)
		assert.Len(t, result.Path, 5, strategy.Name())
	}
}

func TestInvalidQueries(t *testing.T) {
	g := mustGraph(t, []string{
		".#.",
		"...",
	})
	wall := maze.Cell{Row: 0, Col: 1}
	floor := maze.Cell{Row: 1, Col: 1}
	outside := maze.Cell{Row: 5, Col: 5}

	for _, strategy := range All() {
		_, err := strategy.FindPath(g, wall, floor)
		assert.ErrorIs(t, err, ErrInvalidQuery, strategy.Name())
		_, err = strategy.FindPath(g, floor, wall)
		assert.ErrorIs(t, err, ErrInvalidQuery, strategy.Name())
		_, err = strategy.FindPath(g, floor, outside)
		assert.ErrorIs(t, err, maze.ErrInvalidCoordinate, strategy.Name())
	}
}

func TestExpansionBudget(t *testing.T) {
	g := mustGraph(t, []string{"........"})
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 0, Col: 7}

	for _, strategy := range All() {
		_, err := strategy.FindPath(g, start, goal, WithMaxExpansions(3))
		assert.ErrorIs(t, err, ErrSearchAborted, strategy.Name())

		result, err := strategy.FindPath(g, start, goal, WithMaxExpansions(1000))
		require.NoError(t, err, strategy.Name())
		assertValidPath(t, g, result.Path, start, goal)
	}
}

func TestUCSRespectsCostMap(t *testing.T) {
	g := mustGraph(t, []string{
		"...",
		"...",
		"...",
	})
	start := maze.Cell{Row: 0, Col: 0}
	goal := maze.Cell{Row: 2, Col: 2}
	costs := map[maze.Cell]float64{
		{Row: 0, Col: 1}: 10,
		{Row: 1, Col: 1}: 10,
	}

	result, err := UCS{}.FindPath(g, start, goal, WithCosts(costs))
	require.NoError(t, err)
	assert.Equal(t, []maze.Cell{
		{Row: 0, Col: 0},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0},
		{Row: 2, Col: 1},
		{Row: 2, Col: 2},
	}, result.Path, "ucs must route around the expensive cells")
}

func TestNewStrategyNames(t *testing.T) {
	for _, name := range []string{"bfs", "dfs", "ucs", "astar"} {
		strategy, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, strategy.Name())
	}
	_, err := New("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
