package maze

import (
	"errors"
	"fmt"
)

// Layout markers, matching the level grid format.
const (
	MarkerFloor       = 0
	MarkerWall        = 1
	MarkerFood        = 2
	MarkerGhostSpawn  = 4
	MarkerPacmanSpawn = 5
)

var (
	// ErrInvalidCoordinate is returned for queries outside the grid bounds.
	ErrInvalidCoordinate = errors.New("cell outside maze bounds")
	// ErrMalformedLayout is returned when a layout grid cannot produce a graph.
	ErrMalformedLayout = errors.New("malformed maze layout")
)

// neighborOffsets fixes the neighbor enumeration order: up, down, left,
// right. Search results depend on this order being stable.
var neighborOffsets = [4][2]int{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

// Graph is the walkability structure derived from a level layout. It is
// built once per level and never mutated afterwards; food consumption and
// agent positions live in the game session, not here.
type Graph struct {
	rows, cols  int
	wall        [][]bool
	food        []Cell
	pacmanSpawn Cell
	hasPacman   bool
	ghostSpawns []Cell
}

// NewGraph builds a Graph from a rectangular grid of layout markers.
// The grid must be non-empty and every row must have the same length.
func NewGraph(layout [][]int) (*Graph, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedLayout)
	}
	cols := len(layout[0])

	g := &Graph{
		rows: len(layout),
		cols: cols,
		wall: make([][]bool, len(layout)),
	}
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrMalformedLayout, r, len(row), cols)
		}
		g.wall[r] = make([]bool, cols)
		for c, marker := range row {
			cell := Cell{Row: r, Col: c}
			switch marker {
			case MarkerWall:
				g.wall[r][c] = true
			case MarkerFloor:
			case MarkerFood:
				g.food = append(g.food, cell)
			case MarkerGhostSpawn:
				g.ghostSpawns = append(g.ghostSpawns, cell)
			case MarkerPacmanSpawn:
				if g.hasPacman {
					return nil, fmt.Errorf("%w: multiple pacman spawns", ErrMalformedLayout)
				}
				g.pacmanSpawn = cell
				g.hasPacman = true
			default:
				return nil, fmt.Errorf("%w: unknown marker %d at (%d,%d)",
					ErrMalformedLayout, marker, r, c)
			}
		}
	}
	return g, nil
}

// Rows returns the grid height.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Graph) Cols() int { return g.cols }

// Contains reports whether the cell lies inside the grid bounds.
func (g *Graph) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsWalkable reports whether the cell is inside the grid and not a wall.
func (g *Graph) IsWalkable(c Cell) (bool, error) {
	if !g.Contains(c) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, c.Row, c.Col)
	}
	return !g.wall[c.Row][c.Col], nil
}

// Neighbors returns the walkable 4-directional neighbors of a cell in the
// fixed up, down, left, right order. Adjacency is symmetric.
func (g *Graph) Neighbors(c Cell) ([]Cell, error) {
	if !g.Contains(c) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, c.Row, c.Col)
	}
	neighbors := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.Contains(n) || g.wall[n.Row][n.Col] {
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, nil
}

// Cells returns every walkable cell in row-major order.
func (g *Graph) Cells() []Cell {
	cells := make([]Cell, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.wall[r][c] {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// SpawnPoints returns the pacman spawn and the ghost spawns in layout scan
// order. ok is false when the layout declared no pacman spawn.
func (g *Graph) SpawnPoints() (pacman Cell, ghosts []Cell, ok bool) {
	ghosts = make([]Cell, len(g.ghostSpawns))
	copy(ghosts, g.ghostSpawns)
	return g.pacmanSpawn, ghosts, g.hasPacman
}

// FoodCells returns the cells that carry a food pellet in the layout.
func (g *Graph) FoodCells() []Cell {
	food := make([]Cell, len(g.food))
	copy(food, g.food)
	return food
}
