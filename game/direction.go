package game

import "pacman-search/maze"

// Direction is a compass heading for Pac-Man movement and rendering.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the row/col offset of one step in the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirUp:
		return -1, 0
	}
	return 0, 0
}

// Apply returns the cell one step from c in the direction.
func (d Direction) Apply(c maze.Cell) maze.Cell {
	dr, dc := d.Delta()
	return maze.Cell{Row: c.Row + dr, Col: c.Col + dc}
}
