package maze

// Cell is a discrete grid coordinate. Row 0 is the top row, Col 0 the
// leftmost column. Cells are value types and compare by coordinate.
type Cell struct {
	Row int
	Col int
}

// ManhattanDistance returns the L1 distance between two cells.
func ManhattanDistance(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
