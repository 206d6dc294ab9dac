package game

import "math"

// Position is a grid cell. Y counts rows from the top, so North decreases Y.
type Position struct {
	X int
	Y int
}

// Move returns the neighboring position in the given direction.
func (p Position) Move(a Action) Position {
	switch a {
	case North:
		return Position{p.X, p.Y - 1}
	case South:
		return Position{p.X, p.Y + 1}
	case East:
		return Position{p.X + 1, p.Y}
	case West:
		return Position{p.X - 1, p.Y}
	default:
		return p
	}
}

func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func EuclideanDistance(a, b Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is a width x height matrix of flags (walls or food).
type Grid struct {
	width  int
	height int
	cells  []bool
}

func NewGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At reports the flag at p. Cells outside the grid read as set, so a wall grid
// is closed at its border.
func (g Grid) At(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set mutates the grid in place; callers copy first when the grid is shared.
func (g Grid) Set(p Position, value bool) {
	g.cells[p.Y*g.width+p.X] = value
}

func (g Grid) Copy() Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}

func (g Grid) Count() int {
	count := 0
	for _, cell := range g.cells {
		if cell {
			count++
		}
	}
	return count
}

// List returns the set cells column by column (X outer, Y inner).
func (g Grid) List() []Position {
	var positions []Position
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[y*g.width+x] {
				positions = append(positions, Position{x, y})
			}
		}
	}
	return positions
}
