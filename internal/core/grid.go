package core

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Grid describes the dimensions of a row-major cell grid. Row 0 is the
// southern edge; y grows northward.
type Grid struct {
	W, H int
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return Index(x, y, g.W) }

// Coords converts a linear index back into grid coordinates.
func (g Grid) Coords(i int) (int, int) { return Coords(i, g.W) }

// Contains reports whether (x, y) lies inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clamp pulls the coordinates back inside the grid bounds.
func (g Grid) Clamp(p Point) Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.X >= g.W {
		p.X = g.W - 1
	}
	if p.Y >= g.H {
		p.Y = g.H - 1
	}
	return p
}

// Index returns x + y*width. Callers guarantee the coordinates are valid.
func Index(x, y, width int) int { return x + y*width }

// Coords returns the (x, y) coordinates of linear index i.
func Coords(i, width int) (int, int) { return i % width, i / width }
