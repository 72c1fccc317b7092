package core

import "math"

// Distance returns the Euclidean distance between two grid coordinates in
// grid units.
func Distance(x0, y0, x1, y1 int) float64 {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	return math.Sqrt(dx*dx + dy*dy)
}

// WithinRadius reports whether (x1, y1) lies within r grid units of (x0, y0).
func WithinRadius(x0, y0, x1, y1 int, r float64) bool {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	return dx*dx+dy*dy <= r*r
}

// WalkLine rasterizes the segment between (x0, y0) and (x1, y1) and calls
// visit for every cell it passes through, both endpoints included. The walk
// stops early when visit returns false.
//
// Bresenham has ties that would otherwise depend on the walk direction, so the
// line is always rasterized from the lexicographically smaller endpoint. When
// the caller asked for the opposite direction the cells are replayed in
// reverse, which keeps the visited set identical for swapped endpoints.
func WalkLine(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	if x0 < x1 || (x0 == x1 && y0 <= y1) {
		bresenham(x0, y0, x1, y1, visit)
		return
	}
	var pts []Point
	bresenham(x1, y1, x0, y0, func(x, y int) bool {
		pts = append(pts, Point{X: x, Y: y})
		return true
	})
	for i := len(pts) - 1; i >= 0; i-- {
		if !visit(pts[i].X, pts[i].Y) {
			return
		}
	}
}

// WalkSegment visits the same cells as WalkLine in the canonical order, from
// the lexicographically smaller endpoint, whichever way round the endpoints
// are given. It never allocates, so membership tests on hot paths use it.
func WalkSegment(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	if x0 < x1 || (x0 == x1 && y0 <= y1) {
		bresenham(x0, y0, x1, y1, visit)
		return
	}
	bresenham(x1, y1, x0, y0, visit)
}

// LineCells returns the cells visited by WalkLine in walk order.
func LineCells(x0, y0, x1, y1 int) []Point {
	pts := make([]Point, 0, absInt(x1-x0)+absInt(y1-y0)+1)
	WalkLine(x0, y0, x1, y1, func(x, y int) bool {
		pts = append(pts, Point{X: x, Y: y})
		return true
	})
	return pts
}

func bresenham(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if !visit(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
