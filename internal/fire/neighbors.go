package fire

import (
	"math"

	"wildfire/internal/core"
)

// Only orthogonal steps: a diagonal step would let fire slip between two
// cells of a one cell wide barrier drawn at 45 degrees.
var orthogonalSteps = [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// Neighbors returns the indices of cells fire can reach from cell i: cells
// within maxDist of i, burnable for burnIndex, and not shielded by a
// non-burnable cell on the straight line back to i. The order of the result is
// unspecified.
func Neighbors(cells []Cell, i, width, height int, maxDist float64, burnIndex BurnIndex) []int {
	s := newNeighborSearch(width, height)
	found := s.find(cells, i, maxDist, burnIndex)
	out := make([]int, len(found))
	copy(out, found)
	return out
}

// neighborSearch keeps the BFS buffers so repeated searches during a tick do
// not allocate. The slice returned by find is only valid until the next call.
type neighborSearch struct {
	grid   core.Grid
	stamp  []uint32
	gen    uint32
	queue  []int
	result []int
}

func newNeighborSearch(width, height int) *neighborSearch {
	return &neighborSearch{
		grid:  core.Grid{W: width, H: height},
		stamp: make([]uint32, width*height),
	}
}

func (s *neighborSearch) find(cells []Cell, i int, maxDist float64, bi BurnIndex) []int {
	s.gen++
	if s.gen == 0 {
		clear(s.stamp)
		s.gen = 1
	}
	x0, y0 := s.grid.Coords(i)
	shielded := s.anyBarrier(cells, x0, y0, maxDist, bi)

	s.queue = append(s.queue[:0], i)
	s.result = s.result[:0]
	s.stamp[i] = s.gen

	for head := 0; head < len(s.queue); head++ {
		jx, jy := s.grid.Coords(s.queue[head])
		for _, step := range orthogonalSteps {
			nx, ny := jx+step.X, jy+step.Y
			if !s.grid.Contains(nx, ny) {
				continue
			}
			n := s.grid.Index(nx, ny)
			if s.stamp[n] == s.gen {
				continue
			}
			s.stamp[n] = s.gen
			if !core.WithinRadius(x0, y0, nx, ny, maxDist) {
				continue
			}
			if !cells[n].IsBurnable(bi) {
				continue
			}
			if shielded && !s.visible(cells, x0, y0, nx, ny, bi) {
				continue
			}
			s.result = append(s.result, n)
			s.queue = append(s.queue, n)
		}
	}
	return s.result
}

// anyBarrier reports whether any cell other than the origin inside the search
// disc blocks fire of this intensity. When none does, the line-of-sight test
// cannot fail and is skipped.
func (s *neighborSearch) anyBarrier(cells []Cell, x0, y0 int, maxDist float64, bi BurnIndex) bool {
	r := int(math.Ceil(maxDist))
	for y := y0 - r; y <= y0+r; y++ {
		for x := x0 - r; x <= x0+r; x++ {
			if !s.grid.Contains(x, y) || (x == x0 && y == y0) {
				continue
			}
			if !core.WithinRadius(x0, y0, x, y, maxDist) {
				continue
			}
			if !cells[s.grid.Index(x, y)].IsBurnable(bi) {
				return true
			}
		}
	}
	return false
}

func (s *neighborSearch) visible(cells []Cell, x0, y0, x1, y1 int, bi BurnIndex) bool {
	visible := true
	core.WalkSegment(x0, y0, x1, y1, func(x, y int) bool {
		if (x == x0 && y == y0) || (x == x1 && y == y1) {
			return true
		}
		if !cells[s.grid.Index(x, y)].IsBurnable(bi) {
			visible = false
			return false
		}
		return true
	})
	return visible
}
