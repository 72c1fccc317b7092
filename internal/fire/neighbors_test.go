package fire

import (
	"slices"
	"testing"

	"wildfire/internal/core"
)

func plainCells(w, h int) []Cell {
	zone := &Zone{Vegetation: VegetationGrass, Drought: DroughtMild}
	cells := make([]Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := NewCell(x, y, 0, 0, 1440)
			c.Zone = zone
			cells[core.Index(x, y, w)] = c
		}
	}
	return cells
}

func discIndices(w, h, x0, y0 int, r float64) []int {
	var out []int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == x0 && y == y0 {
				continue
			}
			if core.Distance(x0, y0, x, y) <= r {
				out = append(out, core.Index(x, y, w))
			}
		}
	}
	return out
}

func sorted(v []int) []int {
	out := append([]int(nil), v...)
	slices.Sort(out)
	return out
}

func TestNeighborsWithoutBarriersIsTheDisc(t *testing.T) {
	const w, h = 11, 11
	cells := plainCells(w, h)
	for _, origin := range []core.Point{{X: 5, Y: 5}, {X: 0, Y: 0}, {X: 10, Y: 4}, {X: 1, Y: 9}} {
		i := core.Index(origin.X, origin.Y, w)
		for _, r := range []float64{1, 1.5, 2.5, 3} {
			got := sorted(Neighbors(cells, i, w, h, r, BurnIndexLow))
			want := discIndices(w, h, origin.X, origin.Y, r)
			if !slices.Equal(got, want) {
				t.Fatalf("origin %+v radius %.1f: got %v, want %v", origin, r, got, want)
			}
		}
	}
	if n := len(Neighbors(cells, core.Index(5, 5, w), w, h, 2.5, BurnIndexLow)); n != 20 {
		t.Fatalf("expected 20 neighbours within 2.5 cells, got %d", n)
	}
}

func TestNeighborsVisitEachCellOnce(t *testing.T) {
	const w, h = 9, 9
	cells := plainCells(w, h)
	got := Neighbors(cells, core.Index(4, 4, w), w, h, 3, BurnIndexLow)
	seen := map[int]bool{}
	for _, n := range got {
		if seen[n] {
			t.Fatalf("neighbour %d returned twice", n)
		}
		if n == core.Index(4, 4, w) {
			t.Fatal("origin must not be its own neighbour")
		}
		seen[n] = true
	}
}

func TestNeighborsBarrierShieldsCellsBehindIt(t *testing.T) {
	const w, h = 11, 11
	cells := plainCells(w, h)
	cells[core.Index(6, 5, w)].IsRiver = true
	origin := core.Index(5, 5, w)
	behind := core.Index(7, 5, w)

	got := Neighbors(cells, origin, w, h, 2.5, BurnIndexLow)
	if slices.Contains(got, behind) {
		t.Fatalf("cell (7,5) is behind the river at (6,5) and must not be a neighbour: %v", got)
	}
	if slices.Contains(got, core.Index(6, 5, w)) {
		t.Fatal("river cell must never be a neighbour")
	}
	if !slices.Contains(got, core.Index(6, 4, w)) || !slices.Contains(got, core.Index(4, 5, w)) {
		t.Fatalf("unshielded cells should remain neighbours: %v", got)
	}
}

func TestNeighborsWallBlocksCompletely(t *testing.T) {
	const w, h = 12, 8
	cells := plainCells(w, h)
	for y := 0; y < h; y++ {
		cells[core.Index(6, y, w)].IsUnburntIsland = true
	}
	for _, n := range Neighbors(cells, core.Index(5, 3, w), w, h, 3, BurnIndexHigh) {
		if x, _ := core.Coords(n, w); x >= 6 {
			t.Fatalf("neighbour %d at x=%d crossed the wall", n, x)
		}
	}
}

func TestNeighborsDiagonalBarrierDoesNotLeak(t *testing.T) {
	const w, h = 8, 8
	cells := plainCells(w, h)
	// A 45 degree river separating the lower-left corner from the rest.
	for i := 0; i < w; i++ {
		if y := 3 - i; y >= 0 {
			cells[core.Index(i, y, w)].IsRiver = true
		}
	}
	for _, n := range Neighbors(cells, core.Index(0, 0, w), w, h, 2.5, BurnIndexHigh) {
		x, y := core.Coords(n, w)
		if x+y > 3 {
			t.Fatalf("fire leaked across the diagonal river to (%d,%d)", x, y)
		}
	}
}

func TestNeighborsFireLineHoldsUnlessHighIntensity(t *testing.T) {
	const w, h = 11, 11
	cells := plainCells(w, h)
	line := core.Index(6, 5, w)
	cells[line].IsFireLine = true
	origin := core.Index(5, 5, w)
	behind := core.Index(7, 5, w)

	for _, bi := range []BurnIndex{BurnIndexLow, BurnIndexMedium} {
		got := Neighbors(cells, origin, w, h, 2.5, bi)
		if slices.Contains(got, line) || slices.Contains(got, behind) {
			t.Fatalf("%s intensity fire crossed the fireline: %v", bi, got)
		}
	}
	got := Neighbors(cells, origin, w, h, 2.5, BurnIndexHigh)
	if !slices.Contains(got, line) || !slices.Contains(got, behind) {
		t.Fatalf("high intensity fire should cross the fireline: %v", got)
	}
}

func TestNeighborSearchReusesBuffers(t *testing.T) {
	const w, h = 10, 10
	cells := plainCells(w, h)
	s := newNeighborSearch(w, h)
	first := sorted(s.find(cells, core.Index(2, 2, w), 2.5, BurnIndexLow))
	second := sorted(s.find(cells, core.Index(2, 2, w), 2.5, BurnIndexLow))
	if !slices.Equal(first, second) {
		t.Fatalf("repeated searches disagree: %v vs %v", first, second)
	}
	s.gen = ^uint32(0)
	third := sorted(s.find(cells, core.Index(2, 2, w), 2.5, BurnIndexLow))
	if !slices.Equal(first, third) {
		t.Fatalf("search after generation wrap disagrees: %v vs %v", first, third)
	}
}

func TestNeighborSearchBehindBarrierDoesNotAllocate(t *testing.T) {
	const w, h = 12, 12
	cells := plainCells(w, h)
	for y := 0; y < h; y++ {
		cells[core.Index(4, y, w)].IsRiver = true
	}
	s := newNeighborSearch(w, h)
	origin := core.Index(7, 6, w)
	// Warm the buffers; most sight lines run from the larger endpoint.
	s.find(cells, origin, 3, BurnIndexLow)
	allocs := testing.AllocsPerRun(50, func() {
		s.find(cells, origin, 3, BurnIndexLow)
	})
	if allocs != 0 {
		t.Fatalf("search with a barrier in range allocated %.1f times per call", allocs)
	}
}
