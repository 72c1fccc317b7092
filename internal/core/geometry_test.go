package core

import (
	"math"
	"slices"
	"testing"
)

func TestIndexRoundTrip(t *testing.T) {
	g := Grid{W: 7, H: 5}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			if i != x+y*7 {
				t.Fatalf("Index(%d,%d) = %d, want %d", x, y, i, x+y*7)
			}
			gx, gy := g.Coords(i)
			if gx != x || gy != y {
				t.Fatalf("Coords(%d) = (%d,%d), want (%d,%d)", i, gx, gy, x, y)
			}
		}
	}
}

func TestGridClamp(t *testing.T) {
	g := Grid{W: 10, H: 4}
	got := g.Clamp(Point{X: -3, Y: 9})
	if got != (Point{X: 0, Y: 3}) {
		t.Fatalf("expected clamp to (0,3), got %+v", got)
	}
	if !g.Contains(9, 3) || g.Contains(10, 0) || g.Contains(0, -1) {
		t.Fatal("Contains disagrees with grid bounds")
	}
}

func TestWithinRadiusMatchesDistance(t *testing.T) {
	for dx := -4; dx <= 4; dx++ {
		for dy := -4; dy <= 4; dy++ {
			for _, r := range []float64{0, 1, 1.5, 2.5, 3} {
				want := Distance(2, 2, 2+dx, 2+dy) <= r
				if got := WithinRadius(2, 2, 2+dx, 2+dy, r); got != want {
					t.Fatalf("WithinRadius dx=%d dy=%d r=%.1f = %v, want %v", dx, dy, r, got, want)
				}
			}
		}
	}
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > 1e-12 {
		t.Fatalf("expected 3-4-5 distance 5, got %f", d)
	}
}

func TestWalkLineIncludesEndpoints(t *testing.T) {
	pts := LineCells(0, 0, 5, 2)
	if pts[0] != (Point{0, 0}) || pts[len(pts)-1] != (Point{5, 2}) {
		t.Fatalf("expected endpoints to be included, got %v", pts)
	}
	if len(pts) != 6 {
		t.Fatalf("expected 6 cells on an x-major line, got %d: %v", len(pts), pts)
	}
	for i := 1; i < len(pts); i++ {
		dx := absInt(pts[i].X - pts[i-1].X)
		dy := absInt(pts[i].Y - pts[i-1].Y)
		if dx > 1 || dy > 1 {
			t.Fatalf("line skips cells between %v and %v", pts[i-1], pts[i])
		}
	}
}

func TestWalkLineSymmetric(t *testing.T) {
	cases := [][4]int{
		{0, 0, 5, 2},
		{0, 0, 2, 5},
		{3, 1, -2, 4},
		{0, 0, 4, 4},
		{1, 1, 1, -3},
		{-2, 0, 3, 0},
		{0, 0, 3, 1},
		{0, 0, 1, 2},
	}
	for _, c := range cases {
		forward := LineCells(c[0], c[1], c[2], c[3])
		backward := LineCells(c[2], c[3], c[0], c[1])
		slices.Reverse(backward)
		if !slices.Equal(forward, backward) {
			t.Fatalf("line %v not symmetric: forward %v, reversed backward %v", c, forward, backward)
		}
	}
}

func TestWalkLineStopsEarly(t *testing.T) {
	visited := 0
	WalkLine(0, 0, 10, 0, func(x, y int) bool {
		visited++
		return x < 3
	})
	if visited != 4 {
		t.Fatalf("expected walk to stop after 4 cells, visited %d", visited)
	}
}

func TestWalkLineSinglePoint(t *testing.T) {
	pts := LineCells(4, 4, 4, 4)
	if len(pts) != 1 || pts[0] != (Point{4, 4}) {
		t.Fatalf("expected single cell, got %v", pts)
	}
}

func TestSimClockAdvances(t *testing.T) {
	c := NewSimClock(0)
	if c.Rate() != 1 {
		t.Fatalf("expected non-positive rate to fall back to 1, got %f", c.Rate())
	}
	c.SetRate(720)
	c.Tick()
	if c.Day() != 0 {
		t.Fatalf("expected day 0 after half a day, got %d", c.Day())
	}
	if got := c.Tick(); got != 1440 {
		t.Fatalf("expected 1440 minutes, got %f", got)
	}
	if c.Day() != 1 {
		t.Fatalf("expected day 1, got %d", c.Day())
	}
	c.Reset()
	if c.Elapsed() != 0 {
		t.Fatal("expected reset clock to read zero")
	}
}

func TestRNGChanceSaturates(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 100; i++ {
		if Chance(r, 0) {
			t.Fatal("Chance(0) must never fire")
		}
		if !Chance(r, 1) {
			t.Fatal("Chance(1) must always fire")
		}
	}
	fixed := fixedSource(0.5)
	if !Chance(fixed, 0.51) || Chance(fixed, 0.5) {
		t.Fatal("Chance should compare the draw strictly below p")
	}
	a, b := NewRNG(99), NewRNG(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("equal seeds must produce equal sequences")
		}
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestWalkSegmentMatchesWalkLineSet(t *testing.T) {
	for _, c := range [][4]int{{7, 2, 0, 0}, {0, 0, 7, 2}, {3, 9, 3, 1}, {5, 5, 1, 8}} {
		want := map[Point]bool{}
		for _, p := range LineCells(c[0], c[1], c[2], c[3]) {
			want[p] = true
		}
		var got []Point
		WalkSegment(c[0], c[1], c[2], c[3], func(x, y int) bool {
			got = append(got, Point{X: x, Y: y})
			return true
		})
		if len(got) != len(want) {
			t.Fatalf("segment %v: got %d cells, want %d", c, len(got), len(want))
		}
		for _, p := range got {
			if !want[p] {
				t.Fatalf("segment %v: unexpected cell %+v", c, p)
			}
		}
	}
}
