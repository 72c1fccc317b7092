package fire

import (
	"testing"

	"wildfire/internal/core"
)

func TestBuildFireLineQueuesCells(t *testing.T) {
	cfg := testConfig(10, 6)
	cfg.FireLineMinutesPerCell = 20
	e := newTestEngine(t, cfg, severeShrub, func(cells []Cell) {
		cells[core.Index(5, 2, 10)].IsRiver = true
	}, nil)

	n := e.BuildFireLine(core.Point{X: 2, Y: 2}, core.Point{X: 7, Y: 2}, 100)
	if n != 5 {
		t.Fatalf("expected 5 queued cells (river skipped), got %d", n)
	}
	if e.PendingFireLines() != 1 {
		t.Fatalf("expected one pending fireline, got %d", e.PendingFireLines())
	}
	if e.Cell(5, 2).IsFireLineUnderConstruction {
		t.Fatal("river cells are never part of a fireline")
	}
	for x := 2; x <= 7; x++ {
		c := e.Cell(x, 2)
		if x != 5 && (!c.IsFireLineUnderConstruction || c.IsFireLine) {
			t.Fatalf("cell (%d,2) should be under construction: %+v", x, c)
		}
	}

	if done := e.AdvanceFireLines(199); done != 0 {
		t.Fatalf("fireline finished early with %d cells", done)
	}
	if done := e.AdvanceFireLines(200); done != 5 {
		t.Fatalf("expected 5 finished cells at t=200, got %d", done)
	}
	if e.PendingFireLines() != 0 {
		t.Fatal("finished firelines should leave the queue")
	}
	for x := 2; x <= 7; x++ {
		c := e.Cell(x, 2)
		if c.IsFireLineUnderConstruction {
			t.Fatalf("cell (%d,2) still under construction", x)
		}
		if x != 5 && !c.IsFireLine {
			t.Fatalf("cell (%d,2) should be a fireline", x)
		}
	}
}

func TestBuildFireLineClampsAndSkipsFlaggedCells(t *testing.T) {
	e := newTestEngine(t, testConfig(6, 6), severeShrub, nil, nil)
	if n := e.BuildFireLine(core.Point{X: -3, Y: 0}, core.Point{X: 20, Y: 0}, 0); n != 6 {
		t.Fatalf("expected the clamped line to cover the row, got %d cells", n)
	}
	if n := e.BuildFireLine(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0}, 0); n != 0 {
		t.Fatalf("cells already under construction must not be queued twice, got %d", n)
	}
	if e.PendingFireLines() != 1 {
		t.Fatalf("an empty request should not queue a job, got %d pending", e.PendingFireLines())
	}
}

func TestFireLineIgnoresCellsReachedByFire(t *testing.T) {
	cfg := testConfig(8, 3)
	alwaysHigh(&cfg)
	cfg.FireLineMinutesPerCell = 1000
	e := newTestEngine(t, cfg, severeShrub, nil, []core.Point{{X: 0, Y: 1}})
	e.BuildFireLine(core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}, 0)
	runUntilStopped(e, 10, 1500)

	done := e.AdvanceFireLines(e.Time() + 2000)
	if done != 0 {
		t.Fatalf("burnt cells must not turn into firelines, got %d", done)
	}
	for x := 1; x <= 2; x++ {
		c := e.Cell(x, 1)
		if c.IsFireLine || c.IsFireLineUnderConstruction {
			t.Fatalf("cell (%d,1) should be plain burnt ground: %+v", x, c)
		}
	}
}
