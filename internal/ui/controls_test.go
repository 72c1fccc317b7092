package ui

import (
	"testing"

	"wildfire/internal/core"
)

func TestStepFloatWrapsCompassControls(t *testing.T) {
	ctrl := core.ParameterControl{Step: 15, Min: 0, Max: 345, HasMin: true, HasMax: true, Wrap: true}
	if v, ok := stepFloat(ctrl, 345, 1); !ok || v != 0 {
		t.Fatalf("345 + 15 should wrap to 0, got %f %v", v, ok)
	}
	if v, ok := stepFloat(ctrl, 0, -1); !ok || v != 345 {
		t.Fatalf("0 - 15 should wrap to 345, got %f %v", v, ok)
	}
	if v, ok := stepFloat(ctrl, 90, 1); !ok || v != 105 {
		t.Fatalf("plain step expected 105, got %f", v)
	}
}

func TestStepFloatClampsBounds(t *testing.T) {
	ctrl := core.ParameterControl{Step: 5, Min: 1, Max: 240, HasMin: true, HasMax: true}
	if v, ok := stepFloat(ctrl, 238, 1); !ok || v != 240 {
		t.Fatalf("expected clamp to 240, got %f %v", v, ok)
	}
	if _, ok := stepFloat(ctrl, 240, 1); ok {
		t.Fatal("no room to move past the maximum")
	}
	if v, ok := stepFloat(core.ParameterControl{}, 1.5, -1); !ok || v != 1.45 {
		t.Fatalf("default step is 0.05, got %f", v)
	}
}

func TestFormatting(t *testing.T) {
	if got := formatFloat(core.ParameterControl{Step: 15}, 90); got != "90" {
		t.Fatalf("whole steps print whole numbers, got %q", got)
	}
	if got := formatFloat(core.ParameterControl{Step: 0.05}, 0.25); got != "0.25" {
		t.Fatalf("got %q", got)
	}
	if got := formatStat(core.FloatParam("t", "T", 12.345)); got != "12.3" {
		t.Fatalf("got %q", got)
	}
	if got := formatStat(core.BoolParam("b", "B", true)); got != "yes" {
		t.Fatalf("got %q", got)
	}
	if got := formatStat(core.IntParam("i", "I", 7)); got != "7" {
		t.Fatalf("got %q", got)
	}
}

func TestControlTextUsesFireUnits(t *testing.T) {
	dir := core.ParameterControl{Key: "wind_direction", Step: 15}
	if got := controlText(dir, 45); got != "45 NE" {
		t.Fatalf("got %q", got)
	}
	if got := controlText(dir, 345); got != "345 NNW" {
		t.Fatalf("got %q", got)
	}
	if got := controlText(core.ParameterControl{Key: "wind_speed", Step: 1}, 12); got != "12 mph" {
		t.Fatalf("got %q", got)
	}
	if got := controlText(core.ParameterControl{Key: "minutes_per_tick", Step: 5}, 30); got != "30 min" {
		t.Fatalf("got %q", got)
	}
	if got := compassPoint(-90); got != "W" {
		t.Fatalf("-90 degrees should be west, got %q", got)
	}
	if got := compassPoint(359); got != "N" {
		t.Fatalf("359 degrees should round to north, got %q", got)
	}
}

func TestClockText(t *testing.T) {
	if got := clockText(0); got != "day 0 00:00" {
		t.Fatalf("got %q", got)
	}
	if got := clockText(2*core.MinutesPerDay + 400); got != "day 2 06:40" {
		t.Fatalf("got %q", got)
	}
}

func fireSnapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Weather", Params: []core.Parameter{core.FloatParam("wind_direction", "Wind from (deg)", 90)}},
		{Name: "Clock", Params: []core.Parameter{core.FloatParam("time", "Elapsed minutes", 1500)}},
		{Name: "Fire", Params: []core.Parameter{
			core.IntParam("burning", "Burning cells", 12),
			core.BoolParam("fire_did_stop", "Fire stopped", true),
		}},
		{Name: "Burned", Params: []core.Parameter{
			core.IntParam("burned_zone_0", "Zone 1 grass", 40),
			core.IntParam("burned_zone_1", "Zone 2 forest", 10),
		}},
	}}
}

func TestReadControl(t *testing.T) {
	s := fireSnapshot()
	if v, ok := readControl(s, core.ParameterControl{Key: "wind_direction"}); !ok || v != 90 {
		t.Fatalf("got %f %v", v, ok)
	}
	if _, ok := readControl(s, core.ParameterControl{Key: "missing"}); ok {
		t.Fatal("unknown keys have no value")
	}
}

func TestFireStatus(t *testing.T) {
	lines := fireStatus(fireSnapshot())
	if len(lines) != 3 {
		t.Fatalf("expected clock plus two fire rows, got %+v", lines)
	}
	if lines[0].value != "day 1 01:00" {
		t.Fatalf("clock row %+v", lines[0])
	}
	if lines[1].value != "12" || lines[1].alert {
		t.Fatalf("burning row %+v", lines[1])
	}
	if lines[2].value != "yes" || !lines[2].alert {
		t.Fatalf("a stopped fire should be flagged: %+v", lines[2])
	}
}

func TestBurnedBarsScaleToLargestZone(t *testing.T) {
	bars := burnedBars(fireSnapshot())
	if len(bars) != 2 {
		t.Fatalf("expected two bars, got %+v", bars)
	}
	if bars[0].frac != 1 || bars[1].frac != 0.25 || bars[1].count != 10 {
		t.Fatalf("unexpected bars %+v", bars)
	}
	empty := burnedBars(core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Burned", Params: []core.Parameter{core.IntParam("burned_zone_0", "Zone 1", 0)}},
	}})
	if len(empty) != 1 || empty[0].frac != 0 {
		t.Fatalf("nothing burned should give empty bars, got %+v", empty)
	}
}
