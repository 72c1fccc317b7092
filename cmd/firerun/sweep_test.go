package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"wildfire/internal/scenario"
)

const sweepScenario = `
name: sweep
width: 10
height: 10
cell_size: 100
seed: 3
zones:
  - {vegetation: grass, drought: severe}
sparks:
  - {x: 5, y: 5}
`

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0, 12.5,90 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !slices.Equal(got, []float64{0, 12.5, 90}) {
		t.Fatalf("unexpected values %v", got)
	}
	if got, err := parseFloats(""); err != nil || got != nil {
		t.Fatalf("empty list should parse to nil, got %v, %v", got, err)
	}
	if _, err := parseFloats("1,x"); err == nil {
		t.Fatal("expected an error for a non-numeric entry")
	}
}

func TestKVListOverrides(t *testing.T) {
	l := kvList{"wind_speed=10", "broken", " seed = 4 "}
	m := l.overrides()
	if len(m) != 2 || m["wind_speed"] != "10" || m["seed"] != "4" {
		t.Fatalf("unexpected overrides %v", m)
	}
}

func TestRunSweepCoversEveryWind(t *testing.T) {
	sc, err := scenario.Parse([]byte(sweepScenario))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	winds := sweepWinds([]float64{0, 20}, []float64{0, 90, 180})
	if len(winds) != 6 {
		t.Fatalf("expected 6 winds, got %d", len(winds))
	}
	results, err := runSweep(sc, map[string]string{"minutes_per_tick": "60"}, winds, 1, 3)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != len(winds) {
		t.Fatalf("expected %d results, got %d", len(winds), len(results))
	}
	for i, res := range results {
		if res.summary.TotalBurned() < 1 {
			t.Fatalf("run %d burned nothing despite a spark", i)
		}
		if i > 0 && res.summary.TotalBurned() > results[i-1].summary.TotalBurned() {
			t.Fatalf("results not sorted by burned cells at %d", i)
		}
	}

	var buf bytes.Buffer
	printSweep(&buf, results)
	if !strings.Contains(buf.String(), "6 runs") {
		t.Fatalf("sweep report missing run count:\n%s", buf.String())
	}
}
