package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"wildfire/internal/fire"
	"wildfire/internal/scenario"
)

type sweepResult struct {
	wind    fire.Wind
	summary fire.Summary
	err     error
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func sweepWinds(speeds, directions []float64) []fire.Wind {
	winds := make([]fire.Wind, 0, len(speeds)*len(directions))
	for _, speed := range speeds {
		for _, dir := range directions {
			winds = append(winds, fire.Wind{Speed: speed, Direction: dir})
		}
	}
	return winds
}

// runSweep simulates sc once per wind on a pool of workers. Results are sorted
// by total burned cells, largest first.
func runSweep(sc *scenario.Scenario, base map[string]string, winds []fire.Wind, days, workers int) ([]sweepResult, error) {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan fire.Wind)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for wind := range jobs {
				results <- runOne(sc, base, wind, days)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, wind := range winds {
			jobs <- wind
		}
		close(jobs)
	}()

	var all []sweepResult
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		all = append(all, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(all, func(i, j int) bool {
		bi, bj := all[i].summary.TotalBurned(), all[j].summary.TotalBurned()
		if bi != bj {
			return bi > bj
		}
		if all[i].wind.Speed != all[j].wind.Speed {
			return all[i].wind.Speed < all[j].wind.Speed
		}
		return all[i].wind.Direction < all[j].wind.Direction
	})
	return all, nil
}

func runOne(sc *scenario.Scenario, base map[string]string, wind fire.Wind, days int) sweepResult {
	overrides := make(map[string]string, len(base)+2)
	for k, v := range base {
		overrides[k] = v
	}
	overrides["wind_speed"] = strconv.FormatFloat(wind.Speed, 'g', -1, 64)
	overrides["wind_direction"] = strconv.FormatFloat(wind.Direction, 'g', -1, 64)
	sim, err := scenario.NewSimulation(sc, overrides)
	if err != nil {
		return sweepResult{wind: wind, err: err}
	}
	return sweepResult{wind: wind, summary: fire.RunDays(sim, days)}
}

func printSummary(w io.Writer, zones []fire.Zone, s fire.Summary) {
	for _, day := range s.Days {
		fmt.Fprintf(w, "day %d: burning=%d burned=%v\n", day.Day, day.Burning, day.Burned)
	}
	for i, z := range zones {
		if i < len(s.Burned) {
			fmt.Fprintf(w, "  zone %d (%s, %s, %s drought): %d cells burned\n", i, z.Vegetation, z.Terrain, z.Drought, s.Burned[i])
		}
	}
	status := "still burning at horizon"
	if s.Stopped {
		status = fmt.Sprintf("stopped at %.0f min (day %.1f)", s.StoppedAt, s.StoppedAt/1440)
	}
	fmt.Fprintf(w, "total burned %d, peak burning %d, survivors %d, low-intensity end %t, %s (%d steps)\n",
		s.TotalBurned(), s.PeakBurning, s.FireSurvivors, s.EndOfLowIntensityFire, status, s.StepsSimulated)
}

func printSweep(w io.Writer, results []sweepResult) {
	fmt.Fprintf(w, "%d runs, most burned first:\n", len(results))
	for i, res := range results {
		s := res.summary
		stop := "-"
		if s.Stopped {
			stop = fmt.Sprintf("%.0f", s.StoppedAt)
		}
		fmt.Fprintf(w, "%2d) wind %5.1f mph from %5.1f deg: burned=%d peak=%d stopped=%s low-end=%t\n",
			i+1, res.wind.Speed, res.wind.Direction, s.TotalBurned(), s.PeakBurning, stop, s.EndOfLowIntensityFire)
	}
}
