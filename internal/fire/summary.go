package fire

import "wildfire/internal/core"

// DaySummary captures the state at the end of one simulated day.
type DaySummary struct {
	Day     int
	Burned  []int
	Burning int
}

// Summary captures telemetry from a run, used by the headless runner and for
// tuning.
type Summary struct {
	Days []DaySummary
	// Stopped reports whether the fire went out before the horizon, and
	// StoppedAt when.
	Stopped   bool
	StoppedAt float64
	// PeakBurning is the largest number of cells burning at once.
	PeakBurning           int
	EndOfLowIntensityFire bool
	FireSurvivors         int
	Burned                []int
	StepsSimulated        int
}

// TotalBurned sums the burned cells across zones.
func (s Summary) TotalBurned() int {
	total := 0
	for _, n := range s.Burned {
		total += n
	}
	return total
}

// RunDays steps sim until the fire stops or days simulated days have passed.
func RunDays(sim *Simulation, days int) Summary {
	horizon := float64(days) * core.MinutesPerDay
	var out Summary
	lastDay := 0
	for sim.Time() < horizon {
		// The tick that crosses midnight belongs to the new day, so the closing
		// figures of a day are the ones from before that tick.
		e := sim.Engine()
		closing := DaySummary{Day: lastDay, Burned: e.BurnedCells(), Burning: e.BurningCells()}
		sim.Step()
		out.StepsSimulated++
		e = sim.Engine()
		if b := e.BurningCells(); b > out.PeakBurning {
			out.PeakBurning = b
		}
		if day := e.Day(); day != lastDay {
			out.Days = append(out.Days, closing)
			lastDay = day
		}
		if e.FireDidStop() {
			out.Stopped = true
			out.StoppedAt = sim.Time()
			break
		}
	}
	e := sim.Engine()
	out.Days = append(out.Days, DaySummary{Day: lastDay, Burned: e.BurnedCells(), Burning: e.BurningCells()})
	out.EndOfLowIntensityFire = e.EndOfLowIntensityFire()
	out.Burned = e.BurnedCells()
	for i := range e.Cells() {
		if e.Cells()[i].IsFireSurvivor {
			out.FireSurvivors++
		}
	}
	return out
}
