package fire

import "wildfire/internal/core"

type fireLineJob struct {
	cells      []int
	completeAt float64
}

type fireLineBook struct {
	jobs []fireLineJob
}

// BuildFireLine starts crews on a fireline between two markers. Unburnt cells
// on the segment are flagged as under construction and become real firelines
// once AdvanceFireLines reaches the completion time. Markers are clamped to
// the grid. It returns the number of cells queued.
func (e *Engine) BuildFireLine(from, to core.Point, now float64) int {
	from = e.grid.Clamp(from)
	to = e.grid.Clamp(to)
	var queued []int
	core.WalkLine(from.X, from.Y, to.X, to.Y, func(x, y int) bool {
		i := e.grid.Index(x, y)
		c := &e.cells[i]
		if c.State != Unburnt || c.IsRiver || c.IsFireLine || c.IsFireLineUnderConstruction {
			return true
		}
		c.IsFireLineUnderConstruction = true
		queued = append(queued, i)
		return true
	})
	if len(queued) == 0 {
		return 0
	}
	e.fireLine.jobs = append(e.fireLine.jobs, fireLineJob{
		cells:      queued,
		completeAt: now + float64(len(queued))*e.cfg.FireLineMinutesPerCell,
	})
	return len(queued)
}

// AdvanceFireLines finishes every fireline due by now and returns the number
// of cells that became firelines. Cells the fire reached while crews were
// still working stay ordinary burnt ground.
func (e *Engine) AdvanceFireLines(now float64) int {
	done := 0
	kept := e.fireLine.jobs[:0]
	for _, job := range e.fireLine.jobs {
		if job.completeAt > now {
			kept = append(kept, job)
			continue
		}
		for _, i := range job.cells {
			c := &e.cells[i]
			c.IsFireLineUnderConstruction = false
			if c.State == Unburnt {
				c.IsFireLine = true
				done++
			}
		}
	}
	e.fireLine.jobs = kept
	return done
}

// PendingFireLines returns the number of firelines still under construction.
func (e *Engine) PendingFireLines() int { return len(e.fireLine.jobs) }
