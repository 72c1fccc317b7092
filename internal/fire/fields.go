package fire

import "math"

// ElevationField returns cell elevations in ft, row-major.
func (s *Simulation) ElevationField() []float64 {
	cells := s.engine.Cells()
	out := make([]float64, len(cells))
	for i := range cells {
		out[i] = cells[i].Elevation
	}
	return out
}

// IgnitionETAField returns the minutes until each unburnt cell is predicted
// to ignite. Cells with nothing scheduled, or already on fire, report +Inf.
func (s *Simulation) IgnitionETAField() []float64 {
	cells := s.engine.Cells()
	now := s.engine.Time()
	out := make([]float64, len(cells))
	for i := range cells {
		if !cells[i].IgnitionPending() {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = math.Max(0, cells[i].IgnitionTime-now)
	}
	return out
}

// BurnIndexField returns 0 for cells fire has not reached and 1 + the burn
// index for burning or burnt cells.
func (s *Simulation) BurnIndexField() []uint8 {
	cells := s.engine.Cells()
	out := make([]uint8, len(cells))
	for i := range cells {
		if cells[i].State == Unburnt {
			continue
		}
		out[i] = 1 + uint8(s.engine.BurnIndex(i))
	}
	return out
}

// WindVector returns the direction the wind pushes fire in grid coordinates
// (y north), with length speed / maxWindSpeed.
func (s *Simulation) WindVector() (float64, float64) {
	w := s.engine.Wind()
	theta := -w.Direction * math.Pi / 180
	k := math.Min(w.Speed/maxWindSpeed, 1)
	return math.Sin(theta) * k, -math.Cos(theta) * k
}
