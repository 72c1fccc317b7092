package fire

import (
	"fmt"
	"math"

	"wildfire/internal/core"
)

const (
	maxWindSpeed      = 60
	maxMinutesPerTick = 240
)

// Parameters reports the tunables and fire statistics shown on the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	e := s.engine
	cfg := e.Config()
	wind := e.Wind()

	burned := make([]core.Parameter, 0, len(e.Zones()))
	for i, z := range e.Zones() {
		label := fmt.Sprintf("Zone %d %s", i+1, z.Vegetation)
		burned = append(burned, core.IntParam(fmt.Sprintf("burned_zone_%d", i), label, e.BurnedCellsInZone(i)))
	}

	groups := []core.ParameterGroup{
		{
			Name: "Weather",
			Params: []core.Parameter{
				core.FloatParam("wind_speed", "Wind speed (mph)", wind.Speed),
				core.FloatParam("wind_direction", "Wind from (deg)", wind.Direction),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				core.FloatParam("minutes_per_tick", "Minutes per tick", s.clock.Rate()),
				core.FloatParam("time", "Elapsed minutes", s.clock.Elapsed()),
				core.IntParam("day", "Day", e.Day()),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.IntParam("burning", "Burning cells", e.BurningCells()),
				core.BoolParam("end_of_low_intensity_fire", "Low intensity fire out", e.EndOfLowIntensityFire()),
				core.BoolParam("fire_did_stop", "Fire stopped", e.FireDidStop()),
				core.IntParam("pending_firelines", "Firelines in progress", e.PendingFireLines()),
			},
		},
		{
			Name:   "Burned",
			Params: burned,
		},
		{
			Name: "Model",
			Params: []core.Parameter{
				core.FloatParam("cell_size", "Cell size (ft)", cfg.CellSize),
				core.FloatParam("neighbors_dist", "Neighbour radius", cfg.NeighborsDist),
				core.FloatParam("burn_index_medium", "Medium burn index (ft/min)", cfg.BurnThresholds.Medium),
				core.FloatParam("burn_index_high", "High burn index (ft/min)", cfg.BurnThresholds.High),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "wind_speed", Label: "Wind speed", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: maxWindSpeed, HasMin: true, HasMax: true},
		{Key: "wind_direction", Label: "Wind from", Type: core.ParamTypeFloat, Step: 15, Min: 0, Max: 345, HasMin: true, HasMax: true, Wrap: true},
		{Key: "minutes_per_tick", Label: "Minutes/tick", Type: core.ParamTypeFloat, Step: 5, Min: 1, Max: maxMinutesPerTick, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter applies a HUD adjustment. It reports whether the key is
// known.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "wind_speed":
		w := s.engine.Wind()
		w.Speed = math.Max(0, math.Min(value, maxWindSpeed))
		s.SetWind(w)
	case "wind_direction":
		w := s.engine.Wind()
		w.Direction = math.Mod(math.Mod(value, 360)+360, 360)
		s.SetWind(w)
	case "minutes_per_tick":
		s.clock.SetRate(math.Max(1, math.Min(value, maxMinutesPerTick)))
	default:
		return false
	}
	return true
}
