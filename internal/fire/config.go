package fire

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidGeometry reports a grid that cannot be simulated.
var ErrInvalidGeometry = errors.New("fire: invalid grid geometry")

// ErrInvalidConfig reports a tunable outside its meaningful range.
var ErrInvalidConfig = errors.New("fire: invalid config")

// Config controls the fire engine.
type Config struct {
	Width  int
	Height int
	// CellSize is the edge length of a cell in ft.
	CellSize float64

	// MinCellBurnTime and MaxCellBurnTime bound how long a cell burns, in
	// minutes. Cells start at the maximum and shorten as faster fire hits them.
	MinCellBurnTime float64
	MaxCellBurnTime float64
	// NeighborsDist is the neighbour search radius in cells.
	NeighborsDist float64

	FireSurvivalProbability float64
	BurnThresholds          BurnThresholds
	// EndOfLowIntensityFireProbability is the chance, rolled once at the start
	// of each day, that low intensity fire stops spreading for good. Index is
	// the day; the last entry covers every later day.
	EndOfLowIntensityFireProbability []float64

	// FireLineMinutesPerCell is how long crews need per fireline cell.
	FireLineMinutesPerCell float64
	// MinutesPerTick is the simulated time covered by one Simulation.Step.
	MinutesPerTick float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:                   120,
		Height:                  80,
		CellSize:                500,
		MinCellBurnTime:         200,
		MaxCellBurnTime:         1440,
		NeighborsDist:           2.5,
		FireSurvivalProbability: 0.2,
		BurnThresholds: BurnThresholds{
			Medium: 10,
			High:   30,
		},
		EndOfLowIntensityFireProbability: []float64{0, 0.6, 0.6, 0.7, 0.8, 1},
		FireLineMinutesPerCell:           30,
		MinutesPerTick:                   10,
		Seed:                             1337,
	}
}

// LowIntensityEndChance returns the probability rolled on the given day.
func (c Config) LowIntensityEndChance(day int) float64 {
	probs := c.EndOfLowIntensityFireProbability
	if len(probs) == 0 || day < 0 {
		return 0
	}
	if day >= len(probs) {
		return probs[len(probs)-1]
	}
	return probs[day]
}

// Validate fails fast on geometry or tunables that would produce garbage.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, c.Width, c.Height)
	}
	if c.CellSize <= 0 || math.IsInf(c.CellSize, 0) || math.IsNaN(c.CellSize) {
		return fmt.Errorf("%w: cell size %g", ErrInvalidGeometry, c.CellSize)
	}
	if c.NeighborsDist < 1 {
		return fmt.Errorf("%w: neighbors distance %g must reach adjacent cells", ErrInvalidConfig, c.NeighborsDist)
	}
	if c.MinCellBurnTime <= 0 || c.MaxCellBurnTime < c.MinCellBurnTime {
		return fmt.Errorf("%w: burn time range [%g, %g]", ErrInvalidConfig, c.MinCellBurnTime, c.MaxCellBurnTime)
	}
	if c.BurnThresholds.Medium <= 0 || c.BurnThresholds.High < c.BurnThresholds.Medium {
		return fmt.Errorf("%w: burn index thresholds %+v", ErrInvalidConfig, c.BurnThresholds)
	}
	if c.FireSurvivalProbability < 0 || c.FireSurvivalProbability > 1 {
		return fmt.Errorf("%w: fire survival probability %g", ErrInvalidConfig, c.FireSurvivalProbability)
	}
	for day, p := range c.EndOfLowIntensityFireProbability {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: day %d low intensity end probability %g", ErrInvalidConfig, day, p)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	ApplyMap(&c, cfg)
	return c
}

// ApplyMap overrides fields of c from a string map. It reports the keys that
// were applied.
func ApplyMap(c *Config, cfg map[string]string) []string {
	var applied []string
	if cfg == nil {
		return applied
	}
	setInt := func(key string, dst *int, lo int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= lo {
				*dst = parsed
				applied = append(applied, key)
			}
		}
	}
	setFloat := func(key string, dst *float64, lo float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= lo {
				*dst = parsed
				applied = append(applied, key)
			}
		}
	}

	setInt("w", &c.Width, 1)
	setInt("h", &c.Height, 1)
	setFloat("cell_size", &c.CellSize, math.SmallestNonzeroFloat64)
	setFloat("min_burn_time", &c.MinCellBurnTime, math.SmallestNonzeroFloat64)
	setFloat("max_burn_time", &c.MaxCellBurnTime, math.SmallestNonzeroFloat64)
	if c.MaxCellBurnTime < c.MinCellBurnTime {
		c.MaxCellBurnTime = c.MinCellBurnTime
	}
	setFloat("neighbors_dist", &c.NeighborsDist, 1)
	setFloat("survival_probability", &c.FireSurvivalProbability, 0)
	if c.FireSurvivalProbability > 1 {
		c.FireSurvivalProbability = 1
	}
	setFloat("burn_index_medium", &c.BurnThresholds.Medium, math.SmallestNonzeroFloat64)
	setFloat("burn_index_high", &c.BurnThresholds.High, math.SmallestNonzeroFloat64)
	if c.BurnThresholds.High < c.BurnThresholds.Medium {
		c.BurnThresholds.High = c.BurnThresholds.Medium
	}
	setFloat("fireline_minutes_per_cell", &c.FireLineMinutesPerCell, 0)
	setFloat("minutes_per_tick", &c.MinutesPerTick, math.SmallestNonzeroFloat64)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
			applied = append(applied, "seed")
		}
	}
	return applied
}
