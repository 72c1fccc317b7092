package fire

import (
	"fmt"
	"math"

	"wildfire/internal/core"
)

// SurvivalRule decides, when a cell ignites, whether its vegetation survives
// the fire. Survivors still burn through the normal state machine; the flag
// only tells renderers the canopy made it.
type SurvivalRule func(c *Cell, rng core.Source, probability float64) bool

// DefaultSurvivalRule lets plain forest survive with the configured
// probability. Grass, shrub and suppressed forest never survive.
func DefaultSurvivalRule(c *Cell, rng core.Source, probability float64) bool {
	if c.Zone == nil || c.Zone.Vegetation != VegetationForest {
		return false
	}
	return core.Chance(rng, probability)
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithRand replaces the engine's randomness source.
func WithRand(src core.Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rng = src
		}
	}
}

// WithSurvivalRule replaces the fire survivor hook. A nil rule disables
// survivors entirely.
func WithSurvivalRule(rule SurvivalRule) Option {
	return func(e *Engine) { e.survival = rule }
}

// Engine owns the cell grid and advances the fire through it.
type Engine struct {
	cfg   Config
	grid  core.Grid
	cells []Cell
	zones []Zone
	wind  Wind

	rng      core.Source
	survival SurvivalRule

	time                  float64
	day                   int
	endOfLowIntensityFire bool
	fireDidStop           bool
	burning               int
	burnedCellsInZone     []int

	// Scratch buffers written during a scan and committed after it, so every
	// cell observes the state from the start of the tick.
	nextState      []FireState
	nextIgnition   []float64
	nextBurnTime   []float64
	nextSpreadRate []float64
	survivors      []int

	search   *neighborSearch
	fireLine fireLineBook
}

// New builds an engine over cells, which it takes ownership of. Cells must be
// laid out row-major with coordinates matching their index and ZoneIdx
// pointing into zones. Sparks ignite at time zero and clear any unburnt
// island they land in. Sparks outside the grid are a programming error and
// panic.
func New(cfg Config, zones []Zone, cells []Cell, wind Wind, sparks []core.Point, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.Grid{W: cfg.Width, H: cfg.Height}
	if len(cells) != grid.Len() {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidGeometry, len(cells), grid.W, grid.H)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: no zones", ErrInvalidZone)
	}
	for i, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, fmt.Errorf("zone %d: %w", i, err)
		}
	}

	e := &Engine{
		cfg:               cfg,
		grid:              grid,
		cells:             cells,
		zones:             zones,
		wind:              wind,
		rng:               core.NewRNG(cfg.Seed),
		survival:          DefaultSurvivalRule,
		day:               0,
		burnedCellsInZone: make([]int, len(zones)),
		nextState:         make([]FireState, len(cells)),
		nextIgnition:      make([]float64, len(cells)),
		nextBurnTime:      make([]float64, len(cells)),
		nextSpreadRate:    make([]float64, len(cells)),
		search:            newNeighborSearch(grid.W, grid.H),
	}
	for _, opt := range opts {
		opt(e)
	}

	for i := range cells {
		c := &cells[i]
		x, y := grid.Coords(i)
		if c.X != x || c.Y != y {
			return nil, fmt.Errorf("%w: cell %d has coordinates (%d,%d), want (%d,%d)", ErrInvalidGeometry, i, c.X, c.Y, x, y)
		}
		if c.ZoneIdx < 0 || c.ZoneIdx >= len(zones) {
			return nil, fmt.Errorf("%w: cell %d references zone %d of %d", ErrInvalidZone, i, c.ZoneIdx, len(zones))
		}
		c.Zone = &e.zones[c.ZoneIdx]
	}

	for _, s := range sparks {
		if !grid.Contains(s.X, s.Y) {
			panic(fmt.Sprintf("fire: spark (%d,%d) outside %dx%d grid", s.X, s.Y, grid.W, grid.H))
		}
		idx := grid.Index(s.X, s.Y)
		cells[idx].IgnitionTime = 0
		e.clearUnburntIsland(idx)
	}
	e.refreshStopped()
	return e, nil
}

// UpdateFire advances the fire to time (minutes). Times must strictly
// increase between calls.
func (e *Engine) UpdateFire(time float64) {
	e.time = time
	if day := int(math.Floor(time / core.MinutesPerDay)); day != e.day {
		e.day = day
		if core.Chance(e.rng, e.cfg.LowIntensityEndChance(day)) {
			e.endOfLowIntensityFire = true
		}
	}

	cells := e.cells
	for i := range cells {
		e.nextState[i] = cells[i].State
		e.nextIgnition[i] = cells[i].IgnitionTime
		e.nextBurnTime[i] = cells[i].BurnTime
		e.nextSpreadRate[i] = cells[i].SpreadRate
	}
	e.survivors = e.survivors[:0]

	for i := range cells {
		c := &cells[i]
		switch {
		case c.State == Burning && time-c.IgnitionTime > c.BurnTime:
			e.nextState[i] = Burnt
		case c.State == Unburnt && time > c.IgnitionTime:
			e.nextState[i] = Burning
			e.burnedCellsInZone[c.ZoneIdx]++
			if e.survival != nil && e.survival(c, e.rng, e.cfg.FireSurvivalProbability) {
				e.survivors = append(e.survivors, i)
			}
			bi := e.cfg.BurnThresholds.Classify(c.SpreadRate)
			if e.endOfLowIntensityFire && bi == BurnIndexLow {
				continue
			}
			e.spreadFrom(i, bi)
		}
	}

	for i := range cells {
		cells[i].State = e.nextState[i]
		cells[i].IgnitionTime = e.nextIgnition[i]
		cells[i].BurnTime = e.nextBurnTime[i]
		cells[i].SpreadRate = e.nextSpreadRate[i]
	}
	for _, i := range e.survivors {
		cells[i].IsFireSurvivor = true
	}
	e.refreshStopped()
}

// spreadFrom proposes ignition times for the unburnt neighbours of cell i.
// The earliest arrival wins, and the fastest arrival shortens the burn time
// and raises the neighbour's burn index.
func (e *Engine) spreadFrom(i int, bi BurnIndex) {
	src := &e.cells[i]
	for _, n := range e.search.find(e.cells, i, e.cfg.NeighborsDist, bi) {
		dst := &e.cells[n]
		if dst.State != Unburnt {
			continue
		}
		rate := SpreadRate(src, dst, e.wind, e.cfg.CellSize)
		if rate <= 0 {
			continue
		}
		dist := core.Distance(src.X, src.Y, dst.X, dst.Y) * e.cfg.CellSize
		if candidate := src.IgnitionTime + dist/rate; candidate < e.nextIgnition[n] {
			e.nextIgnition[n] = candidate
		}
		if burnTime := math.Max(e.cfg.MinCellBurnTime, e.cfg.CellSize/rate); burnTime < e.nextBurnTime[n] {
			e.nextBurnTime[n] = burnTime
		}
		if rate > e.nextSpreadRate[n] {
			e.nextSpreadRate[n] = rate
		}
	}
}

func (e *Engine) refreshStopped() {
	e.burning = 0
	pending := false
	for i := range e.cells {
		c := &e.cells[i]
		if c.State == Burning {
			e.burning++
		} else if c.IgnitionPending() {
			pending = true
		}
	}
	e.fireDidStop = e.burning == 0 && !pending
}

// clearUnburntIsland removes the unburnt island flag from every cell
// orthogonally connected to start through flagged cells.
func (e *Engine) clearUnburntIsland(start int) {
	if !e.cells[start].IsUnburntIsland {
		return
	}
	e.cells[start].IsUnburntIsland = false
	queue := []int{start}
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		x, y := e.grid.Coords(j)
		for _, step := range orthogonalSteps {
			nx, ny := x+step.X, y+step.Y
			if !e.grid.Contains(nx, ny) {
				continue
			}
			n := e.grid.Index(nx, ny)
			if e.cells[n].IsUnburntIsland {
				e.cells[n].IsUnburntIsland = false
				queue = append(queue, n)
			}
		}
	}
}

// Cells exposes the grid. Flags may be edited between UpdateFire calls.
func (e *Engine) Cells() []Cell { return e.cells }

// Cell returns the cell at (x, y).
func (e *Engine) Cell(x, y int) *Cell { return &e.cells[e.grid.Index(x, y)] }

// Grid returns the grid dimensions.
func (e *Engine) Grid() core.Grid { return e.grid }

// Zones exposes the zones cells point into.
func (e *Engine) Zones() []Zone { return e.zones }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Wind returns the current wind.
func (e *Engine) Wind() Wind { return e.wind }

// SetWind changes the wind used by subsequent ticks.
func (e *Engine) SetWind(w Wind) { e.wind = w }

// Time returns the time passed to the last UpdateFire call.
func (e *Engine) Time() float64 { return e.time }

// Day returns the current simulated day.
func (e *Engine) Day() int { return e.day }

// EndOfLowIntensityFire reports whether low intensity fire has stopped
// spreading. Once true it stays true.
func (e *Engine) EndOfLowIntensityFire() bool { return e.endOfLowIntensityFire }

// FireDidStop reports whether no cell is burning and no ignition is pending.
func (e *Engine) FireDidStop() bool { return e.fireDidStop }

// BurningCells returns the number of cells currently burning.
func (e *Engine) BurningCells() int { return e.burning }

// BurnIndex returns the burn index of cell i.
func (e *Engine) BurnIndex(i int) BurnIndex {
	return e.cfg.BurnThresholds.Classify(e.cells[i].SpreadRate)
}

// BurnedCellsInZone returns how many cells of zone idx have caught fire.
func (e *Engine) BurnedCellsInZone(idx int) int {
	if idx < 0 || idx >= len(e.burnedCellsInZone) {
		return 0
	}
	return e.burnedCellsInZone[idx]
}

// BurnedCells returns a copy of the per-zone burned cell counts.
func (e *Engine) BurnedCells() []int {
	return append([]int(nil), e.burnedCellsInZone...)
}
