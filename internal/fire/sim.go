package fire

import (
	"wildfire/internal/core"
)

// Builder constructs a fresh engine, with fresh cells, for a seed. A zero
// seed means the builder's configured seed.
type Builder func(seed int64) (*Engine, error)

// Simulation adapts an Engine to core.Sim: every Step advances a simulated
// clock, finishes due firelines and runs one UpdateFire.
type Simulation struct {
	name    string
	build   Builder
	engine  *Engine
	clock   *core.SimClock
	display []uint8

	wind    Wind
	hasWind bool
	err     error
}

// NewSimulation builds the first engine right away so configuration errors
// surface before the viewer or runner starts.
func NewSimulation(name string, build Builder) (*Simulation, error) {
	engine, err := build(0)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		name:   name,
		build:  build,
		engine: engine,
		clock:  core.NewSimClock(engine.Config().MinutesPerTick),
	}
	s.rebuildDisplay()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.name }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size {
	g := s.engine.Grid()
	return core.Size{W: g.W, H: g.H}
}

// Cells exposes the current display buffer.
func (s *Simulation) Cells() []uint8 { return s.display }

// Engine exposes the running engine.
func (s *Simulation) Engine() *Engine { return s.engine }

// Time returns the simulated minutes since the last reset.
func (s *Simulation) Time() float64 { return s.clock.Elapsed() }

// Err reports the error of the last failed Reset, if any.
func (s *Simulation) Err() error { return s.err }

// Reset rebuilds the engine from scratch. Wind set through SetWind or the HUD
// carries over. On failure the previous engine keeps running and Err reports
// why.
func (s *Simulation) Reset(seed int64) {
	engine, err := s.build(seed)
	if err != nil {
		s.err = err
		return
	}
	s.err = nil
	s.engine = engine
	if s.hasWind {
		s.engine.SetWind(s.wind)
	}
	s.clock.Reset()
	s.rebuildDisplay()
}

// Step advances the simulation by one tick.
func (s *Simulation) Step() {
	t := s.clock.Tick()
	s.engine.AdvanceFireLines(t)
	s.engine.UpdateFire(t)
	s.rebuildDisplay()
}

// SetWind changes the wind for this and later runs.
func (s *Simulation) SetWind(w Wind) {
	s.wind = w
	s.hasWind = true
	s.engine.SetWind(w)
}

// BuildFireLine queues a fireline starting at the current simulated time.
func (s *Simulation) BuildFireLine(from, to core.Point) int {
	n := s.engine.BuildFireLine(from, to, s.clock.Elapsed())
	s.rebuildDisplay()
	return n
}
