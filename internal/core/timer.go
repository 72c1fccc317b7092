package core

import "time"

// MinutesPerDay is the length of a simulated day.
const MinutesPerDay = 1440

// SimClock maps ticks onto simulated minutes. Simulated time only moves
// forward; the fire engine relies on strictly increasing times.
type SimClock struct {
	minutesPerTick float64
	elapsed        float64
}

// NewSimClock constructs a clock advancing minutesPerTick per tick.
func NewSimClock(minutesPerTick float64) *SimClock {
	c := &SimClock{}
	c.SetRate(minutesPerTick)
	return c
}

// SetRate changes the simulated minutes per tick. It is safe to call from the
// main loop.
func (c *SimClock) SetRate(minutesPerTick float64) {
	if minutesPerTick <= 0 {
		minutesPerTick = 1
	}
	c.minutesPerTick = minutesPerTick
}

// Rate reports the simulated minutes per tick.
func (c *SimClock) Rate() float64 { return c.minutesPerTick }

// Tick advances the clock and returns the new elapsed time in minutes.
func (c *SimClock) Tick() float64 {
	c.elapsed += c.minutesPerTick
	return c.elapsed
}

// Elapsed returns the simulated minutes since the last reset.
func (c *SimClock) Elapsed() float64 { return c.elapsed }

// Day returns the zero-based simulated day.
func (c *SimClock) Day() int { return int(c.elapsed / MinutesPerDay) }

// Reset rewinds the clock to zero.
func (c *SimClock) Reset() { c.elapsed = 0 }

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
