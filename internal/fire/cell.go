package fire

import "math"

// FireState is the per-cell fire state. Transitions only move forward:
// Unburnt -> Burning -> Burnt.
type FireState uint8

const (
	Unburnt FireState = iota
	Burning
	Burnt
)

func (s FireState) String() string {
	switch s {
	case Unburnt:
		return "unburnt"
	case Burning:
		return "burning"
	case Burnt:
		return "burnt"
	default:
		return "unknown"
	}
}

// BurnIndex is a coarse intensity class derived from the peak incoming spread
// rate.
type BurnIndex uint8

const (
	BurnIndexLow BurnIndex = iota
	BurnIndexMedium
	BurnIndexHigh
)

func (b BurnIndex) String() string {
	switch b {
	case BurnIndexLow:
		return "low"
	case BurnIndexMedium:
		return "medium"
	case BurnIndexHigh:
		return "high"
	default:
		return "unknown"
	}
}

// BurnThresholds are the spread rates (ft/min) at which a cell's burn index
// reaches Medium and High.
type BurnThresholds struct {
	Medium float64
	High   float64
}

// Classify maps a spread rate onto a burn index.
func (t BurnThresholds) Classify(spreadRate float64) BurnIndex {
	switch {
	case spreadRate >= t.High:
		return BurnIndexHigh
	case spreadRate >= t.Medium:
		return BurnIndexMedium
	default:
		return BurnIndexLow
	}
}

// Cell is one grid entry.
type Cell struct {
	X, Y      int
	ZoneIdx   int
	Zone      *Zone
	Elevation float64 // ft

	State FireState
	// IgnitionTime is the predicted ignition instant in minutes. It starts at
	// +Inf and only ever decreases.
	IgnitionTime float64
	// BurnTime is how long the cell stays Burning, in minutes.
	BurnTime float64
	// SpreadRate is the peak incoming spread rate (ft/min).
	SpreadRate float64

	IsRiver                     bool
	IsFireLine                  bool
	IsFireLineUnderConstruction bool
	IsUnburntIsland             bool
	IsFireSurvivor              bool
}

// NewCell returns an unburnt cell at (x, y) with no ignition scheduled.
func NewCell(x, y, zoneIdx int, elevation, burnTime float64) Cell {
	return Cell{
		X:            x,
		Y:            y,
		ZoneIdx:      zoneIdx,
		Elevation:    elevation,
		IgnitionTime: math.Inf(1),
		BurnTime:     burnTime,
	}
}

// IsBurnable reports whether fire with the given burn index can enter the
// cell. Rivers and unburnt islands never burn; firelines only give way to
// high intensity fire.
func (c *Cell) IsBurnable(bi BurnIndex) bool {
	if c.IsRiver || c.IsUnburntIsland {
		return false
	}
	if c.IsFireLine {
		return bi == BurnIndexHigh
	}
	return true
}

// IgnitionPending reports whether the cell is unburnt with a finite
// ignition time.
func (c *Cell) IgnitionPending() bool {
	return c.State == Unburnt && !math.IsInf(c.IgnitionTime, 1)
}
