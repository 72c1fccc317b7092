package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"wildfire/internal/core"
	"wildfire/internal/fire"
)

// ErrInvalidScenario reports a scenario file that cannot be turned into a grid.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario is the on-disk description of a fire landscape.
type Scenario struct {
	Name     string  `yaml:"name"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	Seed     int64   `yaml:"seed"`

	Wind  WindSpec   `yaml:"wind"`
	Zones []ZoneSpec `yaml:"zones"`
	// ZoneMap lists one row of zone digits per grid row, northern row first.
	// Without it the zones split the grid into vertical strips, west to east.
	ZoneMap   []string      `yaml:"zone_map"`
	Elevation ElevationSpec `yaml:"elevation"`

	Rivers         []Segment `yaml:"rivers"`
	FireLines      []Segment `yaml:"fire_lines"`
	UnburntIslands []Rect    `yaml:"unburnt_islands"`
	Sparks         []Point   `yaml:"sparks"`

	// Engine holds fire.Config overrides using the same keys as -set.
	Engine map[string]string `yaml:"engine"`
}

type WindSpec struct {
	Speed     float64 `yaml:"speed"`
	Direction float64 `yaml:"direction"`
}

type ZoneSpec struct {
	Vegetation string `yaml:"vegetation"`
	Terrain    string `yaml:"terrain"`
	Drought    string `yaml:"drought"`
}

type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Segment struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Rect is an axis-aligned block of cells anchored at its south-west corner.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario and checks it.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate rejects scenarios that would not build.
func (s *Scenario) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScenario, s.Width, s.Height)
	}
	if s.CellSize < 0 {
		return fmt.Errorf("%w: cell_size %g", ErrInvalidScenario, s.CellSize)
	}
	if len(s.Zones) == 0 {
		return fmt.Errorf("%w: zones cannot be empty", ErrInvalidScenario)
	}
	if len(s.Zones) > 10 {
		return fmt.Errorf("%w: at most 10 zones, got %d", ErrInvalidScenario, len(s.Zones))
	}
	if _, err := s.zones(); err != nil {
		return err
	}
	if len(s.ZoneMap) > 0 {
		if len(s.ZoneMap) != s.Height {
			return fmt.Errorf("%w: zone_map has %d rows, want %d", ErrInvalidScenario, len(s.ZoneMap), s.Height)
		}
		for r, row := range s.ZoneMap {
			if len(row) != s.Width {
				return fmt.Errorf("%w: zone_map[%d] has %d columns, want %d", ErrInvalidScenario, r, len(row), s.Width)
			}
			for c, ch := range row {
				if ch < '0' || int(ch-'0') >= len(s.Zones) {
					return fmt.Errorf("%w: zone_map[%d][%d] = %q names no zone", ErrInvalidScenario, r, c, ch)
				}
			}
		}
	}
	grid := core.Grid{W: s.Width, H: s.Height}
	for i, p := range s.Sparks {
		if !grid.Contains(p.X, p.Y) {
			return fmt.Errorf("%w: sparks[%d] (%d,%d) outside the grid", ErrInvalidScenario, i, p.X, p.Y)
		}
	}
	for i, r := range s.UnburntIslands {
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("%w: unburnt_islands[%d] must have a positive size", ErrInvalidScenario, i)
		}
	}
	return nil
}

func (s *Scenario) zones() ([]fire.Zone, error) {
	zones := make([]fire.Zone, len(s.Zones))
	for i, zs := range s.Zones {
		veg, err := fire.ParseVegetation(zs.Vegetation)
		if err != nil {
			return nil, fmt.Errorf("zones[%d]: %w", i, err)
		}
		terrain := fire.TerrainPlains
		if zs.Terrain != "" {
			if terrain, err = fire.ParseTerrain(zs.Terrain); err != nil {
				return nil, fmt.Errorf("zones[%d]: %w", i, err)
			}
		}
		drought := fire.DroughtNone
		if zs.Drought != "" {
			if drought, err = fire.ParseDrought(zs.Drought); err != nil {
				return nil, fmt.Errorf("zones[%d]: %w", i, err)
			}
		}
		zones[i] = fire.Zone{Vegetation: veg, Terrain: terrain, Drought: drought}
	}
	return zones, nil
}

// Config resolves the engine configuration: defaults, then the scenario's own
// fields and engine block, then overrides.
func (s *Scenario) Config(overrides map[string]string) fire.Config {
	cfg := fire.DefaultConfig()
	cfg.Width = s.Width
	cfg.Height = s.Height
	if s.CellSize > 0 {
		cfg.CellSize = s.CellSize
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	fire.ApplyMap(&cfg, s.Engine)
	fire.ApplyMap(&cfg, overrides)
	// The grid comes from the scenario; size overrides would not match it.
	cfg.Width = s.Width
	cfg.Height = s.Height
	return cfg
}

// WindFor returns the scenario wind with any wind_speed or wind_direction
// override applied.
func (s *Scenario) WindFor(overrides map[string]string) fire.Wind {
	w := fire.Wind{Speed: s.Wind.Speed, Direction: s.Wind.Direction}
	if v, err := strconv.ParseFloat(overrides["wind_speed"], 64); err == nil && v >= 0 {
		w.Speed = v
	}
	if v, err := strconv.ParseFloat(overrides["wind_direction"], 64); err == nil {
		w.Direction = v
	}
	return w
}

// Build checks the scenario against the resolved configuration and returns a
// builder producing a fresh engine per seed.
func Build(s *Scenario, overrides map[string]string) (fire.Builder, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	cfg := s.Config(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	zones, err := s.zones()
	if err != nil {
		return nil, err
	}
	wind := s.WindFor(overrides)
	return func(seed int64) (*fire.Engine, error) {
		c := cfg
		if seed != 0 {
			c.Seed = seed
		}
		z := make([]fire.Zone, len(zones))
		copy(z, zones)
		return fire.New(c, z, s.Cells(c, z), wind, s.sparkPoints())
	}, nil
}

// Cells lays out the grid for cfg: zones, elevation, rivers, firelines and
// unburnt islands.
func (s *Scenario) Cells(cfg fire.Config, zones []fire.Zone) []fire.Cell {
	grid := core.Grid{W: cfg.Width, H: cfg.Height}
	relief := s.Elevation.reliefNoise(cfg.Seed)
	cells := make([]fire.Cell, grid.Len())
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			zoneIdx := s.zoneAt(x, y)
			elevation := relief(x, y) * terrainRelief(zones[zoneIdx].Terrain)
			cells[grid.Index(x, y)] = fire.NewCell(x, y, zoneIdx, elevation, cfg.MaxCellBurnTime)
		}
	}
	for _, seg := range s.Rivers {
		markSegment(cells, grid, seg, func(c *fire.Cell) { c.IsRiver = true })
	}
	for _, seg := range s.FireLines {
		markSegment(cells, grid, seg, func(c *fire.Cell) { c.IsFireLine = true })
	}
	for _, r := range s.UnburntIslands {
		for y := r.Y; y < r.Y+r.H; y++ {
			for x := r.X; x < r.X+r.W; x++ {
				if grid.Contains(x, y) {
					cells[grid.Index(x, y)].IsUnburntIsland = true
				}
			}
		}
	}
	return cells
}

func (s *Scenario) zoneAt(x, y int) int {
	if len(s.ZoneMap) > 0 {
		row := s.ZoneMap[s.Height-1-y]
		return int(row[x] - '0')
	}
	return x * len(s.Zones) / s.Width
}

func (s *Scenario) sparkPoints() []core.Point {
	pts := make([]core.Point, len(s.Sparks))
	for i, p := range s.Sparks {
		pts[i] = core.Point{X: p.X, Y: p.Y}
	}
	return pts
}

func markSegment(cells []fire.Cell, grid core.Grid, seg Segment, mark func(*fire.Cell)) {
	from := grid.Clamp(core.Point{X: seg.From.X, Y: seg.From.Y})
	to := grid.Clamp(core.Point{X: seg.To.X, Y: seg.To.Y})
	core.WalkLine(from.X, from.Y, to.X, to.Y, func(x, y int) bool {
		mark(&cells[grid.Index(x, y)])
		return true
	})
}

// Describe renders a one-line summary for logs and the runner.
func (s *Scenario) Describe() string {
	parts := make([]string, len(s.Zones))
	for i, z := range s.Zones {
		parts[i] = z.Vegetation
	}
	return fmt.Sprintf("%s %dx%d zones=[%s] sparks=%d", s.Name, s.Width, s.Height, strings.Join(parts, ","), len(s.Sparks))
}
