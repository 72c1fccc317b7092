package scenario

import (
	"math"

	"wildfire/internal/fire"
)

// ElevationSpec tunes the fractal value noise that shapes the relief. The
// noise is scaled per cell by the relief of the cell's terrain type.
type ElevationSpec struct {
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Scale       float64 `yaml:"scale"`
}

func (e ElevationSpec) withDefaults() ElevationSpec {
	if e.Frequency <= 0 {
		e.Frequency = 0.06
	}
	if e.Octaves <= 0 {
		e.Octaves = 4
	}
	if e.Persistence <= 0 {
		e.Persistence = 0.5
	}
	if e.Lacunarity <= 0 {
		e.Lacunarity = 2
	}
	if e.Scale <= 0 {
		e.Scale = 1
	}
	return e
}

// terrainRelief is the elevation range in ft a terrain type spans.
func terrainRelief(t fire.TerrainType) float64 {
	switch t {
	case fire.TerrainFoothills:
		return 600
	case fire.TerrainMountains:
		return 2500
	default:
		return 30
	}
}

// reliefNoise returns a deterministic height field in [0, Scale) for seed.
func (e ElevationSpec) reliefNoise(seed int64) func(x, y int) float64 {
	e = e.withDefaults()
	return func(x, y int) float64 {
		return e.Scale * fractalNoise(seed, float64(x)*e.Frequency, float64(y)*e.Frequency, e.Octaves, e.Persistence, e.Lacunarity)
	}
}

// fractalNoise sums octaves of value noise and normalises the result to [0, 1).
func fractalNoise(seed int64, x, y float64, octaves int, persistence, lacunarity float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += valueNoise(seed+int64(i), x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / maxValue
}

func valueNoise(seed int64, x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	ix, iy := int64(x0), int64(y0)
	fx, fy := smoothstep(x-x0), smoothstep(y-y0)
	a := latticeValue(seed, ix, iy)
	b := latticeValue(seed, ix+1, iy)
	c := latticeValue(seed, ix, iy+1)
	d := latticeValue(seed, ix+1, iy+1)
	top := a + (b-a)*fx
	bottom := c + (d-c)*fx
	return top + (bottom-top)*fy
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

// latticeValue hashes a lattice point to [0, 1) with a splitmix64 finaliser.
func latticeValue(seed, x, y int64) float64 {
	h := uint64(seed)*0x9e3779b97f4a7c15 ^ uint64(x)*0xbf58476d1ce4e5b9 ^ uint64(y)*0x94d049bb133111eb
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return float64(h>>11) / (1 << 53)
}
