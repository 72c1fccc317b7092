package fire

import (
	"errors"
	"fmt"
	"strings"
)

// Vegetation enumerates the fuel models a zone can carry.
type Vegetation uint8

// TerrainType enumerates the relief classes of a zone.
type TerrainType uint8

// DroughtLevel enumerates how dry a zone's fuel is.
type DroughtLevel uint8

const (
	VegetationGrass Vegetation = iota
	VegetationShrub
	// VegetationForest is forest with small litter.
	VegetationForest
	// VegetationForestWithSuppression is forest with large litter under a
	// suppression regime.
	VegetationForestWithSuppression

	vegetationCount
)

const (
	TerrainPlains TerrainType = iota
	TerrainFoothills
	TerrainMountains

	terrainCount
)

const (
	DroughtNone DroughtLevel = iota
	DroughtMild
	DroughtMedium
	DroughtSevere

	droughtCount
)

// ErrInvalidZone reports a zone referencing an unknown enum value.
var ErrInvalidZone = errors.New("fire: invalid zone")

var vegetationNames = [vegetationCount]string{"grass", "shrub", "forest", "forest-with-suppression"}
var terrainNames = [terrainCount]string{"plains", "foothills", "mountains"}
var droughtNames = [droughtCount]string{"none", "mild", "medium", "severe"}

// moistureContent is the dead fuel moisture fraction per drought level and
// vegetation.
var moistureContent = [droughtCount][vegetationCount]float64{
	DroughtNone:   {0.12, 0.11, 0.14, 0.14},
	DroughtMild:   {0.09, 0.08, 0.11, 0.11},
	DroughtMedium: {0.06, 0.06, 0.08, 0.08},
	DroughtSevere: {0.03, 0.04, 0.05, 0.05},
}

// Zone groups the vegetation, terrain and drought shared by a region of
// cells. Cells keep a pointer to their zone so edits made between ticks are
// picked up on the next one.
type Zone struct {
	Vegetation Vegetation
	Terrain    TerrainType
	Drought    DroughtLevel
}

// MoistureContent returns the fuel moisture fraction for the zone.
func (z Zone) MoistureContent() float64 {
	return moistureContent[z.Drought][z.Vegetation]
}

// Validate checks the enum ranges and the fuel constants of the vegetation.
func (z Zone) Validate() error {
	if z.Vegetation >= vegetationCount {
		return fmt.Errorf("%w: vegetation %d", ErrInvalidZone, z.Vegetation)
	}
	if z.Terrain >= terrainCount {
		return fmt.Errorf("%w: terrain %d", ErrInvalidZone, z.Terrain)
	}
	if z.Drought >= droughtCount {
		return fmt.Errorf("%w: drought level %d", ErrInvalidZone, z.Drought)
	}
	return FuelFor(z.Vegetation).Validate()
}

func (v Vegetation) String() string {
	if v < vegetationCount {
		return vegetationNames[v]
	}
	return fmt.Sprintf("vegetation(%d)", uint8(v))
}

func (t TerrainType) String() string {
	if t < terrainCount {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}

func (d DroughtLevel) String() string {
	if d < droughtCount {
		return droughtNames[d]
	}
	return fmt.Sprintf("drought(%d)", uint8(d))
}

// ParseVegetation resolves a vegetation name such as "shrub".
func ParseVegetation(s string) (Vegetation, error) {
	i, err := parseName(s, vegetationNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: vegetation %q", ErrInvalidZone, s)
	}
	return Vegetation(i), nil
}

// ParseTerrain resolves a terrain name such as "foothills".
func ParseTerrain(s string) (TerrainType, error) {
	i, err := parseName(s, terrainNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: terrain %q", ErrInvalidZone, s)
	}
	return TerrainType(i), nil
}

// ParseDrought resolves a drought level name such as "severe".
func ParseDrought(s string) (DroughtLevel, error) {
	i, err := parseName(s, droughtNames[:])
	if err != nil {
		return 0, fmt.Errorf("%w: drought level %q", ErrInvalidZone, s)
	}
	return DroughtLevel(i), nil
}

func parseName(s string, names []string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	for i, name := range names {
		if name == key {
			return i, nil
		}
	}
	return 0, errors.New("unknown name")
}
