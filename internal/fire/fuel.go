package fire

import (
	"errors"
	"fmt"
)

// ErrInvalidFuel reports a fuel model constant that would divide by zero or
// produce a negative rate. It signals a table bug rather than a runtime
// condition.
var ErrInvalidFuel = errors.New("fire: invalid fuel constants")

// Fuel holds the surface fuel model constants used by the spread equations.
type Fuel struct {
	// SAV is the surface-area-to-volume ratio (1/ft).
	SAV float64
	// PackingRatio is the dimensionless fuel bed packing ratio.
	PackingRatio float64
	// NetFuelLoad is the mineral-free fuel load (lb/ft^2).
	NetFuelLoad float64
	// FuelBedDepth is the depth of the fuel bed (ft).
	FuelBedDepth float64
	// MoistureOfExtinction is the moisture fraction at which fire no longer
	// spreads.
	MoistureOfExtinction float64
}

var fuels = [vegetationCount]Fuel{
	VegetationGrass: {
		SAV:                  2100,
		PackingRatio:         0.0015,
		NetFuelLoad:          0.034,
		FuelBedDepth:         1.0,
		MoistureOfExtinction: 0.15,
	},
	VegetationShrub: {
		SAV:                  1144,
		PackingRatio:         0.019,
		NetFuelLoad:          0.0459,
		FuelBedDepth:         1.185,
		MoistureOfExtinction: 0.3,
	},
	VegetationForest: {
		SAV:                  1650,
		PackingRatio:         0.03,
		NetFuelLoad:          0.1,
		FuelBedDepth:         0.5,
		MoistureOfExtinction: 0.25,
	},
	VegetationForestWithSuppression: {
		SAV:                  1500,
		PackingRatio:         0.045,
		NetFuelLoad:          0.12,
		FuelBedDepth:         0.35,
		MoistureOfExtinction: 0.25,
	},
}

// FuelFor returns the fuel constants of a vegetation type.
func FuelFor(v Vegetation) Fuel {
	if v >= vegetationCount {
		return Fuel{}
	}
	return fuels[v]
}

// Validate rejects non-positive constants.
func (f Fuel) Validate() error {
	switch {
	case f.SAV <= 0:
		return fmt.Errorf("%w: sav %g", ErrInvalidFuel, f.SAV)
	case f.PackingRatio <= 0:
		return fmt.Errorf("%w: packing ratio %g", ErrInvalidFuel, f.PackingRatio)
	case f.NetFuelLoad <= 0:
		return fmt.Errorf("%w: net fuel load %g", ErrInvalidFuel, f.NetFuelLoad)
	case f.FuelBedDepth <= 0:
		return fmt.Errorf("%w: fuel bed depth %g", ErrInvalidFuel, f.FuelBedDepth)
	case f.MoistureOfExtinction <= 0:
		return fmt.Errorf("%w: moisture of extinction %g", ErrInvalidFuel, f.MoistureOfExtinction)
	}
	return nil
}
