package fire

import "math"

const (
	heatContent             = 8000   // BTU/lb
	totalMineralContent     = 0.0555 // fraction
	effectiveMineralContent = 0.01   // fraction
	mphToFtPerMin           = 88
)

// Wind describes the ambient wind. Direction is in degrees and names where
// the wind blows from: 0 is a north wind pushing fire south, 90 an east wind.
type Wind struct {
	Speed     float64 // mph
	Direction float64 // degrees
}

// SpreadRate returns the rate of spread (ft/min) from a burning source cell
// towards an adjacent target cell using a modified Rothermel surface fire
// model. Fuel and moisture come from the target; slope from the elevation
// difference; wind and slope are combined as vectors and the resulting
// maximum rate is attenuated by the elliptical direction factor.
//
// Fuel constants are validated when the engine is built, so the function
// assumes they are positive.
func SpreadRate(source, target *Cell, wind Wind, cellSize float64) float64 {
	fuel := FuelFor(target.Zone.Vegetation)
	moisture := target.Zone.MoistureContent()

	if moisture >= fuel.MoistureOfExtinction {
		return 0
	}

	sav := fuel.SAV
	beta := fuel.PackingRatio
	sav15 := math.Pow(sav, 1.5)

	maxReactionVelocity := sav15 / (495 + 0.0594*sav15)
	optimumPackingRatio := 3.348 * math.Pow(sav, -0.8189)
	relativePacking := beta / optimumPackingRatio
	a := 133 * math.Pow(sav, -0.7913)
	optimumReactionVelocity := maxReactionVelocity * math.Pow(relativePacking, a) * math.Exp(a*(1-relativePacking))

	moistureRatio := moisture / fuel.MoistureOfExtinction
	moistureDamping := 1 - 2.59*moistureRatio + 5.11*moistureRatio*moistureRatio - 3.52*moistureRatio*moistureRatio*moistureRatio
	mineralDamping := 0.174 * math.Pow(effectiveMineralContent, -0.19)

	reactionIntensity := optimumReactionVelocity * fuel.NetFuelLoad * heatContent * moistureDamping * mineralDamping
	propagatingFluxRatio := math.Exp((0.792+0.681*math.Sqrt(sav))*(beta+0.1)) / (192 + 0.2595*sav)
	ovenDryLoad := fuel.NetFuelLoad * (1 + totalMineralContent)
	bulkDensity := ovenDryLoad / fuel.FuelBedDepth
	effectiveHeatingNumber := math.Exp(-138 / sav)
	heatOfPreignition := 250 + 1116*moisture

	r0 := reactionIntensity * propagatingFluxRatio / (bulkDensity * effectiveHeatingNumber * heatOfPreignition)
	if r0 <= 0 {
		return 0
	}

	dx := float64(target.X - source.X)
	dy := float64(target.Y - source.Y)
	gridDist := math.Hypot(dx, dy)
	if gridDist == 0 {
		return r0
	}
	slope := (target.Elevation - source.Elevation) / (gridDist * cellSize)

	c := 7.47 * math.Exp(-0.133*math.Pow(sav, 0.55))
	b := 0.02526 * math.Pow(sav, 0.54)
	e := 0.715 * math.Exp(-3.59e-4*sav)
	windCoefficient := c * math.Pow(relativePacking, -e)

	windSpeed := wind.Speed * mphToFtPerMin
	windFactor := 0.0
	if windSpeed > 0 {
		windFactor = windCoefficient * math.Pow(windSpeed, b)
	}
	slopeFactor := 5.275 * math.Pow(beta, -0.3) * slope * slope

	// A north wind pushes along -y; other directions rotate that vector.
	theta := -wind.Direction * math.Pi / 180
	windX, windY := math.Sin(theta), -math.Cos(theta)
	upX, upY := dx/gridDist, dy/gridDist
	if slope < 0 {
		upX, upY = -upX, -upY
	}
	maxX := r0 * (windFactor*windX + slopeFactor*upX)
	maxY := r0 * (windFactor*windY + slopeFactor*upY)
	magnitude := math.Hypot(maxX, maxY)
	rh := r0 + magnitude
	if magnitude == 0 {
		return rh
	}

	effectiveWind := math.Pow((rh/r0-1)/windCoefficient, 1/b)
	angle := math.Atan2(dy, dx) - math.Atan2(maxY, maxX)
	return rh * DirectionFactor(angle, Eccentricity(effectiveWind/mphToFtPerMin))
}

// Eccentricity returns the eccentricity of the elliptical fire shape for an
// effective mid-flame wind speed in mph.
func Eccentricity(effectiveWindMph float64) float64 {
	if effectiveWindMph <= 0 {
		return 0
	}
	lw := 1 + 0.25*effectiveWindMph
	return math.Sqrt(lw*lw-1) / lw
}

// DirectionFactor scales the head fire rate for spread at angle radians away
// from the maximum spread direction. It is 1 when aligned and falls off
// symmetrically to (1-e)/(1+e) for backing spread.
func DirectionFactor(angle, eccentricity float64) float64 {
	return (1 - eccentricity) / (1 - eccentricity*math.Cos(angle))
}
