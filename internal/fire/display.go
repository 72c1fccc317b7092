package fire

import "image/color"

// Display values pack a cell into a palette index.
//
//	bits 0-1  vegetation
//	bits 2-3  fire state
//	bits 4-5  burn index
//	bit  6    fire survivor
//	bit  7    marker; bits 0-2 then hold the marker kind instead
const (
	displayVegetationMask = 0x03
	displayStateShift     = 2
	displayStateMask      = 0x0c
	displayBurnShift      = 4
	displayBurnMask       = 0x30
	displaySurvivorBit    = 0x40
	displayMarkerBit      = 0x80
	displayMarkerMask     = 0x07
)

type marker uint8

const (
	markerNone marker = iota
	markerRiver
	markerFireLine
	markerFireLineUnderConstruction
	markerUnburntIsland
)

var firePalette = buildFirePalette()

// Palette exposes the color palette used for rendering the fire grid.
func (s *Simulation) Palette() []color.RGBA {
	return firePalette
}

func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		v := uint8(i)
		if v&displayMarkerBit != 0 {
			palette[i] = toRGBA(markerColor(marker(v & displayMarkerMask)))
			continue
		}
		veg := Vegetation(v & displayVegetationMask)
		state := FireState((v & displayStateMask) >> displayStateShift)
		bi := BurnIndex((v & displayBurnMask) >> displayBurnShift)
		survivor := v&displaySurvivorBit != 0
		palette[i] = toRGBA(paletteColorFor(veg, state, bi, survivor))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(veg Vegetation, state FireState, bi BurnIndex, survivor bool) color.NRGBA {
	switch state {
	case Burning:
		switch bi {
		case BurnIndexHigh:
			return color.NRGBA{R: 230, G: 40, B: 20, A: 255}
		case BurnIndexMedium:
			return color.NRGBA{R: 255, G: 130, B: 40, A: 255}
		default:
			return color.NRGBA{R: 255, G: 190, B: 60, A: 255}
		}
	case Burnt:
		base := color.NRGBA{R: 40, G: 36, B: 34, A: 255}
		if survivor {
			return blendColors(base, vegetationColor(veg), 0.45)
		}
		return base
	default:
		return vegetationColor(veg)
	}
}

func vegetationColor(veg Vegetation) color.NRGBA {
	switch veg {
	case VegetationGrass:
		return color.NRGBA{R: 170, G: 175, B: 90, A: 255}
	case VegetationShrub:
		return color.NRGBA{R: 110, G: 140, B: 70, A: 255}
	case VegetationForest:
		return color.NRGBA{R: 50, G: 110, B: 55, A: 255}
	case VegetationForestWithSuppression:
		return color.NRGBA{R: 35, G: 80, B: 50, A: 255}
	default:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
}

func markerColor(m marker) color.NRGBA {
	switch m {
	case markerRiver:
		return color.NRGBA{R: 64, G: 164, B: 223, A: 255}
	case markerFireLine:
		return color.NRGBA{R: 140, G: 90, B: 50, A: 255}
	case markerFireLineUnderConstruction:
		return color.NRGBA{R: 230, G: 200, B: 60, A: 255}
	case markerUnburntIsland:
		return color.NRGBA{R: 25, G: 60, B: 35, A: 255}
	default:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// encodeDisplayValue picks the palette index for a cell. Markers win over
// unburnt vegetation; once fire reaches a cell its fire state is shown.
func encodeDisplayValue(c *Cell, bi BurnIndex) uint8 {
	if c.State == Unburnt {
		switch {
		case c.IsRiver:
			return displayMarkerBit | uint8(markerRiver)
		case c.IsFireLine:
			return displayMarkerBit | uint8(markerFireLine)
		case c.IsFireLineUnderConstruction:
			return displayMarkerBit | uint8(markerFireLineUnderConstruction)
		case c.IsUnburntIsland:
			return displayMarkerBit | uint8(markerUnburntIsland)
		}
	}
	var veg Vegetation
	if c.Zone != nil {
		veg = c.Zone.Vegetation
	}
	value := uint8(veg) & displayVegetationMask
	value |= (uint8(c.State) << displayStateShift) & displayStateMask
	value |= (uint8(bi) << displayBurnShift) & displayBurnMask
	if c.IsFireSurvivor {
		value |= displaySurvivorBit
	}
	return value
}

func (s *Simulation) rebuildDisplay() {
	if s.engine == nil {
		return
	}
	cells := s.engine.Cells()
	if len(s.display) != len(cells) {
		s.display = make([]uint8, len(cells))
	}
	for i := range cells {
		s.display[i] = encodeDisplayValue(&cells[i], s.engine.BurnIndex(i))
	}
}
