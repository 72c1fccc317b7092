package render

import (
	"image/color"
	"math"
)

// pixelOffset maps a cell index onto its byte offset in an RGBA buffer. Grid
// row 0 is the southern edge, so it lands on the bottom image row.
func pixelOffset(i, w, h int) int {
	x, y := i%w, i/w
	return ((h-1-y)*w + x) * 4
}

// FillPaletteRGBA converts palette indices into RGBA pixels in buf. Values past
// the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, w, h int, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf)
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := pixelOffset(i, w, h)
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillFieldRGBA maps a scalar field onto colors. Finite values are normalised
// across the field's finite range and passed to colorAt; other values are left
// transparent. It returns the range used.
func FillFieldRGBA(buf []byte, field []float64, w, h int, colorAt func(t float64) color.RGBA) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range field {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for i, v := range field {
		base := pixelOffset(i, w, h)
		if math.IsInf(v, 0) || math.IsNaN(v) {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := colorAt((v - lo) / span)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return lo, hi
}

// CellAt converts a screen position into grid coordinates for a view drawn at
// scale. It reports false outside the grid.
func CellAt(px, py, w, h, scale int) (int, int, bool) {
	if scale <= 0 {
		scale = 1
	}
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x := px / scale
	row := py / scale
	if x >= w || row >= h {
		return 0, 0, false
	}
	return x, h - 1 - row, true
}
