//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"wildfire/internal/core"
	"wildfire/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type elevationFieldProvider interface {
	ElevationField() []float64
}

type ignitionETAProvider interface {
	IgnitionETAField() []float64
}

type burnIndexFieldProvider interface {
	BurnIndexField() []uint8
}

type windVectorProvider interface {
	WindVector() (float64, float64)
}

// burnIndexPalette colors cells fire has reached by intensity: index 0 is
// untouched ground, then low, medium and high.
var burnIndexPalette = []color.RGBA{
	{},
	{R: 250, G: 220, B: 90, A: 150},
	{R: 250, G: 140, B: 40, A: 170},
	{R: 220, G: 30, B: 30, A: 190},
}

// Overlay draws optional visuals on top of the fire grid.
type Overlay struct {
	sim   core.Sim
	scale int

	showElev      bool
	showBurnIndex bool
	showETA       bool
	showWind      bool

	layerImg *ebiten.Image
	layerBuf []byte

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBurnIndex = !o.showBurnIndex
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showETA = !o.showETA
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showWind = !o.showWind
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showElev {
		if provider, ok := o.sim.(elevationFieldProvider); ok {
			o.drawField(screen, provider.ElevationField(), size, scale, elevationColor)
		}
	}
	if o.showETA {
		if provider, ok := o.sim.(ignitionETAProvider); ok {
			o.drawField(screen, provider.IgnitionETAField(), size, scale, etaColor)
		}
	}
	if o.showBurnIndex {
		if provider, ok := o.sim.(burnIndexFieldProvider); ok {
			field := provider.BurnIndexField()
			if len(field) == size.W*size.H && o.ensureLayer(size) {
				render.FillPaletteRGBA(o.layerBuf, field, size.W, size.H, burnIndexPalette)
				o.layerImg.ReplacePixels(o.layerBuf)
				render.Draw(screen, o.layerImg, scale)
			}
		}
	}
	if o.showWind {
		if provider, ok := o.sim.(windVectorProvider); ok {
			o.drawWindArrow(screen, provider, scale)
		}
	}
}

func (o *Overlay) ensureLayer(size core.Size) bool {
	total := size.W * size.H
	if total == 0 {
		return false
	}
	if o.layerImg == nil || o.layerImg.Bounds().Dx() != size.W || o.layerImg.Bounds().Dy() != size.H {
		o.layerImg = ebiten.NewImage(size.W, size.H)
		o.layerBuf = make([]byte, 4*total)
	} else if len(o.layerBuf) != 4*total {
		o.layerBuf = make([]byte, 4*total)
	}
	return true
}

func (o *Overlay) drawField(screen *ebiten.Image, field []float64, size core.Size, scale int, colorAt func(float64) color.RGBA) {
	if len(field) != size.W*size.H || !o.ensureLayer(size) {
		return
	}
	render.FillFieldRGBA(o.layerBuf, field, size.W, size.H, colorAt)
	o.layerImg.ReplacePixels(o.layerBuf)
	render.Draw(screen, o.layerImg, scale)
}

// drawWindArrow draws a single arrow in the top-left corner pointing where the
// wind pushes the fire. Grid y grows northward, screen y downward.
func (o *Overlay) drawWindArrow(screen *ebiten.Image, provider windVectorProvider, scale int) {
	const (
		headAngle = math.Pi / 6
		radius    = 28.0
	)
	vx, vy := provider.WindVector()
	strength := math.Hypot(vx, vy)
	cx, cy := radius+8, radius+8
	o.drawPoint(screen, cx, cy, 5, color.RGBA{R: 200, G: 220, B: 240, A: 200})
	if strength < 0.01 {
		return
	}
	nx, ny := vx/strength, -vy/strength
	length := radius * (0.35 + 0.65*clamp01(strength))
	tipX, tipY := cx+nx*length, cy+ny*length
	tailX, tailY := cx-nx*length*0.4, cy-ny*length*0.4
	col := interpolateColor(strength)
	thickness := math.Max(2, float64(scale)*0.6)
	o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, col)

	headLength := length * 0.35
	angle := math.Atan2(ny, nx)
	o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*headLength, tipY-math.Sin(angle+headAngle)*headLength, thickness, col)
	o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*headLength, tipY-math.Sin(angle-headAngle)*headLength, thickness, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 70*t))
	g := uint8(math.Round(170 + 70*t))
	b := uint8(math.Round(230 + 20*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// etaColor fades from hot red for imminent ignition to faint blue.
func etaColor(t float64) color.RGBA {
	return lerpRGBA(color.RGBA{R: 255, G: 60, B: 30, A: 200}, color.RGBA{R: 60, G: 90, B: 200, A: 70}, t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
