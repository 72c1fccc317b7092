//go:build ebiten

package app

import (
	"image/color"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

var (
	binaryPalette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	markerColor   = color.RGBA{R: 240, G: 240, B: 60, A: 255}
)

// fireLineBuilder is implemented by sims that let the player dig firelines
// between two cells.
type fireLineBuilder interface {
	BuildFireLine(from, to core.Point) int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	marker    core.Point
	hasMarker bool
	pixel     *ebiten.Image
}

// New constructs a Game for the provided simulation, stepping it tps times a
// second.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	palette := binaryPalette
	if provider, ok := sim.(core.PaletteProvider); ok {
		palette = provider.Palette()
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		stepper: core.NewFixedStep(tps),
		palette: palette,
		scale:   scale,
		seed:    seed,
		pixel:   pixel,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.hasMarker = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.hasMarker = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.placeMarker(ebiten.CursorPosition())
	}

	g.overlay.Update()
	g.hud.Update(g.gridWidth())

	step := g.stepper.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// placeMarker drops the first end of a fireline, or digs the line when one is
// already placed.
func (g *Game) placeMarker(px, py int) {
	builder, ok := g.sim.(fireLineBuilder)
	if !ok {
		return
	}
	size := g.sim.Size()
	x, y, inside := render.CellAt(px, py, size.W, size.H, g.scale)
	if !inside {
		return
	}
	p := core.Point{X: x, Y: y}
	if !g.hasMarker {
		g.marker = p
		g.hasMarker = true
		return
	}
	builder.BuildFireLine(g.marker, p)
	g.hasMarker = false
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	if g.hasMarker {
		g.drawMarker(screen)
	}
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

func (g *Game) drawMarker(screen *ebiten.Image) {
	size := g.sim.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	op.GeoM.Translate(float64(g.marker.X*g.scale), float64((size.H-1-g.marker.Y)*g.scale))
	op.ColorM.Scale(float64(markerColor.R)/255.0, float64(markerColor.G)/255.0, float64(markerColor.B)/255.0, float64(markerColor.A)/255.0)
	screen.DrawImage(g.pixel, op)
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
