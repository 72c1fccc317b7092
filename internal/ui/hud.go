//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"wildfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	rowHeight    = 30
	textRow      = 16
	sectionGap   = 14
	buttonSize   = 22
	buttonGap    = 6
	barHeight    = 8
)

var (
	panelBG     = color.RGBA{R: 22, G: 18, B: 16, A: 255}
	headingCol  = color.RGBA{R: 235, G: 160, B: 80, A: 255}
	labelCol    = color.RGBA{R: 210, G: 205, B: 200, A: 255}
	dimCol      = color.RGBA{R: 130, G: 125, B: 120, A: 255}
	alertCol    = color.RGBA{R: 250, G: 90, B: 60, A: 255}
	barTrackCol = color.RGBA{R: 50, G: 42, B: 38, A: 255}
	barFillCol  = color.RGBA{R: 220, G: 90, B: 30, A: 255}
	buttonCol   = color.RGBA{R: 64, G: 52, B: 46, A: 255}
	buttonOff   = color.RGBA{R: 36, G: 30, B: 28, A: 255}
)

type snapshotProvider interface {
	Parameters() core.ParameterSnapshot
}

// knob is one adjustable weather or clock control with its two buttons.
type knob struct {
	control  core.ParameterControl
	value    float64
	known    bool
	top      int
	dec, inc image.Rectangle
}

// HUD is the side panel: wind and clock knobs on top, then the fire status
// and a burned-per-zone chart read from the simulation snapshot.
type HUD struct {
	sim    core.Sim
	setter core.FloatParameterSetter
	width  int

	knobs    []knob
	snapshot core.ParameterSnapshot
	offsetX  int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.setter, _ = sim.(core.FloatParameterSetter)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		top := panelPadding + textRow + sectionGap
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Type != core.ParamTypeFloat {
				continue
			}
			y := top + (rowHeight-buttonSize)/2
			inc := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
			dec := inc.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.knobs = append(h.knobs, knob{control: ctrl, top: top, dec: dec, inc: inc})
			top += rowHeight
		}
	}
	return h
}

// Update refreshes the snapshot and applies knob clicks. panelOffsetX is the
// screen x of the panel's left edge.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	if provider, ok := h.sim.(snapshotProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.knobs {
		k := &h.knobs[i]
		k.value, k.known = readControl(h.snapshot, k.control)
	}
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.knobs {
		k := &h.knobs[i]
		direction := 0
		switch {
		case p.In(k.dec):
			direction = -1
		case p.In(k.inc):
			direction = 1
		default:
			continue
		}
		if !k.known {
			return
		}
		if target, ok := stepFloat(k.control, k.value, direction); ok && h.setter.SetFloatParameter(k.control.Key, target) {
			k.value = target
		}
		return
	}
}

// Draw paints the panel at offsetX, as tall as the scaled grid.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, panelPadding+textRow-4, headingCol)
	y := h.drawKnobs()
	y = h.drawStatus(y + sectionGap)
	h.drawBurned(y + sectionGap)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawKnobs() int {
	face := basicfont.Face7x13
	bottom := panelPadding + textRow + sectionGap
	for _, k := range h.knobs {
		baseline := k.top + rowHeight/2 + 4
		text.Draw(h.panel, k.control.Label, face, panelPadding, baseline, labelCol)
		value, col := "--", dimCol
		if k.known {
			value, col = controlText(k.control, k.value), labelCol
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, k.dec.Min.X-buttonGap-w, baseline, col)
		_, canDec := stepFloat(k.control, k.value, -1)
		_, canInc := stepFloat(k.control, k.value, 1)
		h.drawButton(k.dec, "-", k.known && h.setter != nil && canDec)
		h.drawButton(k.inc, "+", k.known && h.setter != nil && canInc)
		bottom = k.top + rowHeight
	}
	return bottom
}

func (h *HUD) drawStatus(top int) int {
	lines := fireStatus(h.snapshot)
	if len(lines) == 0 {
		return top
	}
	face := basicfont.Face7x13
	y := top + textRow
	text.Draw(h.panel, "Fire", face, panelPadding, y, headingCol)
	for _, line := range lines {
		y += textRow
		col := labelCol
		if line.alert {
			col = alertCol
		}
		text.Draw(h.panel, line.label, face, panelPadding+8, y, col)
		w := text.BoundString(face, line.value).Dx()
		text.Draw(h.panel, line.value, face, h.width-panelPadding-w, y, col)
	}
	return y
}

func (h *HUD) drawBurned(top int) {
	bars := burnedBars(h.snapshot)
	if len(bars) == 0 {
		return
	}
	face := basicfont.Face7x13
	y := top + textRow
	text.Draw(h.panel, "Burned by zone", face, panelPadding, y, headingCol)
	track := h.width - 2*panelPadding - 8
	for _, bar := range bars {
		if y+textRow+barHeight > h.panel.Bounds().Dy()-panelPadding {
			return
		}
		y += textRow
		text.Draw(h.panel, bar.label, face, panelPadding+8, y, labelCol)
		count := fmt.Sprint(bar.count)
		w := text.BoundString(face, count).Dx()
		text.Draw(h.panel, count, face, h.width-panelPadding-w, y, labelCol)
		y += 4
		h.fillRect(image.Rect(panelPadding+8, y, panelPadding+8+track, y+barHeight), barTrackCol)
		if fill := int(bar.frac * float64(track)); fill > 0 {
			h.fillRect(image.Rect(panelPadding+8, y, panelPadding+8+fill, y+barHeight), barFillCol)
		}
		y += barHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonCol, labelCol
	if !enabled {
		bg, fg = buttonOff, dimCol
	}
	h.fillRect(rect, bg)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}
