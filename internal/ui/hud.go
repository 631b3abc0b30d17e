//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Controller is the command surface the HUD drives.
type Controller interface {
	core.ParameterProvider
	core.IntParameterSetter
	Running() bool
	Toggle() bool
	StepOnce()
	Clear()
}

// HUD renders the control panel to the right of the grid.
type HUD struct {
	ctrl     Controller
	width    int
	height   int
	panel    *ebiten.Image
	layout   panelLayout
	controls []core.ParameterControl
	snapshot core.ParameterSnapshot

	panelOffsetX int
}

// NewHUD constructs a HUD for the provided controller and panel size.
func NewHUD(ctrl Controller, width, height int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctrl: ctrl, width: width, height: height}
	h.controls = ctrl.ParameterControls()
	h.layout = layoutPanel(width, len(h.controls))
	return h
}

// Update refreshes the cached parameter snapshot and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.ctrl.Parameters()
	h.handleInput()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.layout.startStop):
		h.ctrl.Toggle()
		return
	case pointInRect(px, my, h.layout.step):
		h.ctrl.StepOnce()
		return
	case pointInRect(px, my, h.layout.clear):
		h.ctrl.Clear()
		return
	}
	for i, ctrl := range h.controls {
		if pointInRect(px, my, h.layout.minus[i]) {
			h.adjust(ctrl, -1)
			return
		}
		if pointInRect(px, my, h.layout.plus[i]) {
			h.adjust(ctrl, 1)
			return
		}
	}
}

func (h *HUD) adjust(ctrl core.ParameterControl, direction int) {
	current, ok := h.intValue(ctrl.Key)
	if !ok {
		return
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := ctrl.Clamp(current + direction*step)
	if target == current {
		return
	}
	h.ctrl.SetIntParameter(ctrl.Key, target)
}

func (h *HUD) intValue(key string) (int, bool) {
	p, ok := h.snapshot.Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	label := "Start!"
	if h.ctrl.Running() {
		label = "Stop!"
	}
	h.drawButton(h.layout.startStop, label, true)
	h.drawButton(h.layout.step, "Step", !h.ctrl.Running())
	h.drawButton(h.layout.clear, "Clear", true)

	textColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	for i, ctrl := range h.controls {
		top := h.layout.minus[i].Min.Y
		value, ok := h.intValue(ctrl.Key)
		valueText := "--"
		if ok {
			valueText = strconv.Itoa(value)
		}
		text.Draw(h.panel, ctrl.Label, face, panelPadding, top+17, textColor)
		bounds := text.BoundString(face, valueText)
		text.Draw(h.panel, valueText, face, h.layout.minus[i].Min.X-buttonGap-bounds.Dx(), top+17, textColor)
		h.drawButton(h.layout.minus[i], "-", ok && ctrl.Clamp(value-ctrl.Step) != value)
		h.drawButton(h.layout.plus[i], "+", ok && ctrl.Clamp(value+ctrl.Step) != value)
	}

	y := h.layout.paramsTop
	for _, group := range h.snapshot.Groups {
		y += lineHeight
		text.Draw(h.panel, group.Name, face, panelPadding, y, dimColor)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, textColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, textColor)
		}
		y += lineHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
