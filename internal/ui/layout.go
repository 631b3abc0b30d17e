package ui

import "image"

const (
	panelPadding   = 12
	lineHeight     = 20
	buttonHeight   = 24
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
)

// panelLayout holds the HUD hit boxes, relative to the panel's top-left.
type panelLayout struct {
	startStop image.Rectangle
	step      image.Rectangle
	clear     image.Rectangle

	controlsTop int
	minus       []image.Rectangle
	plus        []image.Rectangle

	paramsTop int
}

// layoutPanel positions the command buttons in a row under the title, one
// -/+ pair per control below them, and the parameter listing after that.
func layoutPanel(width, controls int) panelLayout {
	var l panelLayout
	top := panelPadding + headerBaseline + 10
	inner := width - 2*panelPadding
	btnW := (inner - 2*buttonGap) / 3
	if btnW < buttonSize {
		btnW = buttonSize
	}
	x := panelPadding
	l.startStop = image.Rect(x, top, x+btnW, top+buttonHeight)
	x += btnW + buttonGap
	l.step = image.Rect(x, top, x+btnW, top+buttonHeight)
	x += btnW + buttonGap
	l.clear = image.Rect(x, top, x+btnW, top+buttonHeight)

	l.controlsTop = top + buttonHeight + 16
	for i := 0; i < controls; i++ {
		rowTop := l.controlsTop + i*(buttonSize+buttonGap)
		plus := image.Rect(width-panelPadding-buttonSize, rowTop, width-panelPadding, rowTop+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, rowTop, plus.Min.X-buttonGap, rowTop+buttonSize)
		l.minus = append(l.minus, minus)
		l.plus = append(l.plus, plus)
	}
	l.paramsTop = l.controlsTop + controls*(buttonSize+buttonGap) + 10
	return l
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
