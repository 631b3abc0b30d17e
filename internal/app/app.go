//go:build ebiten

package app

import (
	"log"
	"time"

	"lifegrid/internal/edit"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minPanelHeight keeps the HUD readable on very small grids.
const minPanelHeight = 360

var stampKeys = []struct {
	key     ebiten.Key
	pattern string
}{
	{ebiten.KeyDigit1, "glider"},
	{ebiten.KeyDigit2, "lwss"},
	{ebiten.KeyDigit3, "rpentomino"},
	{ebiten.KeyDigit4, "acorn"},
	{ebiten.KeyDigit5, "gosper"},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	layout  render.Layout
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	panelWidth int
	pointer    edit.Snapshot
}

// New constructs a Game for the provided session.
func New(sess *session.Session, cfg *Config) *Game {
	size := sess.Sim().Size()
	layout := render.Layout{Cols: size.W, Rows: size.H, Cell: cfg.CellSize, Gap: cfg.Gap}
	g := &Game{
		sess:       sess,
		layout:     layout,
		painter:    render.NewGridPainter(layout, render.DefaultPalette()),
		overlay:    ui.NewOverlay(layout),
		panelWidth: cfg.PanelWidth,
		pointer:    edit.Snapshot{X: -1, Y: -1},
	}
	if g.panelWidth > 0 {
		_, h := g.Layout(0, 0)
		g.hud = ui.NewHUD(sess, g.panelWidth, h)
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sess.SetInterval(g.sess.Interval() + 5*time.Millisecond)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sess.SetInterval(g.sess.Interval() - 5*time.Millisecond)
	}

	mx, my := ebiten.CursorPosition()
	cx, cy, inside := g.layout.CellAt(mx, my)
	if !inside {
		cx, cy = -1, -1
	}
	if inside {
		for _, sk := range stampKeys {
			if inpututil.IsKeyJustPressed(sk.key) {
				if err := g.sess.Stamp(sk.pattern, cx, cy); err != nil {
					log.Printf("stamp %s: %v", sk.pattern, err)
				}
			}
		}
	}

	cur := edit.Snapshot{
		X:         cx,
		Y:         cy,
		Primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
	for _, ev := range edit.Diff(g.pointer, cur) {
		g.sess.Pointer(ev)
	}
	g.pointer = cur

	g.overlay.Update(cx, cy, inside)
	gridW, _ := g.layout.Bounds()
	g.hud.Update(gridW)

	g.sess.Advance(time.Now())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Sim().Cells())
	g.overlay.Draw(screen)
	gridW, _ := g.layout.Bounds()
	g.hud.Draw(screen, gridW)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.layout.Bounds()
	if g.panelWidth > 0 && h < minPanelHeight {
		h = minPanelHeight
	}
	return w + g.panelWidth, h
}
