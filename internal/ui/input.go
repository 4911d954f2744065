package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	repeatDelay    = 30
	repeatInterval = 4
	pageSteps      = 10
)

// handlePointer lets the left button grab a slider and drag it.
func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	px, py := float64(x), float64(y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = g.layout.SliderAt(px, py)
		if g.dragging >= 0 {
			g.setFocus(g.dragging)
		}
	}
	if g.dragging < 0 {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = -1
		return
	}
	track := g.layout.Sliders[g.dragging]
	g.session.Stages()[g.dragging].Slider.SetFraction(track.FractionAt(py))
}

// handleKeys processes slider focus, nudging and reset hotkeys.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		n := len(g.session.Stages())
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.setFocus((g.focus + n - 1) % n)
		} else {
			g.setFocus((g.focus + 1) % n)
		}
	}
	switch {
	case repeating(ebiten.KeyArrowUp):
		g.session.Nudge(g.focus, 1)
	case repeating(ebiten.KeyArrowDown):
		g.session.Nudge(g.focus, -1)
	case repeating(ebiten.KeyPageUp):
		g.session.Nudge(g.focus, pageSteps)
	case repeating(ebiten.KeyPageDown):
		g.session.Nudge(g.focus, -pageSteps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.ResetAll()
	}
}

func (g *Game) setFocus(i int) {
	if i == g.focus {
		return
	}
	g.focus = i
	g.dirty = true
}

// repeating reports a key press on its first tick and then at a steady rate
// while it is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
