package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"suppression/internal/plot"
)

// Debug font cell size used by ebitenutil.
const (
	charW = 6
	lineH = 16
)

const (
	stageLineWidth = 2
	totalLineWidth = 3
	stageAlpha     = 0.3
)

var (
	figureColor = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	axesColor   = color.RGBA{0x10, 0x10, 0x10, 0xff}
	gridColor   = color.RGBA{0x44, 0x44, 0x44, 0xff}
	frameColor  = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	legendFill  = color.NRGBA{0x20, 0x20, 0x20, 0xd0}
	trackColor  = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	focusColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// tab10 is matplotlib's default color cycle.
var tab10 = []color.NRGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

// lineColor returns the cycle color of line i; the total line takes the
// slot after the last stage.
func lineColor(i int) color.NRGBA {
	return tab10[i%len(tab10)]
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a * 255)
	return c
}

// Draw renders the cached plot layer, refreshing it first when the session
// asked for a redraw, then the cursor readout and optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.layer == nil || g.dirty {
		start := time.Now()
		g.renderLayer()
		g.dirty = false
		g.lastLayerDuration = time.Since(start)
	}
	screen.DrawImage(g.layer, &ebiten.DrawImageOptions{})
	g.drawReadout(screen)

	if g.cfg.Debug {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nRecomputes: %d (%s)\nLayer: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.session.Recomputes(),
			g.session.LastDuration(), g.lastLayerDuration.Seconds()*1000)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) renderLayer() {
	if g.layer == nil {
		g.layer = ebiten.NewImage(g.cfg.Window.Width, g.cfg.Window.Height)
	}
	img := g.layer
	img.Fill(figureColor)

	ax := g.layout.Axes
	fillRect(img, ax.Frame, axesColor)
	g.drawGrid(img)

	for i, ys := range g.stageLines {
		drawCurve(img, ax, g.freqs, ys, stageLineWidth, withAlpha(lineColor(i), stageAlpha))
	}
	drawCurve(img, ax, g.freqs, g.totalLine, totalLineWidth, lineColor(len(g.stageLines)))
	strokeRect(img, ax.Frame, 1, frameColor)

	if g.showLegend {
		g.drawLegend(img)
	}
	g.drawSliders(img)
}

func (g *Game) drawGrid(img *ebiten.Image) {
	ax := g.layout.Axes
	f := ax.Frame
	for _, t := range plot.Ticks(ax.XMin, ax.XMax) {
		px, _ := ax.ToPixel(t.Value, 0)
		vector.StrokeLine(img, float32(px), float32(f.Y), float32(px), float32(f.Y+f.H), 1, gridColor, false)
		ebitenutil.DebugPrintAt(img, t.Label, int(px)-len(t.Label)*charW/2, int(f.Y+f.H)+2)
	}
	for _, t := range plot.Ticks(ax.YMin, ax.YMax) {
		_, py := ax.ToPixel(0, t.Value)
		vector.StrokeLine(img, float32(f.X), float32(py), float32(f.X+f.W), float32(py), 1, gridColor, false)
		ebitenutil.DebugPrintAt(img, t.Label, int(f.X)-len(t.Label)*charW-4, int(py)-lineH/2)
	}
	xlabel := "Frequency [Hz]"
	ebitenutil.DebugPrintAt(img, xlabel, int(f.X+f.W/2)-len(xlabel)*charW/2, int(f.Y+f.H)+2+lineH)
}

func (g *Game) drawLegend(img *ebiten.Image) {
	labels := append(append([]string(nil), g.stageLabels...), g.totalLabel)
	box, rows := plot.Legend(g.layout.Axes.Frame, labels, charW, lineH)
	fillRect(img, box, legendFill)
	strokeRect(img, box, 1, frameColor)
	for i, row := range rows {
		clr, width := withAlpha(lineColor(i), stageAlpha), float32(stageLineWidth)
		if i == len(rows)-1 {
			clr, width = lineColor(i), totalLineWidth
		}
		y := float32(row.Y + lineH/2)
		vector.StrokeLine(img, float32(row.X), y, float32(row.X+plot.LegendSampleWidth), y, width, clr, true)
		ebitenutil.DebugPrintAt(img, labels[i], int(row.X+plot.LegendTextOffset), int(row.Y))
	}
}

func (g *Game) drawSliders(img *ebiten.Image) {
	for i, st := range g.session.Stages() {
		track := g.layout.Sliders[i]
		cell := track.Cell
		bar := track.Bar()
		fillRect(img, bar, trackColor)

		fr := st.Slider.Fraction()
		top := track.YFor(fr)
		fillRect(img, plot.Rect{X: bar.X, Y: top, W: bar.W, H: cell.Y + cell.H - top}, lineColor(i))
		vector.StrokeLine(img, float32(cell.X+2), float32(top), float32(cell.X+cell.W-2), float32(top), 2, focusColor, false)
		if i == g.focus {
			strokeRect(img, cell, 1, focusColor)
		}

		label := st.Slider.Label
		ebitenutil.DebugPrintAt(img, label, int(cell.X+cell.W/2)-len(label)*charW/2, int(cell.Y)-lineH-2)
		value := strconv.FormatFloat(st.Slider.Value(), 'g', -1, 64)
		ebitenutil.DebugPrintAt(img, value, int(cell.X+cell.W/2)-len(value)*charW/2, int(cell.Y+cell.H)+2)
	}
}

// drawReadout prints the data coordinates under the cursor, like the
// matplotlib toolbar, plus the total gain at the nearest grid frequency.
func (g *Game) drawReadout(screen *ebiten.Image) {
	cx, cy := ebiten.CursorPosition()
	px, py := float64(cx), float64(cy)
	ax := g.layout.Axes
	if !ax.Frame.Contains(px, py) {
		return
	}
	x, y := ax.FromPixel(px, py)
	j := g.session.Grid().Nearest(x)
	msg := fmt.Sprintf("x=%.1f Hz  y=%.3f  %s(%g Hz)=%.3f", x, y, g.totalLabel, g.freqs[j], g.totalLine[j])
	ebitenutil.DebugPrintAt(screen, msg, 8, g.cfg.Window.Height-lineH-4)
}

func drawCurve(img *ebiten.Image, ax plot.Axes, xs, ys []float64, width float32, clr color.Color) {
	pts := ax.Polyline(xs, ys)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

func fillRect(img *ebiten.Image, r plot.Rect, clr color.Color) {
	vector.DrawFilledRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(img *ebiten.Image, r plot.Rect, width float32, clr color.Color) {
	vector.StrokeRect(img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}
