// Package plot holds the pixel geometry of the suppression window: the axes
// rectangle, data to pixel mapping, tick placement and slider tracks. It has
// no drawing code so it can be used and tested without a display.
package plot

import (
	"math"

	gonumplot "gonum.org/v1/plot"
)

// Rect is a pixel rectangle with Y growing downwards.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Figure is the window canvas in pixels.
type Figure struct {
	Width, Height float64
}

// Region converts figure fractions, measured from the bottom-left corner the
// way matplotlib places axes, into a pixel rectangle.
func (f Figure) Region(left, bottom, width, height float64) Rect {
	return Rect{
		X: left * f.Width,
		Y: (1 - bottom - height) * f.Height,
		W: width * f.Width,
		H: height * f.Height,
	}
}

// Margins returns the subplot rectangle for the given edges in figure
// fractions (left < right, bottom < top).
func (f Figure) Margins(left, right, bottom, top float64) Rect {
	return f.Region(left, bottom, right-left, top-bottom)
}

// Axes maps data coordinates into a frame.
type Axes struct {
	Frame      Rect
	XMin, XMax float64
	YMin, YMax float64
}

// ToPixel maps a data point into the frame.
func (a Axes) ToPixel(x, y float64) (float64, float64) {
	px := a.Frame.X + (x-a.XMin)/(a.XMax-a.XMin)*a.Frame.W
	py := a.Frame.Y + a.Frame.H - (y-a.YMin)/(a.YMax-a.YMin)*a.Frame.H
	return px, py
}

// FromPixel is the inverse of ToPixel.
func (a Axes) FromPixel(px, py float64) (float64, float64) {
	x := a.XMin + (px-a.Frame.X)/a.Frame.W*(a.XMax-a.XMin)
	y := a.YMin + (a.Frame.Y+a.Frame.H-py)/a.Frame.H*(a.YMax-a.YMin)
	return x, y
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Polyline maps paired data samples into pixel points. Extra samples on the
// longer side are ignored.
func (a Axes) Polyline(xs, ys []float64) []Point {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i].X, pts[i].Y = a.ToPixel(xs[i], ys[i])
	}
	return pts
}

// PadRange widens [lo, hi] by frac of its span on each side.
func PadRange(lo, hi, frac float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		span = math.Abs(lo)
		if span == 0 {
			span = 1
		}
	}
	return lo - frac*span, hi + frac*span
}

// Tick is a labelled major axis tick.
type Tick struct {
	Value float64
	Label string
}

// Ticks returns the labelled ticks gonum/plot's default tick marker places
// inside [lo, hi]. Minor ticks are dropped.
func Ticks(lo, hi float64) []Tick {
	if !(hi > lo) {
		return nil
	}
	var ticks []Tick
	for _, t := range gonumplot.DefaultTicks{}.Ticks(lo, hi) {
		if t.IsMinor() || t.Value < lo || t.Value > hi {
			continue
		}
		ticks = append(ticks, Tick{Value: t.Value, Label: t.Label})
	}
	return ticks
}
