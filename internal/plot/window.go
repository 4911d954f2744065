package plot

// Figure fractions of the suppression window.
const (
	axesLeft   = 0.06
	axesRight  = 0.95
	axesBottom = 0.45
	axesTop    = 0.9

	sliderPitch  = 0.03
	sliderWidth  = 0.03
	sliderBottom = 0.05
	sliderHeight = 0.25

	// xMargin pads the frequency axis like matplotlib's default autoscale.
	xMargin = 0.05
)

// Layout positions the axes and slider cells of the window.
type Layout struct {
	Figure  Figure
	Axes    Axes
	Sliders []Track
}

// NewLayout places the axes for the x range [xmin, xmax] (padded) and the y
// range [0, ymax], and stacks one slider cell per stage against the right
// edge of the axes.
func NewLayout(fig Figure, stages int, xmin, xmax, ymax float64) Layout {
	lo, hi := PadRange(xmin, xmax, xMargin)
	l := Layout{
		Figure: fig,
		Axes: Axes{
			Frame: fig.Margins(axesLeft, axesRight, axesBottom, axesTop),
			XMin:  lo,
			XMax:  hi,
			YMin:  0,
			YMax:  ymax,
		},
	}
	for i := 0; i < stages; i++ {
		left := axesRight - float64(stages-i)*sliderPitch
		l.Sliders = append(l.Sliders, Track{Cell: fig.Region(left, sliderBottom, sliderWidth, sliderHeight)})
	}
	return l
}

// SliderAt returns the index of the slider cell under the point, or -1.
func (l Layout) SliderAt(px, py float64) int {
	for i, t := range l.Sliders {
		if t.Cell.Contains(px, py) {
			return i
		}
	}
	return -1
}

// Track is the pixel cell of one vertical slider. The value runs from the
// bottom of the cell (0) to the top (1).
type Track struct {
	Cell Rect
}

// Bar returns the narrow bar drawn in the middle of the cell.
func (t Track) Bar() Rect {
	w := t.Cell.W / 3
	return Rect{X: t.Cell.X + (t.Cell.W-w)/2, Y: t.Cell.Y, W: w, H: t.Cell.H}
}

// FractionAt converts a vertical pixel position into a fraction of the range,
// clamped to [0, 1].
func (t Track) FractionAt(py float64) float64 {
	if t.Cell.H <= 0 {
		return 0
	}
	fr := (t.Cell.Y + t.Cell.H - py) / t.Cell.H
	if fr < 0 {
		return 0
	}
	if fr > 1 {
		return 1
	}
	return fr
}

// YFor returns the vertical pixel position of fraction fr.
func (t Track) YFor(fr float64) float64 {
	return t.Cell.Y + t.Cell.H - fr*t.Cell.H
}

// Legend computes the box for labels anchored to the upper-right corner of
// frame, for a fixed-width font of charW by lineH pixels. Each returned
// point is the top-left corner of a row.
func Legend(frame Rect, labels []string, charW, lineH float64) (Rect, []Point) {
	const pad = 6.0
	widest := 0
	for _, s := range labels {
		if len(s) > widest {
			widest = len(s)
		}
	}
	w := pad + LegendTextOffset + float64(widest)*charW + pad
	h := pad + float64(len(labels))*lineH + pad
	box := Rect{X: frame.X + frame.W - w - pad, Y: frame.Y + pad, W: w, H: h}
	rows := make([]Point, len(labels))
	for i := range labels {
		rows[i] = Point{X: box.X + pad, Y: box.Y + pad + float64(i)*lineH}
	}
	return box, rows
}

// LegendSampleWidth is the length of the line sample drawn before a label.
const LegendSampleWidth = 24.0

// LegendTextOffset is the distance from a row origin to its label text.
const LegendTextOffset = LegendSampleWidth + 6.0
