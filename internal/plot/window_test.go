package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayoutDefaultWindow(t *testing.T) {
	l := NewLayout(Figure{Width: 1200, Height: 600}, 3, 10, 1000, 1.2)

	assert.InDelta(t, -39.5, l.Axes.XMin, 1e-9)
	assert.InDelta(t, 1049.5, l.Axes.XMax, 1e-9)
	assert.Equal(t, 0.0, l.Axes.YMin)
	assert.Equal(t, 1.2, l.Axes.YMax)

	require.Len(t, l.Sliders, 3)
	wantX := []float64{1032, 1068, 1104}
	for i, tr := range l.Sliders {
		assert.InDelta(t, wantX[i], tr.Cell.X, 1e-9, "slider %d", i)
		assert.InDelta(t, 420, tr.Cell.Y, 1e-9)
		assert.InDelta(t, 36, tr.Cell.W, 1e-9)
		assert.InDelta(t, 150, tr.Cell.H, 1e-9)
	}
	// The last slider ends at the right edge of the axes.
	last := l.Sliders[2].Cell
	assert.InDelta(t, l.Axes.Frame.X+l.Axes.Frame.W, last.X+last.W, 1e-9)
}

func TestSliderAt(t *testing.T) {
	l := NewLayout(Figure{Width: 1200, Height: 600}, 3, 10, 1000, 1.2)
	assert.Equal(t, 0, l.SliderAt(1040, 500))
	assert.Equal(t, 2, l.SliderAt(1120, 421))
	assert.Equal(t, -1, l.SliderAt(1040, 100))
	assert.Equal(t, -1, l.SliderAt(500, 500))
}

func TestTrackFraction(t *testing.T) {
	tr := Track{Cell: Rect{X: 0, Y: 420, W: 36, H: 150}}
	assert.Equal(t, 0.0, tr.FractionAt(570))
	assert.Equal(t, 1.0, tr.FractionAt(420))
	assert.InDelta(t, 0.5, tr.FractionAt(495), 1e-12)
	assert.Equal(t, 0.0, tr.FractionAt(900))
	assert.Equal(t, 1.0, tr.FractionAt(0))
	assert.InDelta(t, 495, tr.YFor(0.5), 1e-12)

	bar := tr.Bar()
	assert.InDelta(t, 12, bar.W, 1e-12)
	assert.InDelta(t, 12, bar.X, 1e-12)
}

func TestLegendAnchorsUpperRight(t *testing.T) {
	frame := Rect{X: 72, Y: 60, W: 1068, H: 270}
	labels := []string{"Stage-1", "Stage-2", "Stage-3", "Total"}
	box, rows := Legend(frame, labels, 6, 16)

	require.Len(t, rows, 4)
	assert.InDelta(t, frame.X+frame.W-6, box.X+box.W, 1e-9)
	assert.InDelta(t, frame.Y+6, box.Y, 1e-9)
	assert.InDelta(t, 6+LegendTextOffset+7*6+6, box.W, 1e-9)
	assert.InDelta(t, 6+4*16+6, box.H, 1e-9)
	for i := 1; i < len(rows); i++ {
		assert.InDelta(t, 16, rows[i].Y-rows[i-1].Y, 1e-9)
		assert.Equal(t, rows[0].X, rows[i].X)
	}
	assert.True(t, frame.Contains(box.X, box.Y))
}
