package session

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliderSnapsAndClamps(t *testing.T) {
	s := NewSlider("L1", 0, 100, 1, 23.4)
	assert.Equal(t, 23.0, s.Value())
	assert.Equal(t, 23.0, s.Initial())

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 50.6, want: 51},
		{in: -3, want: 0},
		{in: 140, want: 100},
		{in: 99.5, want: 100},
	}
	for _, tt := range tests {
		s.Set(tt.in)
		assert.Equal(t, tt.want, s.Value(), "Set(%v)", tt.in)
	}
}

func TestSliderHandlersFireOnChangeOnly(t *testing.T) {
	s := NewSlider("L1", 0, 100, 1, 10)
	var got []float64
	s.OnChanged(func(v float64) { got = append(got, v) })
	s.OnChanged(func(v float64) { got = append(got, -v) })

	assert.True(t, s.Set(20))
	assert.False(t, s.Set(20.1))
	assert.False(t, s.Set(math.NaN()))
	assert.True(t, s.Reset())
	assert.Equal(t, []float64{20, -20, 10, -10}, got)
}

func TestSliderFraction(t *testing.T) {
	s := NewSlider("L1", 0, 100, 1, 25)
	assert.Equal(t, 0.25, s.Fraction())
	s.SetFraction(0.756)
	assert.Equal(t, 76.0, s.Value())
	s.SetFraction(2)
	assert.Equal(t, 100.0, s.Value())
}

func TestSliderContinuous(t *testing.T) {
	s := NewSlider("L1", 0, 1, 0, 0.333)
	assert.Equal(t, 0.333, s.Value())
	s.Nudge(1)
	assert.InDelta(t, 0.343, s.Value(), 1e-12)
}
