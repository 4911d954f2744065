package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMagnitudeRange(t *testing.T) {
	for f := 1.0; f <= 2000; f += 7 {
		for l := 0.0; l <= 3; l += 0.013 {
			m := SumMagnitude(f, l)
			require.GreaterOrEqual(t, m, 0.0, "f=%v l=%v", f, l)
			require.LessOrEqual(t, m, 1.0, "f=%v l=%v", f, l)
			require.False(t, math.IsNaN(m), "f=%v l=%v", f, l)
		}
	}
}

func TestSumMagnitudeZeroLengthIsUnity(t *testing.T) {
	for _, f := range []float64{0.5, 10, 100, 440, 1000, 20000} {
		assert.Equal(t, 1.0, SumMagnitude(f, 0), "f=%v", f)
	}
}

func TestSumMagnitudePeriodicInLength(t *testing.T) {
	for _, f := range []float64{10, 100, 250, 1000} {
		period := Default.Period(f)
		assert.InDelta(t, SpeedOfSound/(2*f), period, 1e-12)
		for _, l := range []float64{0, 0.1, 0.23, 0.46, 0.9} {
			assert.InDelta(t, SumMagnitude(f, l), SumMagnitude(f, l+period), 1e-9, "f=%v l=%v", f, l)
		}
	}
}

func TestSumMagnitudeNotchAndPeak(t *testing.T) {
	tests := []struct {
		name string
		f, l float64
		want float64
		tol  float64
	}{
		{name: "notch", f: 100, l: 0.865, want: 0, tol: 0.02},
		{name: "exact notch", f: 100, l: SpeedOfSound / 400, want: 0, tol: 1e-7},
		{name: "peak", f: 100, l: 1.715, want: 1, tol: 1e-9},
		{name: "half way", f: 100, l: SpeedOfSound / 800, want: math.Sqrt2 / 2, tol: 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SumMagnitude(tt.f, tt.l), tt.tol)
		})
	}
}

func TestPhaseDifferenceMatchesClosedForm(t *testing.T) {
	f, l := 100.0, 0.865
	want := 4 * math.Pi * f * l / SpeedOfSound
	assert.InDelta(t, want, Default.PhaseDifference(f, l), 1e-12)
	assert.InDelta(t, math.Pi, Default.PhaseDifference(f, l), 0.03)
}

func TestSumMagnitudePanicsOnInvalidFrequency(t *testing.T) {
	assert.Panics(t, func() { SumMagnitude(0, 1) })
	assert.Panics(t, func() { SumMagnitude(-5, 1) })
	assert.Panics(t, func() { SumMagnitude(math.NaN(), 1) })
	assert.Panics(t, func() { SumMagnitude(100, math.Inf(1)) })
}

func TestNewRejectsBadSpeed(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
	_, err = New(math.Inf(1))
	assert.Error(t, err)

	m, err := New(1480)
	require.NoError(t, err)
	assert.Equal(t, 1480.0, m.SpeedOfSound)
}

func TestNotchFrequency(t *testing.T) {
	_, ok := Default.NotchFrequency(0, 0)
	assert.False(t, ok)

	f0, ok := Default.NotchFrequency(0.865, 0)
	require.True(t, ok)
	assert.InDelta(t, 99.13, f0, 0.01)
	assert.InDelta(t, 0, SumMagnitude(f0, 0.865), 1e-7)

	f1, ok := Default.NotchFrequency(0.865, 1)
	require.True(t, ok)
	assert.InDelta(t, 3*f0, f1, 1e-9)
}

func TestDelaySamples(t *testing.T) {
	assert.Equal(t, 0, Default.DelaySamples(0, 48000))
	assert.Equal(t, 0, Default.DelaySamples(1, 0))
	// 2 * 0.343 / 343 = 2 ms
	assert.Equal(t, 96, Default.DelaySamples(0.343, 48000))
}
