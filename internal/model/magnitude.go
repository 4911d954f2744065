package model

import (
	"fmt"
	"math"
)

// SpeedOfSound is the propagation speed used by the default medium, in m/s.
const SpeedOfSound = 343.0

// Model evaluates the two-path interference of a direct wave and its
// reflection off the closed end of a stage.
type Model struct {
	SpeedOfSound float64
}

// Default is the model for air at room temperature.
var Default = Model{SpeedOfSound: SpeedOfSound}

// New returns a model for the given propagation speed.
func New(speedOfSound float64) (Model, error) {
	if !(speedOfSound > 0) || math.IsInf(speedOfSound, 0) {
		return Model{}, fmt.Errorf("speed of sound must be positive and finite, got %v", speedOfSound)
	}
	return Model{SpeedOfSound: speedOfSound}, nil
}

// SumMagnitude returns the normalized magnitude of the sum of the direct and
// reflected wave for frequency f (Hz) and stage length l (m), using Default.
func SumMagnitude(f, l float64) float64 {
	return Default.SumMagnitude(f, l)
}

// PhaseDifference returns the phase offset in radians between the direct
// wave and the wave that travelled the stage twice.
func (m Model) PhaseDifference(f, l float64) float64 {
	checkArgs(f, l)
	// Round trip delay in seconds.
	dt := (2 * l) / m.SpeedOfSound
	tcycle := 1 / f
	return (2 * math.Pi * dt) / tcycle
}

// SumMagnitude returns a gain in [0, 1]: 0 is full cancellation, 1 is full
// reinforcement. f must be positive.
func (m Model) SumMagnitude(f, l float64) float64 {
	dphase := m.PhaseDifference(f, l)
	sq := 2 + 2*math.Cos(dphase)
	if sq < 0 {
		sq = 0
	}
	return math.Sqrt(sq) / 2.0
}

// NotchFrequency returns the frequency of the k-th cancellation (k >= 0) for
// a stage of length l. ok is false when the stage has no notches.
func (m Model) NotchFrequency(l float64, k int) (float64, bool) {
	if l <= 0 || k < 0 {
		return 0, false
	}
	return float64(2*k+1) * m.SpeedOfSound / (4 * l), true
}

// Period returns the stage length increment that leaves the gain at f
// unchanged.
func (m Model) Period(f float64) float64 {
	checkArgs(f, 0)
	return m.SpeedOfSound / (2 * f)
}

// DelaySamples returns the round trip delay of a stage of length l in whole
// samples at the given sample rate.
func (m Model) DelaySamples(l float64, sampleRate int) int {
	if l <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(2 * l / m.SpeedOfSound * float64(sampleRate)))
}

func checkArgs(f, l float64) {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("model: frequency must be positive and finite, got %v", f))
	}
	if math.IsNaN(l) || math.IsInf(l, 0) {
		panic(fmt.Sprintf("model: stage length must be finite, got %v", l))
	}
}
