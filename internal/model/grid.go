package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// FrequencyGrid is a fixed, strictly increasing set of frequency samples in
// Hz. It is never modified after construction.
type FrequencyGrid struct {
	freqs []float64
}

// NewFrequencyGrid builds the grid start, start+step, ... up to and including
// stop when stop lies on the step lattice.
func NewFrequencyGrid(start, stop, step float64) (*FrequencyGrid, error) {
	switch {
	case !(start > 0) || math.IsInf(start, 0):
		return nil, fmt.Errorf("frequency grid start must be positive, got %v", start)
	case !(step > 0) || math.IsInf(step, 0):
		return nil, fmt.Errorf("frequency grid step must be positive, got %v", step)
	case !(stop >= start) || math.IsInf(stop, 0):
		return nil, fmt.Errorf("frequency grid stop %v is below start %v", stop, start)
	}
	// The epsilon keeps an exact lattice stop (1000 for 10..1000 step 10)
	// from being lost to round-off.
	n := int(math.Floor((stop-start)/step+1e-9)) + 1
	if n == 1 {
		return &FrequencyGrid{freqs: []float64{start}}, nil
	}
	freqs := floats.Span(make([]float64, n), start, start+float64(n-1)*step)
	return &FrequencyGrid{freqs: freqs}, nil
}

// Len returns the number of samples.
func (g *FrequencyGrid) Len() int { return len(g.freqs) }

// At returns the i-th frequency.
func (g *FrequencyGrid) At(i int) float64 { return g.freqs[i] }

// Values returns a copy of the frequencies.
func (g *FrequencyGrid) Values() []float64 {
	out := make([]float64, len(g.freqs))
	copy(out, g.freqs)
	return out
}

// Min returns the lowest frequency.
func (g *FrequencyGrid) Min() float64 { return g.freqs[0] }

// Max returns the highest frequency.
func (g *FrequencyGrid) Max() float64 { return g.freqs[len(g.freqs)-1] }

// Nearest returns the index of the sample closest to f.
func (g *FrequencyGrid) Nearest(f float64) int {
	i := sort.SearchFloat64s(g.freqs, f)
	if i == 0 {
		return 0
	}
	if i == len(g.freqs) {
		return len(g.freqs) - 1
	}
	if f-g.freqs[i-1] <= g.freqs[i]-f {
		return i - 1
	}
	return i
}

// Curve evaluates the gain of a stage of length l at every grid frequency
// into dst, allocating when dst is too short.
func (m Model) Curve(dst []float64, grid *FrequencyGrid, l float64) []float64 {
	if cap(dst) < grid.Len() {
		dst = make([]float64, grid.Len())
	}
	dst = dst[:grid.Len()]
	for j, f := range grid.freqs {
		dst[j] = m.SumMagnitude(f, l)
	}
	return dst
}

var errCurveLength = errors.New("curve length mismatch")

// Product multiplies every curve into dst elementwise. dst keeps its values,
// so callers start from all ones for a plain product.
func Product(dst []float64, curves ...[]float64) error {
	for i, c := range curves {
		if len(c) != len(dst) {
			return fmt.Errorf("curve %d has %d samples, want %d: %w", i, len(c), len(dst), errCurveLength)
		}
		vecmath.MulBlockInPlace(dst, c)
	}
	return nil
}

// Ones returns a slice of n ones.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
