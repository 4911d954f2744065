package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrequencyGridDefault(t *testing.T) {
	g, err := NewFrequencyGrid(10, 1000, 10)
	require.NoError(t, err)
	require.Equal(t, 100, g.Len())
	assert.Equal(t, 10.0, g.Min())
	assert.InDelta(t, 1000.0, g.Max(), 1e-9)
	for i := 1; i < g.Len(); i++ {
		assert.Greater(t, g.At(i), g.At(i-1))
		assert.InDelta(t, 10.0, g.At(i)-g.At(i-1), 1e-9)
	}
}

func TestNewFrequencyGridOffLatticeStop(t *testing.T) {
	g, err := NewFrequencyGrid(10, 1005, 10)
	require.NoError(t, err)
	assert.Equal(t, 100, g.Len())
	assert.InDelta(t, 1000.0, g.Max(), 1e-9)
}

func TestNewFrequencyGridSinglePoint(t *testing.T) {
	g, err := NewFrequencyGrid(50, 50, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, g.Values())
}

func TestNewFrequencyGridRejects(t *testing.T) {
	for _, args := range [][3]float64{
		{0, 100, 10},
		{-10, 100, 10},
		{10, 100, 0},
		{10, 5, 1},
	} {
		_, err := NewFrequencyGrid(args[0], args[1], args[2])
		assert.Error(t, err, "%v", args)
	}
}

func TestFrequencyGridValuesIsACopy(t *testing.T) {
	g, err := NewFrequencyGrid(10, 100, 10)
	require.NoError(t, err)
	v := g.Values()
	v[0] = -1
	assert.Equal(t, 10.0, g.At(0))
}

func TestFrequencyGridNearest(t *testing.T) {
	g, err := NewFrequencyGrid(10, 100, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Nearest(-3))
	assert.Equal(t, 0, g.Nearest(14))
	assert.Equal(t, 1, g.Nearest(16))
	assert.Equal(t, 4, g.Nearest(50))
	assert.Equal(t, 9, g.Nearest(5000))
}

func TestCurveAndProduct(t *testing.T) {
	g, err := NewFrequencyGrid(10, 1000, 10)
	require.NoError(t, err)

	a := Default.Curve(nil, g, 0.23)
	b := Default.Curve(nil, g, 0.46)
	require.Len(t, a, g.Len())

	total := Ones(g.Len())
	require.NoError(t, Product(total, a, b))
	for j := range total {
		assert.InDelta(t, a[j]*b[j], total[j], 1e-12)
	}

	assert.Error(t, Product(total, []float64{1, 2}))
}

func TestCurveReusesBuffer(t *testing.T) {
	g, err := NewFrequencyGrid(10, 100, 10)
	require.NoError(t, err)
	buf := make([]float64, 0, 32)
	out := Default.Curve(buf, g, 0.5)
	assert.Len(t, out, 10)
	assert.Same(t, &buf[:1][0], &out[0])
}
