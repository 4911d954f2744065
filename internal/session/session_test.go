package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suppression/internal/model"
)

type recordingCanvas struct {
	stageLabels map[int]string
	stages      map[int][]float64
	totalLabel  string
	total       []float64
	legends     int
	draws       int
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{stageLabels: map[int]string{}, stages: map[int][]float64{}}
}

func (c *recordingCanvas) SetStageCurve(i int, label string, gains []float64) {
	c.stageLabels[i] = label
	c.stages[i] = append([]float64(nil), gains...)
}

func (c *recordingCanvas) SetTotalCurve(label string, gains []float64) {
	c.totalLabel = label
	c.total = append([]float64(nil), gains...)
}

func (c *recordingCanvas) ShowLegend() { c.legends++ }
func (c *recordingCanvas) DrawIdle()   { c.draws++ }

func defaultOptions(t *testing.T) Options {
	t.Helper()
	grid, err := model.NewFrequencyGrid(10, 1000, 10)
	require.NoError(t, err)
	return Options{
		Model:          model.Default,
		Grid:           grid,
		InitialLengths: []float64{23, 46, 90},
		SliderMin:      0,
		SliderMax:      100,
		SliderStep:     1,
		Scale:          100,
	}
}

func TestNewRendersInitialState(t *testing.T) {
	c := newRecordingCanvas()
	s, err := New(defaultOptions(t), c)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Recomputes())
	assert.Equal(t, 1, c.draws)
	assert.Equal(t, 1, c.legends)
	assert.Equal(t, map[int]string{0: "Stage-1", 1: "Stage-2", 2: "Stage-3"}, c.stageLabels)
	assert.Equal(t, "Total", c.totalLabel)
	assert.Equal(t, []float64{0.23, 0.46, 0.9}, s.Lengths())

	labels := make([]string, 0, 3)
	for _, st := range s.Stages() {
		labels = append(labels, st.Slider.Label)
		assert.Equal(t, 0.0, st.Slider.Min)
		assert.Equal(t, 100.0, st.Slider.Max)
	}
	assert.Equal(t, []string{"L1", "L2", "L3"}, labels)

	for j := 0; j < s.Grid().Len(); j++ {
		assert.InDelta(t, model.SumMagnitude(s.Grid().At(j), 0.46), c.stages[1][j], 1e-12)
	}
}

func TestTotalIsProductOfStages(t *testing.T) {
	c := newRecordingCanvas()
	s, err := New(defaultOptions(t), c)
	require.NoError(t, err)

	check := func() {
		t.Helper()
		for j := range s.Total() {
			want := 1.0
			for _, st := range s.Stages() {
				want *= st.Gains()[j]
			}
			require.InDelta(t, want, s.Total()[j], 1e-12, "sample %d", j)
			require.InDelta(t, want, c.total[j], 1e-12, "sample %d", j)
		}
	}
	check()
	for _, v := range []float64{0, 7, 50, 100} {
		s.Stages()[0].Slider.Set(v)
		check()
		s.Stages()[2].Slider.Set(100 - v)
		check()
	}
}

func TestMovingOneSliderLeavesOtherStages(t *testing.T) {
	c := newRecordingCanvas()
	s, err := New(defaultOptions(t), c)
	require.NoError(t, err)

	before := map[int][]float64{}
	for i := range s.Stages() {
		before[i] = append([]float64(nil), c.stages[i]...)
	}
	totalBefore := append([]float64(nil), c.total...)

	require.True(t, s.Stages()[1].Slider.Set(10))
	assert.Equal(t, 2, s.Recomputes())
	assert.Equal(t, before[0], c.stages[0])
	assert.Equal(t, before[2], c.stages[2])
	assert.NotEqual(t, before[1], c.stages[1])
	assert.NotEqual(t, totalBefore, c.total)
}

func TestUnchangedSliderDoesNotRecompute(t *testing.T) {
	s, err := New(defaultOptions(t), nil)
	require.NoError(t, err)
	assert.False(t, s.Stages()[0].Slider.Set(23))
	assert.False(t, s.Stages()[0].Slider.Set(23.2))
	assert.Equal(t, 1, s.Recomputes())
}

func TestCommonNotchDrivesTotalToZero(t *testing.T) {
	opts := defaultOptions(t)
	// 100 Hz notches at 85.75 cm, three times that, and five times that.
	opts.Scale = 10000
	opts.SliderMax = 50000
	opts.InitialLengths = []float64{8575, 3 * 8575, 5 * 8575}
	s, err := New(opts, nil)
	require.NoError(t, err)

	j := s.Grid().Nearest(100)
	require.Equal(t, 100.0, s.Grid().At(j))
	for _, st := range s.Stages() {
		assert.InDelta(t, 0, st.Gains()[j], 1e-6)
	}
	assert.InDelta(t, 0, s.Total()[j], 1e-12)
}

func TestZeroLengthsGiveUnityTotal(t *testing.T) {
	opts := defaultOptions(t)
	opts.InitialLengths = []float64{0, 0, 0}
	s, err := New(opts, nil)
	require.NoError(t, err)
	for _, v := range s.Total() {
		assert.Equal(t, 1.0, v)
	}
}

func TestResetAllRecomputesOnce(t *testing.T) {
	s, err := New(defaultOptions(t), nil)
	require.NoError(t, err)

	s.SetValues([]float64{1, 2, 3, 4})
	assert.Equal(t, 2, s.Recomputes())
	assert.Equal(t, []float64{0.01, 0.02, 0.03}, s.Lengths())

	s.ResetAll()
	assert.Equal(t, 3, s.Recomputes())
	assert.Equal(t, []float64{0.23, 0.46, 0.9}, s.Lengths())

	s.ResetAll()
	assert.Equal(t, 3, s.Recomputes())
}

func TestNudge(t *testing.T) {
	s, err := New(defaultOptions(t), nil)
	require.NoError(t, err)

	assert.True(t, s.Nudge(2, 5))
	assert.Equal(t, 95.0, s.Stages()[2].Slider.Value())
	assert.True(t, s.Nudge(2, 50))
	assert.Equal(t, 100.0, s.Stages()[2].Slider.Value())
	assert.False(t, s.Nudge(2, 1))
	assert.False(t, s.Nudge(7, 1))
}

func TestNewRejectsBadOptions(t *testing.T) {
	opts := defaultOptions(t)
	opts.InitialLengths = nil
	_, err := New(opts, nil)
	assert.Error(t, err)

	opts = defaultOptions(t)
	opts.Grid = nil
	_, err = New(opts, nil)
	assert.Error(t, err)

	opts = defaultOptions(t)
	opts.Scale = 0
	_, err = New(opts, nil)
	assert.Error(t, err)

	opts = defaultOptions(t)
	opts.SliderMax = opts.SliderMin
	_, err = New(opts, nil)
	assert.Error(t, err)
}
