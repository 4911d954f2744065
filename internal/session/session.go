package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"suppression/internal/model"
)

// TotalLabel names the aggregate curve in the legend.
const TotalLabel = "Total"

// Canvas is the drawing surface the session pushes curves to. Gains slices
// are owned by the session and must be copied if kept past the call.
type Canvas interface {
	SetStageCurve(index int, label string, gains []float64)
	SetTotalCurve(label string, gains []float64)
	ShowLegend()
	// DrawIdle requests a redraw without waiting for it.
	DrawIdle()
}

// NopCanvas discards everything. Used for headless sessions.
type NopCanvas struct{}

func (NopCanvas) SetStageCurve(int, string, []float64) {}
func (NopCanvas) SetTotalCurve(string, []float64)      {}
func (NopCanvas) ShowLegend()                          {}
func (NopCanvas) DrawIdle()                            {}

// Options configures a session.
type Options struct {
	Model model.Model
	Grid  *model.FrequencyGrid

	// InitialLengths holds one slider value per stage, in slider units.
	InitialLengths []float64

	SliderMin  float64
	SliderMax  float64
	SliderStep float64
	// Scale converts slider units to meters (value / Scale).
	Scale float64
}

// Stage is one reflective delay element and its gain curve.
type Stage struct {
	Index  int
	Label  string
	Slider *Slider

	gains []float64
}

// Gains returns the stage curve from the last recompute. Read only.
func (st *Stage) Gains() []float64 { return st.gains }

// Session owns every piece of mutable state behind the window: sliders,
// stage curves and the aggregate curve.
type Session struct {
	model  model.Model
	grid   *model.FrequencyGrid
	scale  float64
	canvas Canvas

	stages  []*Stage
	total   []float64
	lengths []float64

	batching bool
	pending  bool

	recomputes   int
	lastDuration time.Duration
}

// New builds the sliders and zeroed curves, binds every slider to Recompute
// and renders the initial state once.
func New(opts Options, canvas Canvas) (*Session, error) {
	if opts.Grid == nil || opts.Grid.Len() == 0 {
		return nil, errors.New("session needs a non-empty frequency grid")
	}
	if len(opts.InitialLengths) == 0 {
		return nil, errors.New("session needs at least one stage")
	}
	if !(opts.Scale > 0) {
		return nil, fmt.Errorf("slider scale must be positive, got %v", opts.Scale)
	}
	if !(opts.SliderMax > opts.SliderMin) {
		return nil, fmt.Errorf("slider range [%v, %v] is empty", opts.SliderMin, opts.SliderMax)
	}
	if opts.Model.SpeedOfSound == 0 {
		opts.Model = model.Default
	}
	if canvas == nil {
		canvas = NopCanvas{}
	}

	n := opts.Grid.Len()
	s := &Session{
		model:   opts.Model,
		grid:    opts.Grid,
		scale:   opts.Scale,
		canvas:  canvas,
		total:   make([]float64, n),
		lengths: make([]float64, len(opts.InitialLengths)),
	}
	for i, initial := range opts.InitialLengths {
		slider := NewSlider(fmt.Sprintf("L%d", i+1), opts.SliderMin, opts.SliderMax, opts.SliderStep, initial)
		slider.OnChanged(func(float64) { s.Recompute() })
		s.stages = append(s.stages, &Stage{
			Index:  i + 1,
			Slider: slider,
			gains:  make([]float64, n),
		})
	}
	s.Recompute()
	return s, nil
}

// Recompute reads every slider, rebuilds all stage curves and the aggregate
// curve, and hands them to the canvas.
func (s *Session) Recompute() {
	if s.batching {
		s.pending = true
		return
	}
	start := time.Now()

	for i := range s.total {
		s.total[i] = 1.0
	}
	for i, st := range s.stages {
		s.lengths[i] = st.Slider.Value() / s.scale
		st.gains = s.model.Curve(st.gains, s.grid, s.lengths[i])
		st.Label = fmt.Sprintf("Stage-%d", st.Index)
		if err := model.Product(s.total, st.gains); err != nil {
			panic(err)
		}
		s.canvas.SetStageCurve(i, st.Label, st.gains)
	}
	s.canvas.SetTotalCurve(TotalLabel, s.total)
	s.canvas.ShowLegend()
	s.canvas.DrawIdle()

	s.recomputes++
	s.lastDuration = time.Since(start)
	log.Debug().
		Floats64("lengths_m", s.lengths).
		Dur("took", s.lastDuration).
		Msg("Recomputed curves")
}

// ResetAll puts every slider back to its initial value with one recompute.
func (s *Session) ResetAll() {
	s.batch(func() {
		for _, st := range s.stages {
			st.Slider.Reset()
		}
	})
}

// SetValues moves several sliders at once, in slider units, with one
// recompute. Extra values are ignored.
func (s *Session) SetValues(values []float64) {
	s.batch(func() {
		for i, v := range values {
			if i >= len(s.stages) {
				break
			}
			s.stages[i].Slider.Set(v)
		}
	})
}

// Nudge moves slider i (0-based) by whole steps.
func (s *Session) Nudge(i, steps int) bool {
	if i < 0 || i >= len(s.stages) {
		return false
	}
	return s.stages[i].Slider.Nudge(steps)
}

func (s *Session) batch(fn func()) {
	s.batching = true
	s.pending = false
	fn()
	s.batching = false
	if s.pending {
		s.pending = false
		s.Recompute()
	}
}

// Stages returns the stages in index order.
func (s *Session) Stages() []*Stage { return s.stages }

// Total returns the aggregate curve from the last recompute. Read only.
func (s *Session) Total() []float64 { return s.total }

// Lengths returns a copy of the current stage lengths in meters.
func (s *Session) Lengths() []float64 {
	out := make([]float64, len(s.lengths))
	copy(out, s.lengths)
	return out
}

// Grid returns the frequency grid.
func (s *Session) Grid() *model.FrequencyGrid { return s.grid }

// Model returns the medium the curves are evaluated with.
func (s *Session) Model() model.Model { return s.model }

// Recomputes returns how many times the curves were rebuilt.
func (s *Session) Recomputes() int { return s.recomputes }

// LastDuration reports how long the last recompute took.
func (s *Session) LastDuration() time.Duration { return s.lastDuration }
