package session

import "math"

// Slider holds the value of one vertical length control. It knows nothing
// about pixels; the window maps pointer positions onto Fraction.
type Slider struct {
	Label string
	Min   float64
	Max   float64
	Step  float64

	initial  float64
	value    float64
	handlers []func(float64)
}

// NewSlider returns a slider positioned at initial, snapped into range.
func NewSlider(label string, min, max, step, initial float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, Step: step}
	s.initial = s.snap(initial)
	s.value = s.initial
	return s
}

// Value returns the current slider value in display units.
func (s *Slider) Value() float64 { return s.value }

// Initial returns the value the slider was created with.
func (s *Slider) Initial() float64 { return s.initial }

// OnChanged registers fn to run after every value change.
func (s *Slider) OnChanged(fn func(float64)) {
	s.handlers = append(s.handlers, fn)
}

// Set moves the slider to v, clamped to [Min, Max] and snapped to Step.
// Handlers run only when the stored value changes.
func (s *Slider) Set(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	v = s.snap(v)
	if v == s.value {
		return false
	}
	s.value = v
	for _, fn := range s.handlers {
		fn(v)
	}
	return true
}

// Nudge moves the slider by whole steps.
func (s *Slider) Nudge(steps int) bool {
	step := s.Step
	if step <= 0 {
		step = (s.Max - s.Min) / 100
	}
	return s.Set(s.value + float64(steps)*step)
}

// Reset returns the slider to its initial value.
func (s *Slider) Reset() bool {
	return s.Set(s.initial)
}

// Fraction reports the position of the value within the range, 0 at Min.
func (s *Slider) Fraction() float64 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return (s.value - s.Min) / span
}

// SetFraction moves the slider to the value at fraction fr of its range.
func (s *Slider) SetFraction(fr float64) bool {
	return s.Set(s.Min + fr*(s.Max-s.Min))
}

func (s *Slider) snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	if v < s.Min {
		v = s.Min
	} else if v > s.Max {
		v = s.Max
	}
	return v
}
