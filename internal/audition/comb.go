package audition

import "suppression/internal/model"

// CombStage mixes the input with a copy delayed by the stage round trip:
// y[n] = (x[n] + x[n-D]) / 2. Its magnitude response is model.SumMagnitude.
type CombStage struct {
	ring  []float32
	pos   int
	delay int
}

// NewCombStage returns a stage delaying by delay samples.
func NewCombStage(delay int) *CombStage {
	c := &CombStage{}
	c.SetDelay(delay)
	return c
}

// Delay returns the delay in samples.
func (c *CombStage) Delay() int { return c.delay }

// SetDelay changes the delay, keeping as much history as fits.
func (c *CombStage) SetDelay(delay int) {
	if delay < 0 {
		delay = 0
	}
	if delay == c.delay && c.ring != nil {
		return
	}
	ring := make([]float32, delay+1)
	// Copy the most recent samples, newest last.
	n := len(c.ring)
	for i := 1; i <= len(ring) && i <= n; i++ {
		ring[len(ring)-i] = c.ring[(c.pos-i+n)%n]
	}
	c.ring = ring
	c.pos = 0
	c.delay = delay
}

// Process filters buf in place.
func (c *CombStage) Process(buf []float32) {
	n := len(c.ring)
	for i, x := range buf {
		c.ring[c.pos] = x
		buf[i] = 0.5 * (x + c.ring[(c.pos+1)%n])
		c.pos = (c.pos + 1) % n
	}
}

// Chain runs the stages in series.
type Chain struct {
	Stages []*CombStage
}

// NewChain builds one stage per length (meters) at sampleRate.
func NewChain(m model.Model, lengths []float64, sampleRate int) *Chain {
	ch := &Chain{}
	for _, l := range lengths {
		ch.Stages = append(ch.Stages, NewCombStage(m.DelaySamples(l, sampleRate)))
	}
	return ch
}

// SetLengths retunes the stages. Extra lengths add stages; missing ones keep
// their current delay.
func (ch *Chain) SetLengths(m model.Model, lengths []float64, sampleRate int) {
	for i, l := range lengths {
		d := m.DelaySamples(l, sampleRate)
		if i < len(ch.Stages) {
			ch.Stages[i].SetDelay(d)
			continue
		}
		ch.Stages = append(ch.Stages, NewCombStage(d))
	}
}

// Process filters buf in place through every stage.
func (ch *Chain) Process(buf []float32) {
	for _, st := range ch.Stages {
		st.Process(buf)
	}
}
