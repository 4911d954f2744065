// Package audition runs a test signal through the same stages the plot
// models, so the suppression can be heard while the sliders move.
package audition

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	brownStep     = 0.02
	pinkSmoothing = 0.05
	// pinkGain and brownGain bring the filtered noise up to roughly the
	// loudness of white noise.
	pinkGain  = 3.0
	brownGain = 1.0
)

// NoiseKind selects the spectral tilt of a Noise source.
type NoiseKind int

const (
	White NoiseKind = iota
	Pink
	Brown
)

func (k NoiseKind) String() string {
	switch k {
	case White:
		return "white"
	case Pink:
		return "pink"
	case Brown:
		return "brown"
	}
	return fmt.Sprintf("NoiseKind(%d)", int(k))
}

// ParseNoiseKind accepts white, pink or brown in any case.
func ParseNoiseKind(s string) (NoiseKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "pink", "":
		return Pink, nil
	case "brown":
		return Brown, nil
	}
	return 0, fmt.Errorf("unknown noise kind %q (want white, pink or brown)", s)
}

// Source produces mono samples in [-1, 1].
type Source interface {
	Fill(dst []float32)
}

// Noise is a random Source.
type Noise struct {
	kind  NoiseKind
	rand  *rand.Rand
	brown float32
	pink  float32
}

// NewNoise returns a noise source seeded with seed.
func NewNoise(kind NoiseKind, seed int64) *Noise {
	return &Noise{kind: kind, rand: rand.New(rand.NewSource(seed))}
}

// Fill writes the next len(dst) samples.
func (n *Noise) Fill(dst []float32) {
	for i := range dst {
		white := n.rand.Float32()*2 - 1
		var v float32
		switch n.kind {
		case Brown:
			n.brown += white * brownStep
			if n.brown > 1 {
				n.brown = 1
			} else if n.brown < -1 {
				n.brown = -1
			}
			v = n.brown * brownGain
		case Pink:
			n.pink += (white - n.pink) * pinkSmoothing
			v = n.pink * pinkGain
		default:
			v = white
		}
		dst[i] = clamp(v)
	}
}

// LoopSource repeats a fixed buffer forever.
type LoopSource struct {
	samples []float32
	pos     int
}

// NewLoopSource returns nil when samples is empty.
func NewLoopSource(samples []float32) *LoopSource {
	if len(samples) == 0 {
		return nil
	}
	return &LoopSource{samples: samples}
}

// Fill writes the next len(dst) samples, wrapping at the end of the loop.
func (s *LoopSource) Fill(dst []float32) {
	for len(dst) > 0 {
		n := copy(dst, s.samples[s.pos:])
		dst = dst[n:]
		s.pos = (s.pos + n) % len(s.samples)
	}
}

func clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
