// Package ui runs the suppression window on ebiten.
package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"suppression/internal/config"
	"suppression/internal/plot"
	"suppression/internal/session"
)

// Game owns the window state and is the session's canvas.
type Game struct {
	cfg     *config.Config
	session *session.Session
	layout  plot.Layout
	freqs   []float64

	stageLines  [][]float64
	stageLabels []string
	totalLine   []float64
	totalLabel  string
	showLegend  bool

	layer *ebiten.Image
	dirty bool

	focus    int
	dragging int

	audio *audioOutput

	lastLayerDuration time.Duration
}

// newGame builds the window state, the session bound to it and, when
// enabled, the audition output.
func newGame(cfg *config.Config) (*Game, error) {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return nil, err
	}
	stages := len(opts.InitialLengths)
	g := &Game{
		cfg:         cfg,
		freqs:       opts.Grid.Values(),
		stageLines:  make([][]float64, stages),
		stageLabels: make([]string, stages),
		dragging:    -1,
	}
	g.layout = plot.NewLayout(
		plot.Figure{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		stages, opts.Grid.Min(), opts.Grid.Max(), cfg.Plot.YMax,
	)

	s, err := session.New(opts, g)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	g.session = s

	if cfg.Audio.Enabled {
		out, err := newAudioOutput(cfg.Audio, s.Model(), s.Lengths())
		if err != nil {
			log.Error().Err(err).Msg("Audio output disabled")
		} else {
			g.audio = out
			log.Info().Int("sample_rate", cfg.Audio.SampleRate).Str("noise", cfg.Audio.Noise).Msg("Audio output enabled")
		}
	}
	return g, nil
}

// SetStageCurve stores a copy of the stage line data.
func (g *Game) SetStageCurve(i int, label string, gains []float64) {
	g.stageLines[i] = append(g.stageLines[i][:0], gains...)
	g.stageLabels[i] = label
}

// SetTotalCurve stores a copy of the aggregate line data.
func (g *Game) SetTotalCurve(label string, gains []float64) {
	g.totalLine = append(g.totalLine[:0], gains...)
	g.totalLabel = label
}

// ShowLegend turns the legend on.
func (g *Game) ShowLegend() { g.showLegend = true }

// DrawIdle marks the plot layer stale. Several calls within one frame cost
// a single re-render in Draw.
func (g *Game) DrawIdle() {
	g.dirty = true
	if g.session != nil && g.audio != nil {
		g.audio.setLengths(g.session.Lengths())
	}
}

// Update handles input. Slider changes recompute synchronously through the
// session handlers.
func (g *Game) Update() error {
	g.handlePointer()
	g.handleKeys()
	return nil
}

func (g *Game) close() {
	if g.audio != nil {
		g.audio.close()
	}
}
