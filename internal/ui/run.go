package ui

import (
	"fmt"
	"os"
	"runtime/pprof"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"suppression/internal/config"
)

// Run opens the window and blocks until the user closes it.
func Run(cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer g.close()

	if cfg.CPUProfile != "" {
		prof, err := startCPUProfile(cfg.CPUProfile)
		if err != nil {
			return fmt.Errorf("starting cpu profile: %w", err)
		}
		defer prof.stop()
		log.Info().Str("path", cfg.CPUProfile).Msg("Recording CPU profile")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info().
		Int("stages", len(g.session.Stages())).
		Floats64("lengths_m", g.session.Lengths()).
		Int("samples", g.session.Grid().Len()).
		Msg("Opening window")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	log.Info().Int("recomputes", g.session.Recomputes()).Msg("Window closed")
	return nil
}

// cpuProfile is a running CPU profile written to a file.
type cpuProfile struct {
	file *os.File
	once sync.Once
}

func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	return &cpuProfile{file: f}, nil
}

// stop flushes the profile. Later calls do nothing.
func (p *cpuProfile) stop() {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.file.Close(); err != nil {
			log.Warn().Err(err).Str("path", p.file.Name()).Msg("Closing CPU profile")
		}
	})
}
