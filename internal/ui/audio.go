package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"suppression/internal/audition"
	"suppression/internal/config"
	"suppression/internal/model"
)

const (
	audioPlayerBufferLatency = 80 * time.Millisecond
	noiseSeed                = 1
)

// audioOutput plays the configured test signal through the stage filters.
type audioOutput struct {
	ctx    *audio.Context
	player *audio.Player
	stream *audition.Stream
}

func newAudioOutput(cfg config.AudioConfig, m model.Model, lengths []float64) (*audioOutput, error) {
	src, err := audioSource(cfg)
	if err != nil {
		return nil, err
	}
	ctx := audio.NewContext(cfg.SampleRate)
	stream := audition.NewStream(m, cfg.SampleRate, src, lengths, cfg.Volume)
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	player.SetBufferSize(audioPlayerBufferLatency)
	player.Play()
	return &audioOutput{ctx: ctx, player: player, stream: stream}, nil
}

func audioSource(cfg config.AudioConfig) (audition.Source, error) {
	if cfg.Source != "" {
		samples, err := loadLoopSamples(cfg.SampleRate, cfg.Source)
		if err != nil {
			return nil, err
		}
		return audition.NewLoopSource(samples), nil
	}
	kind, err := audition.ParseNoiseKind(cfg.Noise)
	if err != nil {
		return nil, err
	}
	return audition.NewNoise(kind, noiseSeed), nil
}

func (a *audioOutput) setLengths(lengths []float64) {
	a.stream.SetLengths(lengths)
}

func (a *audioOutput) close() {
	_ = a.player.Close()
}

// loadLoopSamples decodes the WAV at path, resampled to sampleRate by the
// ebiten decoder, and returns it downmixed to mono.
func loadLoopSamples(sampleRate int, path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	samples := audition.DecodeStereo16(pcm)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no complete frames", path)
	}
	return samples, nil
}
