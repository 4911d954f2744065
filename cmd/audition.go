package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"suppression/internal/audition"
)

var auditionCmd = &cobra.Command{
	Use:   "audition",
	Short: "Render a test signal through the stage filters to a WAV file",
	Long: `Passes noise, or a WAV file given with --source, through one comb filter
per stage and writes the result as 16-bit mono PCM.

Examples:
  suppression audition --out filtered.wav
  suppression audition --lengths 23,46,90 --duration 10s --noise white --out white.wav`,
	RunE: runAudition,
}

func init() {
	addLengthsFlag(auditionCmd)
	f := auditionCmd.Flags()
	f.Duration("duration", 5*time.Second, "length of the rendered audio")
	f.String("out", "", "output WAV path")
	f.String("source", "", "WAV file to filter instead of noise")
	f.String("noise", "", "noise color (white, pink, brown); default from config")
	_ = auditionCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(auditionCmd)
}

func runAudition(cmd *cobra.Command, args []string) error {
	opts, err := sessionOptions(cmd, appConfig)
	if err != nil {
		return err
	}
	lengths := make([]float64, len(opts.InitialLengths))
	for i, v := range opts.InitialLengths {
		lengths[i] = v / opts.Scale
	}

	duration, _ := cmd.Flags().GetDuration("duration")
	if duration <= 0 {
		return fmt.Errorf("--duration must be positive, got %s", duration)
	}

	rate := appConfig.Audio.SampleRate
	var src audition.Source
	if path, _ := cmd.Flags().GetString("source"); path != "" {
		samples, fileRate, err := readSource(path)
		if err != nil {
			return err
		}
		src, rate = audition.NewLoopSource(samples), fileRate
	} else {
		noise := appConfig.Audio.Noise
		if cmd.Flags().Changed("noise") {
			noise, _ = cmd.Flags().GetString("noise")
		}
		kind, err := audition.ParseNoiseKind(noise)
		if err != nil {
			return err
		}
		src = audition.NewNoise(kind, time.Now().UnixNano())
	}

	chain := audition.NewChain(opts.Model, lengths, rate)
	n := int(duration.Seconds() * float64(rate))
	samples := audition.Render(src, chain, n)

	out, _ := cmd.Flags().GetString("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := audition.WriteWAV(f, samples, rate); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	delays := make([]int, len(chain.Stages))
	for i, st := range chain.Stages {
		delays[i] = st.Delay()
	}
	log.Info().
		Str("path", out).
		Int("sample_rate", rate).
		Int("samples", n).
		Floats64("lengths_m", lengths).
		Ints("delays", delays).
		Msg("Wrote audition")
	return nil
}

func readSource(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	samples, rate, err := audition.ReadWAV(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %q: %w", path, err)
	}
	if len(samples) == 0 {
		return nil, 0, fmt.Errorf("wav %q has no audio data", path)
	}
	return samples, rate, nil
}
