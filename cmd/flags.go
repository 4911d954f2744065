package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"suppression/internal/config"
	"suppression/internal/session"
)

func mustBind(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}

// addLengthsFlag registers --lengths on cmd.
func addLengthsFlag(cmd *cobra.Command) {
	cmd.Flags().Float64Slice("lengths", nil,
		"stage lengths in slider units, one per stage (default from config)")
}

// sessionOptions returns the configured session options, with the stage
// list replaced by --lengths when given.
func sessionOptions(cmd *cobra.Command, cfg *config.Config) (session.Options, error) {
	opts, err := cfg.SessionOptions()
	if err != nil {
		return session.Options{}, err
	}
	if !cmd.Flags().Changed("lengths") {
		return opts, nil
	}
	lengths, err := cmd.Flags().GetFloat64Slice("lengths")
	if err != nil {
		return session.Options{}, err
	}
	if len(lengths) == 0 {
		return session.Options{}, fmt.Errorf("--lengths needs at least one value")
	}
	for i, l := range lengths {
		if l < opts.SliderMin || l > opts.SliderMax {
			return session.Options{}, fmt.Errorf("length %d (%v) outside slider range [%v, %v]", i+1, l, opts.SliderMin, opts.SliderMax)
		}
	}
	opts.InitialLengths = lengths
	return opts, nil
}
