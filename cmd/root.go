package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"suppression/internal/config"
	"suppression/internal/ui"
)

var (
	configFile string
	verbose    bool

	v         = viper.New()
	appConfig *config.Config
)

// rootCmd opens the window when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "suppression",
	Short: "Interactive comb-filter suppression model",
	Long: `Plots the gain of a direct wave summed with its reflection from one or
more pipe-like stages. Drag the L1..LN sliders to change stage lengths and
watch the per-stage and total suppression curves update.

Keys: Tab/Shift+Tab select a slider, Up/Down move it by one step,
PageUp/PageDown by ten, R resets every slider.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.Run(appConfig)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "",
		"config file (default is ./suppression.yaml or $HOME/.config/suppression/suppression.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.Bool("debug", false, "show FPS and recompute overlay")

	f := rootCmd.Flags()
	f.Bool("enable-audio", false, "play noise through the stage filters while the window is open")
	f.String("audio-source", "", "WAV file to loop instead of noise")
	f.String("noise", config.DefaultNoise, "noise color for audio output (white, pink, brown)")
	f.String("cpuprofile", "", "write a CPU profile to this file while the window is open")

	mustBind("log_level", pf.Lookup("log-level"))
	mustBind("debug", pf.Lookup("debug"))
	mustBind("audio.enabled", f.Lookup("enable-audio"))
	mustBind("audio.source", f.Lookup("audio-source"))
	mustBind("audio.noise", f.Lookup("noise"))
	mustBind("cpu_profile", f.Lookup("cpuprofile"))
}

// initializeConfig loads the configuration after flags are parsed and
// configures logging from it.
func initializeConfig() error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	if err := setupLogging(cfg.LogLevel, verbose); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug().Str("path", used).Msg("Using config file")
	}
	return nil
}

func setupLogging(level string, verbose bool) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
