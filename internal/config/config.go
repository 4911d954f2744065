// Package config loads the tunables of the suppression window. Every value
// has a default, so the program runs with no file, flags or environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"suppression/internal/audition"
	"suppression/internal/model"
	"suppression/internal/session"
)

// EnvPrefix prefixes every environment override, e.g. SUPPRESSION_DEBUG.
const EnvPrefix = "SUPPRESSION"

// Config holds all configuration for the application.
type Config struct {
	Window    WindowConfig    `mapstructure:"window" yaml:"window"`
	Model     ModelConfig     `mapstructure:"model" yaml:"model"`
	Frequency FrequencyConfig `mapstructure:"frequency" yaml:"frequency"`
	Stages    StagesConfig    `mapstructure:"stages" yaml:"stages"`
	Slider    SliderConfig    `mapstructure:"slider" yaml:"slider"`
	Plot      PlotConfig      `mapstructure:"plot" yaml:"plot"`
	Audio     AudioConfig     `mapstructure:"audio" yaml:"audio"`

	Debug      bool   `mapstructure:"debug" yaml:"debug"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	CPUProfile string `mapstructure:"cpu_profile" yaml:"cpu_profile"`
}

// WindowConfig sizes and names the window.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// ModelConfig describes the medium.
type ModelConfig struct {
	SpeedOfSound float64 `mapstructure:"speed_of_sound" yaml:"speed_of_sound"`
}

// FrequencyConfig describes the frequency grid in Hz.
type FrequencyConfig struct {
	Start float64 `mapstructure:"start" yaml:"start"`
	Stop  float64 `mapstructure:"stop" yaml:"stop"`
	Step  float64 `mapstructure:"step" yaml:"step"`
}

// StagesConfig lists the initial slider value of each stage. The stage
// count is the length of the list.
type StagesConfig struct {
	InitialLengths []float64 `mapstructure:"initial_lengths" yaml:"initial_lengths"`
}

// SliderConfig describes every length slider. Scale is the number of slider
// units per meter.
type SliderConfig struct {
	Min   float64 `mapstructure:"min" yaml:"min"`
	Max   float64 `mapstructure:"max" yaml:"max"`
	Step  float64 `mapstructure:"step" yaml:"step"`
	Scale float64 `mapstructure:"scale" yaml:"scale"`
}

// PlotConfig describes the axes.
type PlotConfig struct {
	YMax float64 `mapstructure:"y_max" yaml:"y_max"`
}

// AudioConfig controls the optional audition output.
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
	SampleRate int     `mapstructure:"sample_rate" yaml:"sample_rate"`
	Volume     float64 `mapstructure:"volume" yaml:"volume"`
	Noise      string  `mapstructure:"noise" yaml:"noise"`
	Source     string  `mapstructure:"source" yaml:"source"`
}

// Load reads configuration from v. When path is empty, a suppression.yaml
// in the working directory or $HOME/.config/suppression is used if present.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("suppression")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "suppression"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case !positive(c.Model.SpeedOfSound):
		return fmt.Errorf("model.speed_of_sound must be positive, got %v", c.Model.SpeedOfSound)
	case len(c.Stages.InitialLengths) == 0:
		return errors.New("stages.initial_lengths must name at least one stage")
	case !(c.Slider.Max > c.Slider.Min):
		return fmt.Errorf("slider range [%v, %v] is empty", c.Slider.Min, c.Slider.Max)
	case c.Slider.Step < 0:
		return fmt.Errorf("slider.step must not be negative, got %v", c.Slider.Step)
	case !positive(c.Slider.Scale):
		return fmt.Errorf("slider.scale must be positive, got %v", c.Slider.Scale)
	case !positive(c.Plot.YMax):
		return fmt.Errorf("plot.y_max must be positive, got %v", c.Plot.YMax)
	}
	if _, err := c.Grid(); err != nil {
		return err
	}
	for i, l := range c.Stages.InitialLengths {
		if l < c.Slider.Min || l > c.Slider.Max {
			return fmt.Errorf("stage %d initial length %v outside slider range [%v, %v]", i+1, l, c.Slider.Min, c.Slider.Max)
		}
	}
	if c.Audio.Enabled {
		if c.Audio.SampleRate <= 0 {
			return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
		}
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
		}
	}
	if _, err := audition.ParseNoiseKind(c.Audio.Noise); err != nil {
		return fmt.Errorf("audio.noise: %w", err)
	}
	return nil
}

// Grid builds the frequency grid.
func (c *Config) Grid() (*model.FrequencyGrid, error) {
	g, err := model.NewFrequencyGrid(c.Frequency.Start, c.Frequency.Stop, c.Frequency.Step)
	if err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	return g, nil
}

// SessionOptions translates the configuration for session.New.
func (c *Config) SessionOptions() (session.Options, error) {
	m, err := model.New(c.Model.SpeedOfSound)
	if err != nil {
		return session.Options{}, err
	}
	grid, err := c.Grid()
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Model:          m,
		Grid:           grid,
		InitialLengths: append([]float64(nil), c.Stages.InitialLengths...),
		SliderMin:      c.Slider.Min,
		SliderMax:      c.Slider.Max,
		SliderStep:     c.Slider.Step,
		Scale:          c.Slider.Scale,
	}, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
