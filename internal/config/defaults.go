package config

import "github.com/spf13/viper"

// Defaults of the suppression window.
const (
	DefaultTitle        = "Suppression Model"
	DefaultWidth        = 1200
	DefaultHeight       = 600
	DefaultFreqStart    = 10.0
	DefaultFreqStop     = 1000.0
	DefaultFreqStep     = 10.0
	DefaultSliderMin    = 0.0
	DefaultSliderMax    = 100.0
	DefaultSliderStep   = 1.0
	DefaultSliderScale  = 100.0
	DefaultYMax         = 1.2
	DefaultSampleRate   = 48000
	DefaultVolume       = 0.25
	DefaultNoise        = "pink"
	DefaultLogLevel     = "info"
	DefaultSpeedOfSound = 343.0
)

// DefaultInitialLengths are the starting slider values, one per stage.
var DefaultInitialLengths = []float64{23, 46, 90}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.title", DefaultTitle)
	v.SetDefault("window.width", DefaultWidth)
	v.SetDefault("window.height", DefaultHeight)

	v.SetDefault("model.speed_of_sound", DefaultSpeedOfSound)

	v.SetDefault("frequency.start", DefaultFreqStart)
	v.SetDefault("frequency.stop", DefaultFreqStop)
	v.SetDefault("frequency.step", DefaultFreqStep)

	v.SetDefault("stages.initial_lengths", append([]float64(nil), DefaultInitialLengths...))

	v.SetDefault("slider.min", DefaultSliderMin)
	v.SetDefault("slider.max", DefaultSliderMax)
	v.SetDefault("slider.step", DefaultSliderStep)
	v.SetDefault("slider.scale", DefaultSliderScale)

	v.SetDefault("plot.y_max", DefaultYMax)

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.sample_rate", DefaultSampleRate)
	v.SetDefault("audio.volume", DefaultVolume)
	v.SetDefault("audio.noise", DefaultNoise)
	v.SetDefault("audio.source", "")

	v.SetDefault("debug", false)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("cpu_profile", "")
}
