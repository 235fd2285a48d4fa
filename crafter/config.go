// SPDX-License-Identifier: EPL-2.0

package crafter

import (
	"github.com/ik5/audcraft"
	"github.com/ik5/audcraft/audio"
)

// DefaultTargetSampleRate is the output rate when none is configured.
const DefaultTargetSampleRate = 22050

// BaseConfig carries the options every pipeline component accepts.
// AudioReader stores them but does not act on them.
type BaseConfig struct {
	Name  string `mapstructure:"name" yaml:"name" json:"name"`
	Debug bool   `mapstructure:"debug" yaml:"debug" json:"debug"`
}

// Config configures an AudioReader.
type Config struct {
	BaseConfig `mapstructure:",squash" yaml:",inline"`

	// TargetSampleRate is the rate every crafted signal is resampled to.
	// It must be positive; it is not validated here.
	TargetSampleRate int `mapstructure:"target_sample_rate" yaml:"target_sample_rate" json:"target_sample_rate"`

	// Mono downmixes all channels into one.
	Mono bool `mapstructure:"mono" yaml:"mono" json:"mono"`

	// Resampler selects the engine: "cubic" (default) or "hq".
	Resampler string `mapstructure:"resampler" yaml:"resampler" json:"resampler"`

	// BufferSize is the pipeline read size in samples; 0 uses audcraft.DefaultBufferSize.
	BufferSize int `mapstructure:"buffer_size" yaml:"buffer_size" json:"buffer_size"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		BaseConfig:       BaseConfig{Name: "audio_decode_resample"},
		TargetSampleRate: DefaultTargetSampleRate,
		Resampler:        audio.EngineCubic,
		BufferSize:       audcraft.DefaultBufferSize,
	}
}

func (c Config) loadOptions() audcraft.LoadOptions {
	return audcraft.LoadOptions{
		TargetRate: c.TargetSampleRate,
		Mono:       c.Mono,
		Resampler:  c.Resampler,
		BufferSize: c.BufferSize,
	}
}
