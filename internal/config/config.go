// SPDX-License-Identifier: EPL-2.0

// Package config loads audcraft settings from defaults, an optional YAML
// file, AUDCRAFT_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audcraft/audio"
	"github.com/ik5/audcraft/crafter"
	"github.com/ik5/audcraft/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. AUDCRAFT_CRAFTER_MONO.
const EnvPrefix = "AUDCRAFT"

// Keys shared with flag bindings.
const (
	KeyTargetSampleRate = "crafter.target_sample_rate"
	KeyMono             = "crafter.mono"
	KeyResampler        = "crafter.resampler"
	KeyBufferSize       = "crafter.buffer_size"
	KeyName             = "crafter.name"
	KeyDebug            = "crafter.debug"
	KeyWorkers          = "workers"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// Settings is the complete runtime configuration.
type Settings struct {
	Crafter crafter.Config `mapstructure:"crafter" yaml:"crafter"`
	Workers int            `mapstructure:"workers" yaml:"workers"`
	Log     Log            `mapstructure:"log" yaml:"log"`
}

// Log configures the command line logger.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// New returns a viper instance with defaults and environment overrides set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	def := crafter.DefaultConfig()

	v.SetDefault(KeyName, def.Name)
	v.SetDefault(KeyDebug, def.Debug)
	v.SetDefault(KeyTargetSampleRate, def.TargetSampleRate)
	v.SetDefault(KeyMono, def.Mono)
	v.SetDefault(KeyResampler, def.Resampler)
	v.SetDefault(KeyBufferSize, def.BufferSize)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)
}

// Load reads file when set, otherwise looks for audcraft.yaml in the working
// directory and $HOME/.config/audcraft. A missing default file is not an error.
func Load(v *viper.Viper, file string) (*Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("audcraft")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/audcraft")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks values the crafter itself leaves to the caller.
func (s *Settings) Validate() error {
	var errs []error

	if s.Crafter.TargetSampleRate <= 0 {
		errs = append(errs, fmt.Errorf("crafter.target_sample_rate must be positive, got %d", s.Crafter.TargetSampleRate))
	}
	if s.Crafter.BufferSize < 0 {
		errs = append(errs, fmt.Errorf("crafter.buffer_size must not be negative, got %d", s.Crafter.BufferSize))
	}
	switch s.Crafter.Resampler {
	case "", audio.EngineCubic, audio.EngineHQ:
	default:
		errs = append(errs, fmt.Errorf("crafter.resampler: %w: %q", audio.ErrUnknownResampler, s.Crafter.Resampler))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", s.Workers))
	}
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(s.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q", s.Log.Format))
	}

	return errors.Join(errs...)
}

// WriteYAML renders s as YAML.
func WriteYAML(w io.Writer, s *Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return enc.Close()
}
