// SPDX-License-Identifier: EPL-2.0

package crafter

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/ik5/audcraft"
	"github.com/ik5/audcraft/audio"
)

// DocumentCrafter builds a Record from a payload and a document identifier.
type DocumentCrafter interface {
	Craft(payload []byte, id int) (Record, error)
}

// Engine decodes and resamples the file at path.
// It returns the signal and the file's original sample rate.
type Engine interface {
	Load(path string, opts audcraft.LoadOptions) (audio.Signal, int, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(path string, opts audcraft.LoadOptions) (audio.Signal, int, error)

func (f EngineFunc) Load(path string, opts audcraft.LoadOptions) (audio.Signal, int, error) {
	return f(path, opts)
}

// Option customizes an AudioReader.
type Option func(*AudioReader)

// WithEngine replaces the decoding engine. The default is audcraft.Load.
func WithEngine(e Engine) Option {
	return func(r *AudioReader) {
		r.engine = e
	}
}

// WithLogger sets the logger used for per-craft debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *AudioReader) {
		if l != nil {
			r.logger = l
		}
	}
}

// AudioReader decodes referenced audio files and resamples them to a fixed rate.
type AudioReader struct {
	cfg    Config
	opts   audcraft.LoadOptions
	engine Engine
	logger *slog.Logger
}

var _ DocumentCrafter = (*AudioReader)(nil)

// NewAudioReader creates an AudioReader. cfg is copied and never changes afterwards.
func NewAudioReader(cfg Config, opts ...Option) *AudioReader {
	r := &AudioReader{
		cfg:    cfg,
		opts:   cfg.loadOptions(),
		engine: EngineFunc(audcraft.Load),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	if cfg.Name != "" {
		r.logger = r.logger.With("crafter", cfg.Name)
	}

	return r
}

// Config returns the configuration the reader was built with.
func (r *AudioReader) Config() Config { return r.cfg }

// Craft reads payload as a UTF-8 file path, decodes the file and returns a
// record carrying id, offset 0, weight 1.0 and the resampled signal.
func (r *AudioReader) Craft(payload []byte, id int) (Record, error) {
	path, err := parseReference(payload)
	if err != nil {
		return Record{}, err
	}

	start := time.Now()

	sig, origRate, err := r.engine.Load(path, r.opts)
	if err != nil {
		r.logger.Debug("craft failed", "id", id, "path", path, "error", err)
		return Record{}, fmt.Errorf("craft %s: %w", path, err)
	}

	r.logger.Debug("crafted",
		"id", id,
		"path", path,
		"orig_rate", origRate,
		"rate", r.cfg.TargetSampleRate,
		"channels", sig.Channels(),
		"frames", sig.Frames(),
		"elapsed", time.Since(start))

	return Record{
		ID:     id,
		Offset: 0,
		Weight: 1.0,
		Signal: sig,
	}, nil
}

func parseReference(payload []byte) (string, error) {
	switch {
	case len(payload) == 0:
		return "", fmt.Errorf("%w: empty path", ErrInvalidReference)
	case !utf8.Valid(payload):
		return "", fmt.Errorf("%w: path is not valid UTF-8", ErrInvalidReference)
	case bytes.IndexByte(payload, 0) >= 0:
		return "", fmt.Errorf("%w: path contains a NUL byte", ErrInvalidReference)
	}

	return string(payload), nil
}
