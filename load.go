// SPDX-License-Identifier: EPL-2.0

package audcraft

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ik5/audcraft/audio"
	"github.com/ik5/audcraft/formats/aiff"
	"github.com/ik5/audcraft/formats/flac"
	"github.com/ik5/audcraft/formats/mp3"
	"github.com/ik5/audcraft/formats/vorbis"
	"github.com/ik5/audcraft/formats/wav"
)

// DefaultBufferSize is the pipeline read buffer used when LoadOptions.BufferSize is unset.
const DefaultBufferSize = 4096

// LoadOptions controls how Load decodes and resamples a file.
type LoadOptions struct {
	// TargetRate is the output sample rate in Hz.
	TargetRate int
	// Mono averages all channels into one.
	Mono bool
	// Resampler names the engine, see audio.NewResamplerByName.
	Resampler string
	// BufferSize is the number of samples read per pipeline step.
	BufferSize int
	// Registry overrides the decoders used; nil means DefaultRegistry.
	Registry *audio.Registry
}

var defaultRegistry = sync.OnceValue(func() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(FormatWAV, wav.Decoder{})
	reg.Register(FormatMP3, mp3.Decoder{})
	reg.Register(FormatOgg, vorbis.Decoder{})
	reg.Register(FormatFLAC, flac.Decoder{})
	reg.Register(FormatAIFF, aiff.Decoder{})
	return reg
})

// DefaultRegistry returns the shared registry holding every built-in decoder.
func DefaultRegistry() *audio.Registry {
	return defaultRegistry()
}

// Load decodes the audio file at path, resamples it to opts.TargetRate and
// returns the signal together with the file's original sample rate.
//
// Errors match ErrReadFile when the file cannot be opened or read, and
// ErrDecode when its content is not decodable audio.
func Load(path string, opts LoadOptions) (audio.Signal, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	defer f.Close()

	return LoadReader(f, path, opts)
}

// LoadReader is Load for an already opened stream. name is only used for
// extension based format detection and messages.
func LoadReader(r io.ReadSeeker, name string, opts LoadOptions) (audio.Signal, int, error) {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	format, err := Detect(head[:n], name)
	if err != nil {
		return nil, 0, err
	}

	dec, ok := reg.Get(format)
	if !ok {
		return nil, 0, fmt.Errorf("%w: no decoder for %s", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	defer src.Close()

	origRate := src.SampleRate()
	if origRate <= 0 || src.Channels() <= 0 {
		return nil, 0, fmt.Errorf("%w: %s: invalid stream parameters (%d Hz, %d channels)",
			ErrDecode, format, origRate, src.Channels())
	}

	pipeline, err := audio.NewResamplerByName(opts.Resampler, src, opts.TargetRate)
	if err != nil {
		return nil, 0, err
	}
	if opts.Mono {
		pipeline = audio.NewMonoMixer(pipeline)
	}

	samples, err := audio.ReadAll(pipeline, bufferSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	return audio.Deinterleave(samples, pipeline.Channels()), origRate, nil
}
