// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audcraft/audio"
)

// ErrNotMP3File wraps any failure to parse an MPEG audio stream.
var ErrNotMP3File = errors.New("not an MP3 stream")

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
	// bytes of a split frame carried to the next read
	rest []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / s.stride() } // sample capacity, not bytes

// stride is the number of PCM bytes behind one output sample. Mono streams
// come out of go-mp3 duplicated, so only the left half of each frame is kept.
func (s *source) stride() int {
	if s.channels == 1 {
		return 4
	}
	return 2
}

// ReadSamples converts go-mp3's 16-bit little-endian stereo PCM to float32.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	stride := s.stride()
	bytesNeeded := len(dst) * stride
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	off := copy(s.buf, s.rest)
	s.rest = s.rest[:0]

	n, err := s.dec.Read(s.buf[off:])
	n += off

	whole := n - n%stride
	s.rest = append(s.rest, s.buf[whole:n]...)

	samples := whole / stride
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[i*stride:]))) / 32768.0
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("%w", err)
	}

	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams. The channel count comes from the
// mode of the first frame header.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := bufio.NewReaderSize(r, headerWindow)
	// A short stream still hands back what it has
	head, _ := br.Peek(headerWindow)
	channels := frameChannels(head)

	dec, err := gomp3.NewDecoder(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		buf:        make([]byte, 8192),
	}, nil
}
