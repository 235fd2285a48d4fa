// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audcraft/audio"
	"github.com/ik5/audcraft/utils"
	"github.com/tphakala/flac"
)

// frameReader is an interface for flac.Decoder to allow testing
type frameReader interface {
	Next() ([]byte, error)
}

type source struct {
	dec        frameReader
	sampleRate int
	channels   int
	bitDepth   int
	// decoded samples of the current frame not yet handed out
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// decodeFrame unpacks one interleaved little-endian frame into pending.
func (s *source) decodeFrame(frame []byte) {
	width := s.bitDepth / 8
	count := len(frame) / width

	if cap(s.pending) < count {
		s.pending = make([]float32, count)
	}
	s.pending = s.pending[:count]

	for i := range count {
		b := frame[i*width:]
		var v int
		switch width {
		case 1:
			v = int(int8(b[0]))
		case 2:
			v = int(int16(binary.LittleEndian.Uint16(b)))
		case 3:
			v = int(int32(uint32(b[0])|uint32(b[1])<<8|uint32(b[2])<<16) << 8 >> 8)
		}
		s.pending[i] = utils.PCMToFloat32(v, s.bitDepth)
	}
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}

			frame, err := s.dec.Next()
			if err == io.EOF {
				s.eof = true
				break
			}
			if err != nil {
				return written, fmt.Errorf("%w", err)
			}
			s.decodeFrame(frame)
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if s.eof && len(s.pending) == 0 {
		return written, io.EOF
	}

	return written, nil
}

// Decoder reads FLAC streams with 8, 16 or 24-bit samples. Other depths are
// refused by tphakala/flac itself and surface as ErrNotFlacFile.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := flac.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	if dec.NChannels < 1 || dec.SampleRate < 1 {
		return nil, ErrNotFlacFile
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate,
		channels:   dec.NChannels,
		bitDepth:   dec.BitsPerSample,
	}, nil
}
