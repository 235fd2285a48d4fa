// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// WAVE_FORMAT_PCM, WAVE_FORMAT_IEEE_FLOAT and WAVE_FORMAT_EXTENSIBLE
const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xFFFE
)

const (
	// extensibleFmtSize is the fmt chunk size carrying a SubFormat GUID.
	extensibleFmtSize = 40
	maxFmtSize        = 1024
)

// Bytes 2..15 shared by every KSDATAFORMAT_SUBTYPE GUID; bytes 0..1 hold the format tag.
var subFormatSuffix = []byte{
	0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

type sampleEncoding int

const (
	encodingPCM sampleEncoding = iota
	encodingFloat
)

// readEncoding walks the RIFF chunks up to fmt and reports how samples are
// stored, resolving the SubFormat of WAVE_FORMAT_EXTENSIBLE files. The
// reader is rewound afterwards.
func readEncoding(rs io.ReadSeeker) (sampleEncoding, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	defer rs.Seek(start, io.SeekStart)

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if p.Format != riff.WavFormatID {
		return 0, ErrNotWavFile
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: fmt chunk not found: %w", ErrNotWavFile, err)
		}

		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size > maxFmtSize {
			return 0, fmt.Errorf("%w: fmt chunk of %d bytes", ErrNotWavFile, ch.Size)
		}
		body := make([]byte, ch.Size)
		if _, err := io.ReadFull(ch, body); err != nil {
			return 0, fmt.Errorf("%w: short fmt chunk: %w", ErrNotWavFile, err)
		}

		return encodingOf(body)
	}
}

// encodingOf classifies a raw fmt chunk body.
func encodingOf(body []byte) (sampleEncoding, error) {
	if len(body) < 16 {
		return 0, fmt.Errorf("%w: fmt chunk of %d bytes", ErrNotWavFile, len(body))
	}

	tag := binary.LittleEndian.Uint16(body[0:2])
	if tag == formatExtensible {
		if len(body) < extensibleFmtSize {
			return 0, fmt.Errorf("%w: extensible header without SubFormat", ErrUnsupportedEncoding)
		}
		guid := body[24:40]
		if !bytes.Equal(guid[2:], subFormatSuffix) {
			return 0, fmt.Errorf("%w: SubFormat %x", ErrUnsupportedEncoding, guid)
		}
		tag = binary.LittleEndian.Uint16(guid[0:2])
	}

	switch tag {
	case formatPCM:
		return encodingPCM, nil
	case formatFloat:
		return encodingFloat, nil
	default:
		return 0, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, tag)
	}
}
