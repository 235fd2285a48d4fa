// SPDX-License-Identifier: EPL-2.0

// Package fixtures writes audio files for tests.
package fixtures

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audcraft/formats/wav"
)

// Tone returns frames of interleaved 16-bit PCM holding a sine at freq Hz,
// at half amplitude, duplicated on every channel.
func Tone(sampleRate, channels, frames int, freq float64) []int16 {
	out := make([]int16, frames*channels)
	for i := range frames {
		v := int16(16384 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)))
		for c := range channels {
			out[i*channels+c] = v
		}
	}
	return out
}

// WriteToneWAV writes a 440 Hz tone WAV into dir and returns its path.
func WriteToneWAV(tb testing.TB, dir, name string, sampleRate, channels, frames int) string {
	tb.Helper()

	return WriteWAV(tb, dir, name, sampleRate, channels, Tone(sampleRate, channels, frames, 440))
}

// WriteWAV writes interleaved 16-bit samples as a WAV file into dir and returns its path.
func WriteWAV(tb testing.TB, dir, name string, sampleRate, channels int, samples []int16) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, sampleRate, channels, samples); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}

	return path
}

// WriteFile writes raw bytes into dir and returns the path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}

	return path
}

// floatSubFormat is KSDATAFORMAT_SUBTYPE_IEEE_FLOAT.
var floatSubFormat = []byte{
	0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// WriteFloatWAV writes interleaved 32-bit float samples as a
// WAVE_FORMAT_EXTENSIBLE file into dir and returns its path.
func WriteFloatWAV(tb testing.TB, dir, name string, sampleRate, channels int, samples []float32) string {
	tb.Helper()

	fmtBody := new(bytes.Buffer)
	for _, v := range []any{
		uint16(0xFFFE), // WAVE_FORMAT_EXTENSIBLE
		uint16(channels),
		uint32(sampleRate),
		uint32(sampleRate * channels * 4),
		uint16(channels * 4),
		uint16(32),
		uint16(22), // extension size
		uint16(32), // valid bits
		uint32(0),  // channel mask
		floatSubFormat,
	} {
		if err := binary.Write(fmtBody, binary.LittleEndian, v); err != nil {
			tb.Fatalf("encode fmt: %v", err)
		}
	}

	data := new(bytes.Buffer)
	if err := binary.Write(data, binary.LittleEndian, samples); err != nil {
		tb.Fatalf("encode samples: %v", err)
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	_ = binary.Write(out, binary.LittleEndian, uint32(4+8+fmtBody.Len()+8+data.Len()))
	out.WriteString("WAVEfmt ")
	_ = binary.Write(out, binary.LittleEndian, uint32(fmtBody.Len()))
	out.Write(fmtBody.Bytes())
	out.WriteString("data")
	_ = binary.Write(out, binary.LittleEndian, uint32(data.Len()))
	out.Write(data.Bytes())

	return WriteFile(tb, dir, name, out.Bytes())
}
