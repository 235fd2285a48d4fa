// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	offset     int
	maxRead    int // caps bytes per Read, 0 means unlimited
	err        error
}

func newMockReader(sampleRate int, samples []int16) *mockMP3Reader {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, pcm: pcm}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	end := len(m.pcm)
	if m.maxRead > 0 {
		end = min(end, m.offset+m.maxRead)
	}

	n := copy(buf, m.pcm[m.offset:end])
	m.offset += n
	return n, nil
}

func drain(t *testing.T, s *source, bufLen int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufLen)
	for range 10000 {
		n, err := s.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not MP3 data"),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotMP3File) {
				t.Errorf("Decode() error = %v, want ErrNotMP3File", err)
			}
		})
	}
}

func TestSource_StereoConversion(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 0, 16384, -16384, 32767, -32768}
	s := &source{dec: newMockReader(44100, samples), sampleRate: 44100, channels: 2}

	got := drain(t, s, 64)
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, v := range samples {
		if want := float32(v) / 32768.0; got[i] != want {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want)
		}
	}
}

// go-mp3 may hand back an odd number of bytes; the split sample must survive.
func TestSource_OddByteReads(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, -1000, 2000, -2000, 3000, -3000, 4000, -4000}
	reader := newMockReader(22050, samples)
	reader.maxRead = 3
	s := &source{dec: reader, sampleRate: 22050, channels: 2}

	got := drain(t, s, 4)
	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, v := range samples {
		if want := float32(v) / 32768.0; got[i] != want {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockMP3Reader{err: io.ErrUnexpectedEOF}, channels: 2}
	if _, err := s.ReadSamples(make([]float32, 8)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := &source{dec: newMockReader(48000, nil), sampleRate: 48000, channels: 2, buf: make([]byte, 8192)}

	if s.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", s.SampleRate())
	}
	if s.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", s.Channels())
	}
	if s.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", s.BufSize())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

// go-mp3 duplicates mono into both sides; only the left half survives, even
// when frames are split across reads.
func TestSource_MonoKeepsLeft(t *testing.T) {
	t.Parallel()

	samples := []int16{1000, 1000, -2000, -2000, 3000, 3000, -4000, -4000}
	reader := newMockReader(22050, samples)
	reader.maxRead = 3
	s := &source{dec: reader, sampleRate: 22050, channels: 1}

	got := drain(t, s, 3)
	want := []int16{1000, -2000, 3000, -4000}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i, v := range want {
		if w := float32(v) / 32768.0; got[i] != w {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], w)
		}
	}
}

func TestFrameChannels(t *testing.T) {
	t.Parallel()

	// MPEG-2 Layer III, 48 kbps, 22050 Hz
	mono := []byte{0xFF, 0xF3, 0x60, 0xC4}
	stereo := []byte{0xFF, 0xF3, 0x60, 0x04}
	id3 := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 3, 0, 0, 0}

	tests := []struct {
		name string
		head []byte
		want int
	}{
		{name: "mono", head: mono, want: 1},
		{name: "stereo", head: stereo, want: 2},
		{name: "mono after tag", head: append(append([]byte{}, id3...), mono...), want: 1},
		{name: "mono after junk", head: append([]byte{0x00, 0xFF, 0x00}, mono...), want: 1},
		{name: "layer I ignored", head: []byte{0xFF, 0xF7, 0x60, 0xC4}, want: 2},
		{name: "tag past window", head: []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0x7F, 0x7F}, want: 2},
		{name: "empty", head: nil, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := frameChannels(tt.head); got != tt.want {
				t.Errorf("frameChannels() = %d, want %d", got, tt.want)
			}
		})
	}
}

// testdata/speech.mp3 holds the first 60 frames of a mono MPEG-2 recording.
func TestDecoder_MonoFile(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/speech.mp3")
	if err != nil {
		t.Fatal(err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}

	got := drain(t, src.(*source), 1024)

	// 576 samples per MPEG-2 frame
	if len(got) < 50*576 || len(got) > 60*576 {
		t.Errorf("decoded %d samples, want about %d", len(got), 60*576)
	}

	var peak float32
	for _, v := range got {
		peak = max(peak, v, -v)
	}
	if peak < 0.01 {
		t.Errorf("peak = %v, want audible signal", peak)
	}
}
