// SPDX-License-Identifier: EPL-2.0

package audcraft

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audcraft/formats/wav"
)

func TestDetect_Content(t *testing.T) {
	t.Parallel()

	wavData := new(bytes.Buffer)
	if err := wav.WriteWAV16(wavData, 8000, 1, make([]int16, 64)); err != nil {
		t.Fatal(err)
	}

	aiffHead := append([]byte("FORM\x00\x00\x00\x2eAIFFCOMM"), make([]byte, 32)...)

	tests := []struct {
		name string
		head []byte
		file string
		want string
	}{
		{name: "wav content beats extension", head: wavData.Bytes(), file: "clip.mp3", want: FormatWAV},
		{name: "flac magic", head: append([]byte("fLaC\x00\x00\x00\x22"), make([]byte, 34)...), file: "x.bin", want: FormatFLAC},
		{name: "mp3 with ID3 tag", head: append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 32)...), file: "noext", want: FormatMP3},
		{name: "aiff", head: aiffHead, file: "noext", want: FormatAIFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Detect(tt.head, tt.file)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_ExtensionFallback(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/tmp/a.wav":    FormatWAV,
		"/tmp/a.WAVE":   FormatWAV,
		"song.MP3":      FormatMP3,
		"voice.oga":     FormatOgg,
		"lossless.flac": FormatFLAC,
		"old.aif":       FormatAIFF,
	}

	for name, want := range tests {
		got, err := Detect([]byte("plain text that is not audio"), name)
		if err != nil {
			t.Errorf("Detect(%q) error = %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("Detect(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestDetect_Unsupported(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"notes.txt", "noext", ""} {
		_, err := Detect([]byte("hello world"), name)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Detect(%q) error = %v, want ErrUnsupportedFormat", name, err)
		}
		if !errors.Is(err, ErrDecode) {
			t.Errorf("Detect(%q) error = %v, should also match ErrDecode", name, err)
		}
	}
}
