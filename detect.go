// SPDX-License-Identifier: EPL-2.0

package audcraft

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Registry keys for the built-in decoders.
const (
	FormatWAV  = "wav"
	FormatMP3  = "mp3"
	FormatOgg  = "ogg"
	FormatFLAC = "flac"
	FormatAIFF = "aiff"
)

// sniffLen is how much of the file head is handed to content detection.
const sniffLen = 3072

var mimeFormats = []struct {
	mime   string
	format string
}{
	{"audio/wav", FormatWAV},
	{"audio/mpeg", FormatMP3},
	{"audio/flac", FormatFLAC},
	{"audio/aiff", FormatAIFF},
	{"audio/ogg", FormatOgg},
	{"application/ogg", FormatOgg},
}

var extFormats = map[string]string{
	"wav":  FormatWAV,
	"wave": FormatWAV,
	"mp3":  FormatMP3,
	"ogg":  FormatOgg,
	"oga":  FormatOgg,
	"flac": FormatFLAC,
	"aif":  FormatAIFF,
	"aiff": FormatAIFF,
	"aifc": FormatAIFF,
}

// Detect picks a decoder key for a file from its first bytes, falling back
// to the extension of name when the content is not recognized as audio.
func Detect(head []byte, name string) (string, error) {
	mt := mimetype.Detect(head)
	for m := mt; m != nil; m = m.Parent() {
		for _, f := range mimeFormats {
			if m.Is(f.mime) {
				return f.format, nil
			}
		}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if format, ok := extFormats[ext]; ok {
		return format, nil
	}

	return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, filepath.Base(name), mt.String())
}
