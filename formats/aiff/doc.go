// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding via github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Uncompressed AIFF, 8, 16, 24 and 32-bit samples
//   - Any channel count and sample rate
//
// Compressed AIFF-C variants are rejected.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth or ErrUnsupportedAiffLayout
//	}
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory first.
package aiff
