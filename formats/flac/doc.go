// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files using github.com/tphakala/flac.
//
// Samples of 8, 16 and 24 bits are unpacked frame by frame and exposed
// as an audio.Source of interleaved float32 values in [-1.0, 1.0].
package flac
