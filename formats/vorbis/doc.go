// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
// Mono, stereo and multi-channel streams at any sample rate are supported;
// samples keep the stream's channel order.
//
//	source, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbisStream) {
//	    // not Ogg, or Ogg carrying another codec such as Opus
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
package vorbis
