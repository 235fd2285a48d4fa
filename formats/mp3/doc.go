// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits interleaved stereo and duplicates single-channel
// streams into both sides. The decoder reads the channel mode of the first
// frame header and hands such streams back as one channel.
//
//	source, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // no MPEG frames found
//	}
package mp3
