// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, so files with extra chunks
// (LIST, fact, cue) and WAVE_FORMAT_EXTENSIBLE headers are accepted.
//
// # Supported Formats
//
//   - Integer PCM, 8, 16, 24 and 32-bit
//   - IEEE float, 32-bit
//   - Plain or WAVE_FORMAT_EXTENSIBLE headers (PCM and float SubFormats)
//   - Any channel count
//   - Any sample rate
//
// Other encodings, 64-bit float included, are rejected with
// ErrUnsupportedEncoding or ErrUnsupportedBitDepth.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are interleaved float32 values in [-1.0, 1.0].
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44-byte header:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 2, samples)
package wav
