// SPDX-License-Identifier: EPL-2.0

// Package audcraft loads audio files into resampled, channel-major signals
// ready to attach to documents in a processing pipeline.
//
// # Supported Formats
//
// Formats are recognized from file content, with the file extension as a
// fallback:
//   - WAV (integer PCM, 8 to 32-bit, or 32-bit float) via formats/wav
//   - MP3, mono or stereo, via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC (8, 16 or 24-bit) via formats/flac
//   - AIFF via formats/aiff
//
// # Quick Start
//
//	sig, origRate, err := audcraft.Load("speech.mp3", audcraft.LoadOptions{
//	    TargetRate: 22050,
//	})
//	if errors.Is(err, audcraft.ErrReadFile) {
//	    // missing or unreadable file
//	}
//	if errors.Is(err, audcraft.ErrDecode) {
//	    // not audio, or an unsupported encoding
//	}
//
//	// sig[c] holds channel c at 22050 Hz
//
// All channels are kept unless LoadOptions.Mono is set. The crafter
// subpackage wraps Load as a pipeline component that emits records.
//
// # Audio Processing Pipeline
//
// Load is a thin composition of the audio subpackage:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	resampled := audio.NewResampler(src, 16000)
//	mono := audio.NewMonoMixer(resampled)
//	samples, _ := audio.ReadAll(mono, 4096)
//
// # Writing WAV Files
//
//	pcm := utils.Float32sToInt16s(sig.Interleave())
//	wav.WriteWAV16(out, 22050, sig.Channels(), pcm)
package audcraft
