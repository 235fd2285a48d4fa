// SPDX-License-Identifier: EPL-2.0

// Package crafter turns audio file references into pipeline records.
//
// An AudioReader receives the raw bytes of a file path together with a
// document identifier, decodes the file with every channel kept, resamples
// it to the configured rate and returns a Record:
//
//	r := crafter.NewAudioReader(crafter.DefaultConfig())
//	rec, err := r.Craft([]byte("/data/clip.wav"), 42)
//	switch {
//	case errors.Is(err, crafter.ErrInvalidReference):
//	case errors.Is(err, crafter.ErrUnreadable):
//	case errors.Is(err, crafter.ErrFormat):
//	}
//
// rec.Signal[c] holds channel c at Config.TargetSampleRate. Offset is always
// 0 and Weight always 1.0.
//
// AudioReader keeps no state between calls and is safe for concurrent use.
package crafter
