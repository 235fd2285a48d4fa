// SPDX-License-Identifier: EPL-2.0

package audio

// Signal is decoded audio in channel-major layout: Signal[c][i] is sample i of channel c.
// Every channel has the same length.
type Signal [][]float32

// Deinterleave splits interleaved samples into a Signal with the given channel count.
// A trailing partial frame is dropped.
func Deinterleave(samples []float32, channels int) Signal {
	if channels < 1 {
		return nil
	}

	frames := len(samples) / channels
	sig := make(Signal, channels)
	for c := range channels {
		sig[c] = make([]float32, frames)
	}

	if channels == 1 {
		copy(sig[0], samples[:frames])
		return sig
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			sig[c][f] = samples[base+c]
		}
	}

	return sig
}

// Channels returns the number of channels.
func (s Signal) Channels() int { return len(s) }

// Frames returns the number of samples per channel.
func (s Signal) Frames() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Interleave flattens the signal back to frame-interleaved order.
func (s Signal) Interleave() []float32 {
	channels := s.Channels()
	frames := s.Frames()
	out := make([]float32, frames*channels)

	for c, ch := range s {
		for f := range frames {
			out[f*channels+c] = ch[f]
		}
	}

	return out
}
