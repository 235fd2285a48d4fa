// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	resampling "github.com/tphakala/go-audio-resampling"
)

// HQResampler converts src to dstRate with the polyphase resampler from
// go-audio-resampling. It trades latency and CPU for lower aliasing than
// Resampler. When rates already match samples are passed through untouched.
//
// Every channel runs through its own filter. For a source of N frames the
// output holds ceil(N * dstRate / srcRate) frames, like Resampler: the
// filter tail is flushed at end of stream and trimmed or padded with silence
// to that length.
type HQResampler struct {
	src      Source
	engines  []*resampling.SimpleResampler // one per channel, nil when passing through
	srcRate  int
	dstRate  int
	channels int

	in    []float32
	carry [][]float64 // resampled samples not yet interleaved

	pending   []float32
	framesIn  int64
	framesOut int64
	eof       bool
}

func NewHQResampler(src Source, dstRate int) (*HQResampler, error) {
	channels := max(src.Channels(), 1)

	chunk := max(src.BufSize(), 4096)
	chunk -= chunk % channels

	h := &HQResampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		channels: channels,
		in:       make([]float32, chunk),
	}

	if h.srcRate != dstRate {
		h.engines = make([]*resampling.SimpleResampler, channels)
		h.carry = make([][]float64, channels)

		for c := range channels {
			rs, err := resampling.NewEngine(float64(h.srcRate), float64(dstRate), resampling.QualityHigh)
			if err != nil {
				return nil, fmt.Errorf("create hq resampler: %w", err)
			}
			h.engines[c] = rs
		}
	}

	return h, nil
}

func (h *HQResampler) SampleRate() int { return h.dstRate }
func (h *HQResampler) Channels() int   { return h.channels }
func (h *HQResampler) BufSize() int    { return len(h.in) }

func (h *HQResampler) Close() error {
	err := h.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// expectedFrames is the output length owed for the input consumed so far.
func (h *HQResampler) expectedFrames() int64 {
	num := h.framesIn * int64(h.dstRate)
	den := int64(h.srcRate)
	return (num + den - 1) / den
}

// interleave moves up to limit-framesOut whole frames from carry to pending.
func (h *HQResampler) interleave(limit int64) {
	frames := len(h.carry[0])
	for _, ch := range h.carry[1:] {
		frames = min(frames, len(ch))
	}
	frames = int(min(int64(frames), max(limit-h.framesOut, 0)))
	if frames == 0 {
		return
	}

	for f := range frames {
		for c := range h.channels {
			h.pending = append(h.pending, float32(h.carry[c][f]))
		}
	}
	for c := range h.channels {
		h.carry[c] = h.carry[c][frames:]
	}
	h.framesOut += int64(frames)
}

// finish flushes every channel filter and settles the output length.
func (h *HQResampler) finish() error {
	for c, rs := range h.engines {
		tail, err := rs.Flush()
		if err != nil {
			return fmt.Errorf("resample flush: %w", err)
		}
		h.carry[c] = append(h.carry[c], tail...)
	}

	limit := h.expectedFrames()
	h.interleave(limit)

	// Short filter output is padded with silence
	for ; h.framesOut < limit; h.framesOut++ {
		for range h.channels {
			h.pending = append(h.pending, 0)
		}
	}

	for c := range h.carry {
		h.carry[c] = nil
	}

	return nil
}

// fill pulls one chunk from the source through the channel filters into
// pending. It reports how many source samples were consumed.
func (h *HQResampler) fill() (int, error) {
	n, err := h.src.ReadSamples(h.in)
	n -= n % h.channels

	if n > 0 {
		if h.engines == nil {
			h.pending = append(h.pending, h.in[:n]...)
		} else {
			frames := n / h.channels
			h.framesIn += int64(frames)

			for c := range h.channels {
				// The filter keeps a history of its input, so every chunk gets a fresh plane
				plane := make([]float64, frames)
				for f := range frames {
					plane[f] = float64(h.in[f*h.channels+c])
				}

				out, perr := h.engines[c].Process(plane)
				if perr != nil {
					return n, fmt.Errorf("resample: %w", perr)
				}
				h.carry[c] = append(h.carry[c], out...)
			}

			// Frames past the current length estimate wait in carry until
			// more input arrives or the stream ends.
			h.interleave(h.expectedFrames())
		}
	}

	if err == io.EOF {
		h.eof = true
		if h.engines != nil {
			return n, h.finish()
		}
		return n, nil
	}
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

func (h *HQResampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%h.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	empty := 0
	for len(h.pending) < h.channels && !h.eof {
		n, err := h.fill()
		if err != nil {
			return 0, err
		}
		if n == 0 && !h.eof {
			empty++
			if empty >= maxEmptyReads {
				return 0, ErrNoProgress
			}
		}
	}

	// Hand out whole frames only
	avail := len(h.pending) - len(h.pending)%h.channels
	n := copy(dst, h.pending[:avail])
	h.pending = h.pending[n:]

	if h.eof && len(h.pending) < h.channels {
		h.pending = nil
		return n, io.EOF
	}

	return n, nil
}
