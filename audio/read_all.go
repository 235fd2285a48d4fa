// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads are tolerated from a source.
const maxEmptyReads = 64

// ReadAll drains src and returns every interleaved sample it produced.
//
// bufferSize is rounded down to a whole number of frames; values smaller than
// one frame are raised to one frame. io.EOF is not reported as an error.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	channels := max(src.Channels(), 1)
	bufferSize -= bufferSize % channels
	if bufferSize < channels {
		bufferSize = channels
	}

	buf := make([]float32, bufferSize)
	out := make([]float32, 0, bufferSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		}

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return out, ErrNoProgress
			}
		}
	}
}
