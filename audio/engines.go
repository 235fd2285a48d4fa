// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Resampler engine names accepted by NewResamplerByName.
const (
	EngineCubic = "cubic"
	EngineHQ    = "hq"
)

// NewResamplerByName wraps src in the named resampling engine.
// An empty name selects EngineCubic.
func NewResamplerByName(name string, src Source, dstRate int) (Source, error) {
	switch name {
	case "", EngineCubic:
		return NewResampler(src, dstRate), nil
	case EngineHQ:
		hq, err := NewHQResampler(src, dstRate)
		if err != nil {
			return nil, err
		}
		return hq, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, name)
	}
}
