// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownResampler is returned by NewResamplerByName for an unregistered engine name.
	ErrUnknownResampler = errors.New("unknown resampler")

	// ErrNoProgress is returned when a source keeps returning zero samples without an error.
	ErrNoProgress = errors.New("source returned no samples repeatedly")
)
