// SPDX-License-Identifier: EPL-2.0

package audcraft

import (
	"errors"
	"fmt"
)

var (
	// ErrReadFile marks failures to open or read the audio file itself.
	ErrReadFile = errors.New("cannot read audio file")

	// ErrDecode marks content that is not decodable audio.
	ErrDecode = errors.New("cannot decode audio")

	// ErrUnsupportedFormat is returned when neither the content nor the
	// file name identify a registered format. It matches ErrDecode.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format", ErrDecode)
)
