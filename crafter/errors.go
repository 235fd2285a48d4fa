// SPDX-License-Identifier: EPL-2.0

package crafter

import (
	"errors"

	"github.com/ik5/audcraft"
)

var (
	// ErrInvalidReference is returned when the payload is not a usable path:
	// empty, not valid UTF-8, or containing a NUL byte.
	ErrInvalidReference = errors.New("invalid audio reference")

	// ErrUnreadable is returned when the referenced file is missing or unreadable.
	ErrUnreadable = audcraft.ErrReadFile

	// ErrFormat is returned when the file content is not decodable audio.
	ErrFormat = audcraft.ErrDecode
)
