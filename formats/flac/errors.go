// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

// ErrNotFlacFile indicates the stream has no valid FLAC header, or one
// describing a layout the decoder cannot unpack.
var ErrNotFlacFile = errors.New("not a FLAC file")
