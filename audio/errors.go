// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedCodec  = errors.New("unsupported codec")

	// ErrMalformed is wrapped by format readers when container framing is broken.
	ErrMalformed = errors.New("malformed container data")

	ErrMalformedPacket  = errors.New("packet payload does not match codec")
	ErrCapacityExceeded = errors.New("frame exceeds sample buffer capacity")
	ErrSpecMismatch     = errors.New("frame spec does not match sample buffer spec")
)
