// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNotMP3Stream indicates go-mp3 could not find a valid frame
	ErrNotMP3Stream = errors.New("not an MPEG audio stream")
)
