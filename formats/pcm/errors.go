// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrNotPCM            = errors.New("not a PCM codec")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
