// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotOggFile      = errors.New("not an Ogg file")
	ErrNotVorbisStream = errors.New("not a Vorbis stream")
)
