// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"

	"github.com/ik5/audviz/audio"
)

// Initialization errors.
var (
	ErrUnreadableSource  = errors.New("unreadable source")
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
	ErrNoSupportedTrack  = errors.New("no supported audio track")
	ErrUnsupportedCodec  = audio.ErrUnsupportedCodec
)

// Stream errors.
var (
	ErrIOFailure     = errors.New("i/o failure")
	ErrDecodeFailure = errors.New("decode failure")
	ErrTrackMismatch = errors.New("packet belongs to another track")
)

// ErrClosed is returned by Tick after Close.
var ErrClosed = errors.New("player closed")

// InitError is returned when a source could not be opened for playback.
type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %q: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// StreamError is returned when reading or decoding a packet failed.
type StreamError struct {
	// Tick is the 1-based index of the playing tick that failed.
	Tick uint64
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }
