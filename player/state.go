// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"io"

	"github.com/ik5/audviz/audio"
)

// State is one of Ready, Playing or Halted.
type State interface {
	state()
	String() string
}

// Ready is the initial state; nothing has been opened yet.
type Ready struct{}

// Playing owns the opened source. It is entered once.
type Playing struct {
	Data *PlayerData
}

// Halted is final. Err is the error that stopped playback.
type Halted struct {
	Err error
}

func (Ready) state()   {}
func (Playing) state() {}
func (Halted) state()  {}

func (Ready) String() string   { return "ready" }
func (Playing) String() string { return "playing" }
func (Halted) String() string  { return "halted" }

// PlayerData is everything needed to pull and decode packets of the
// selected track. It is only built complete, by Open.
type PlayerData struct {
	reader  audio.FormatReader
	decoder audio.Decoder
	trackID uint32
	source  io.Closer
}

// TrackID is the ID of the selected track.
func (d *PlayerData) TrackID() uint32 { return d.trackID }

// Params are the codec parameters of the selected track.
func (d *PlayerData) Params() audio.CodecParams { return d.decoder.Params() }

// Close releases the reader and the underlying source.
func (d *PlayerData) Close() error {
	err := d.reader.Close()
	if d.source != nil {
		err = errors.Join(err, d.source.Close())
	}

	return err
}
