// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/pcm"
)

// FramesPerPacket is the number of frames read into a single packet.
const FramesPerPacket = 1024

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// reader wraps go-audio aiff.Decoder to implement audio.FormatReader
type reader struct {
	dec      aiffReader
	track    audio.Track
	metadata *audio.MetadataLog
	intBuf   *goaudio.IntBuffer
	data     []byte
	done     bool
}

func (r *reader) Tracks() []audio.Track        { return []audio.Track{r.track} }
func (r *reader) Metadata() *audio.MetadataLog { return r.metadata }
func (r *reader) Close() error                 { return nil }

func (r *reader) NextPacket() (audio.Packet, error) {
	if r.done {
		return audio.Packet{}, io.EOF
	}

	n, err := r.dec.PCMBuffer(r.intBuf)
	switch {
	case errors.Is(err, io.EOF):
		r.done = true
	case err != nil:
		return audio.Packet{}, fmt.Errorf("%w: %w", audio.ErrMalformed, err)
	}

	channels := r.track.Params.Channels
	n -= n % channels
	if n == 0 {
		r.done = true
		return audio.Packet{}, io.EOF
	}

	// go-audio already converted the big endian samples to ints
	r.data = pcm.AppendInts(r.data[:0], r.track.Params.Codec, r.intBuf.Data[:n])

	return audio.Packet{
		TrackID: r.track.ID,
		Frames:  n / channels,
		Data:    r.data,
	}, nil
}

// Open parses the FORM header of rs. Sample sizes other than 16, 24 and
// 32 bit open with an audio.CodecNull track.
func Open(rs io.ReadSeeker) (audio.FormatReader, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &reader{
		dec: dec,
		track: audio.Track{
			ID: 0,
			Params: audio.CodecParams{
				Codec:              pcm.CodecForBitDepth(int(dec.BitDepth)),
				SampleRate:         format.SampleRate,
				Channels:           format.NumChannels,
				BitsPerSample:      int(dec.BitDepth),
				MaxFramesPerPacket: FramesPerPacket,
			},
		},
		metadata: audio.NewMetadataLog(),
		intBuf: &goaudio.IntBuffer{
			Data:   make([]int, FramesPerPacket*format.NumChannels),
			Format: format,
		},
	}, nil
}

// Sniff reports whether header starts an AIFF or AIFF-C file.
func Sniff(header []byte) bool {
	if len(header) < 12 || !bytes.HasPrefix(header, []byte("FORM")) {
		return false
	}

	kind := header[8:12]
	return bytes.Equal(kind, []byte("AIFF")) || bytes.Equal(kind, []byte("AIFC"))
}

// Format is the probe registration for AIFF files.
var Format = audio.Format{
	Name:       "aiff",
	Extensions: []string{"aiff", "aif", "aifc"},
	Sniff:      Sniff,
	Open:       Open,
}
