// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/pcm"
	"github.com/jfreymuth/oggvorbis"
)

// FramesPerPacket is the largest number of frames put in one packet.
// Vorbis blocks are often shorter, so packets vary in size.
const FramesPerPacket = 1024

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type reader struct {
	dec      oggReader
	track    audio.Track
	metadata *audio.MetadataLog
	samples  []float32
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

	// oggvorbis returns the number of float32 values, always a multiple
	// of the channel count. It may return 0 between blocks.
	var (
		n   int
		err error
	)
	for n == 0 && err == nil {
		n, err = r.dec.Read(r.samples)
	}

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

	r.data = pcm.AppendFloats(r.data[:0], r.samples[:n])

	return audio.Packet{
		TrackID: r.track.ID,
		Frames:  n / channels,
		Data:    r.data,
	}, nil
}

func newReader(dec oggReader, serial uint32, meta *audio.MetadataLog) *reader {
	return &reader{
		dec: dec,
		track: audio.Track{
			ID: serial,
			Params: audio.CodecParams{
				Codec:              audio.CodecPCMF32LE,
				SampleRate:         dec.SampleRate(),
				Channels:           dec.Channels(),
				BitsPerSample:      32,
				MaxFramesPerPacket: FramesPerPacket,
			},
		},
		metadata: meta,
		samples:  make([]float32, FramesPerPacket*dec.Channels()),
	}
}

// Open reads the Vorbis headers from rs. The track ID is the bitstream
// serial number of the first Ogg page.
func Open(rs io.ReadSeeker) (audio.FormatReader, error) {
	header := make([]byte, 18)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOggFile, err)
	}

	if !Sniff(header) {
		return nil, ErrNotOggFile
	}
	serial := binary.LittleEndian.Uint32(header[14:18])

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("vorbis: rewind: %w", err)
	}

	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	if dec.Channels() < 1 {
		return nil, ErrNotVorbisStream
	}

	meta := audio.NewMetadataLog()
	ch := dec.CommentHeader()
	meta.Push(commentRevision(ch.Vendor, ch.Comments))

	return newReader(dec, serial, meta), nil
}

// commentRevision turns "KEY=value" Vorbis comments into tags with
// lower case keys.
func commentRevision(vendor string, comments []string) audio.Revision {
	rev := audio.Revision{Vendor: vendor}
	for _, c := range comments {
		key, value, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		rev.Tags = append(rev.Tags, audio.Tag{Key: strings.ToLower(key), Value: value})
	}

	return rev
}

// Sniff reports whether header starts an Ogg page.
func Sniff(header []byte) bool {
	return bytes.HasPrefix(header, []byte("OggS"))
}

// Format is the probe registration for Ogg Vorbis files.
var Format = audio.Format{
	Name:       "ogg vorbis",
	Extensions: []string{"ogg", "oga"},
	Sniff:      Sniff,
	Open:       Open,
}
