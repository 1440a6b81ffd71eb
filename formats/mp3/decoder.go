// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dhowden/tag"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/pcm"
)

const (
	// FramesPerPacket matches the number of samples per channel in one
	// MPEG-1 layer III frame.
	FramesPerPacket = 1152

	// go-mp3 always outputs 16-bit little endian stereo, duplicating
	// single channel streams
	decodedChannels = 2
	bytesPerSample  = 2
	bytesPerFrame   = decodedChannels * bytesPerSample

	// modeSingleChannel is the channel mode of a mono frame header.
	modeSingleChannel = 0x03

	// maxSyncScan bounds the search for the first frame header.
	maxSyncScan = 64 << 10
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type reader struct {
	dec      mp3Reader
	track    audio.Track
	metadata *audio.MetadataLog
	buf      []byte
	done     bool
}

func (r *reader) Tracks() []audio.Track        { return []audio.Track{r.track} }
func (r *reader) Metadata() *audio.MetadataLog { return r.metadata }
func (r *reader) Close() error                 { return nil }

func (r *reader) NextPacket() (audio.Packet, error) {
	if r.done {
		return audio.Packet{}, io.EOF
	}

	n, err := io.ReadFull(r.dec, r.buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		r.done = true
	case err != nil:
		return audio.Packet{}, fmt.Errorf("%w: %w", audio.ErrMalformed, err)
	}

	// Drop a trailing partial frame
	n -= n % bytesPerFrame
	if n == 0 {
		r.done = true
		return audio.Packet{}, io.EOF
	}

	data := r.buf[:n]
	if r.track.Params.Channels == 1 {
		data = pcm.MixToMonoS16LE(data, decodedChannels)
	}

	return audio.Packet{
		TrackID: r.track.ID,
		Frames:  n / bytesPerFrame,
		Data:    data,
	}, nil
}

// newReader wraps dec. channels is the channel count of the stream, 1 or
// 2; mono streams are folded back from the decoder's stereo output.
func newReader(dec mp3Reader, meta *audio.MetadataLog, channels int) *reader {
	return &reader{
		dec: dec,
		track: audio.Track{
			ID: 0,
			Params: audio.CodecParams{
				Codec:              audio.CodecPCMS16LE,
				SampleRate:         dec.SampleRate(),
				Channels:           channels,
				BitsPerSample:      bytesPerSample * 8,
				MaxFramesPerPacket: FramesPerPacket,
			},
		},
		metadata: meta,
		buf:      make([]byte, FramesPerPacket*bytesPerFrame),
	}
}

// Open starts decoding the MPEG stream in rs. Tags found by
// github.com/dhowden/tag become the first metadata revision.
func Open(rs io.ReadSeeker) (audio.FormatReader, error) {
	meta := audio.NewMetadataLog()
	if rev, ok := readTags(rs); ok {
		meta.Push(rev)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("mp3: rewind: %w", err)
	}

	channels := streamChannels(rs)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("mp3: rewind: %w", err)
	}

	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	return newReader(dec, meta, channels), nil
}

func readTags(rs io.ReadSeeker) (audio.Revision, bool) {
	m, err := tag.ReadFrom(rs)
	if err != nil {
		return audio.Revision{}, false
	}

	return tagRevision(m)
}

func tagRevision(m tag.Metadata) (audio.Revision, bool) {
	var tags []audio.Tag
	for _, t := range []audio.Tag{
		{Key: "title", Value: m.Title()},
		{Key: "artist", Value: m.Artist()},
		{Key: "album", Value: m.Album()},
		{Key: "genre", Value: m.Genre()},
	} {
		if t.Value != "" {
			tags = append(tags, t)
		}
	}

	if y := m.Year(); y > 0 {
		tags = append(tags, audio.Tag{Key: "year", Value: strconv.Itoa(y)})
	}

	if len(tags) == 0 {
		return audio.Revision{}, false
	}

	return audio.Revision{Vendor: string(m.Format()), Tags: tags}, true
}

// streamChannels returns the channel count announced by the first frame
// header in r, after an optional ID3v2 tag. Anything it cannot parse
// counts as stereo.
func streamChannels(r io.Reader) int {
	head := make([]byte, 10)
	if _, err := io.ReadFull(r, head); err != nil {
		return decodedChannels
	}

	var buf []byte
	if string(head[:3]) == "ID3" {
		skip := int64(syncsafe(head[6:10]))
		if head[5]&0x10 != 0 {
			skip += 10 // footer
		}
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return decodedChannels
		}
	} else {
		buf = head
	}

	rest := make([]byte, maxSyncScan)
	n, _ := io.ReadFull(r, rest)
	buf = append(buf, rest[:n]...)

	for i := 0; i+4 <= len(buf); i++ {
		if !isFrameHeader(buf[i : i+4]) {
			continue
		}
		if buf[i+3]>>6 == modeSingleChannel {
			return 1
		}

		return decodedChannels
	}

	return decodedChannels
}

func syncsafe(b []byte) int {
	return int(b[0]&0x7f)<<21 | int(b[1]&0x7f)<<14 | int(b[2]&0x7f)<<7 | int(b[3]&0x7f)
}

func isSync(b0, b1 byte) bool {
	// layer bits: 01 is layer III
	return b0 == 0xff && b1&0xe0 == 0xe0 && (b1>>1)&0x03 == 0x01
}

// isFrameHeader reports whether h starts a layer III frame header with a
// valid version, bitrate and sample rate.
func isFrameHeader(h []byte) bool {
	return isSync(h[0], h[1]) &&
		(h[1]>>3)&0x03 != 0x01 &&
		h[2]>>4 != 0x0f &&
		(h[2]>>2)&0x03 != 0x03
}

// Sniff reports whether header starts with an ID3v2 tag or a layer III
// frame sync word.
func Sniff(header []byte) bool {
	if len(header) >= 3 && string(header[:3]) == "ID3" {
		return true
	}

	return len(header) >= 2 && isSync(header[0], header[1])
}

// Format is the probe registration for MP3 files.
var Format = audio.Format{
	Name:       "mp3",
	Extensions: []string{"mp3"},
	Sniff:      Sniff,
	Open:       Open,
}
