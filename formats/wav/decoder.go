// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/pcm"
)

// FramesPerPacket is the number of frames read into a single packet.
const FramesPerPacket = 1024

// wavReader is an interface for wav.Decoder to allow testing
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type reader struct {
	dec      wavReader
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

	channels := r.track.Params.Channels
	n, err := r.dec.PCMBuffer(r.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return audio.Packet{}, fmt.Errorf("%w: %w", audio.ErrMalformed, err)
	}

	if errors.Is(err, io.EOF) {
		r.done = true
	}

	// Drop a trailing partial frame
	n -= n % channels
	if n == 0 {
		r.done = true
		return audio.Packet{}, io.EOF
	}

	r.data = pcm.AppendInts(r.data[:0], r.track.Params.Codec, r.intBuf.Data[:n])

	return audio.Packet{
		TrackID: r.track.ID,
		Frames:  n / channels,
		Data:    r.data,
	}, nil
}

// Open reads the RIFF header of rs and returns a reader positioned at the
// first PCM sample. Only integer PCM, plain or WAVE_FORMAT_EXTENSIBLE, is
// decodable; any other layout is reported as a track with audio.CodecNull.
func Open(rs io.ReadSeeker) (audio.FormatReader, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	codec := audio.CodecNull
	if isPCM(rs, dec.WavAudioFormat) {
		codec = pcm.CodecForBitDepth(int(dec.BitDepth))
	}

	meta := audio.NewMetadataLog()
	if rev, ok := revisionFrom(dec.Metadata); ok {
		meta.Push(rev)
	}

	return &reader{
		dec: dec,
		track: audio.Track{
			ID: 0,
			Params: audio.CodecParams{
				Codec:              codec,
				SampleRate:         format.SampleRate,
				Channels:           format.NumChannels,
				BitsPerSample:      int(dec.BitDepth),
				MaxFramesPerPacket: FramesPerPacket,
			},
		},
		metadata: meta,
		intBuf: &goaudio.IntBuffer{
			Data:   make([]int, FramesPerPacket*format.NumChannels),
			Format: format,
		},
	}, nil
}

// fmtExtensible is the fmt chunk of a WAVE_FORMAT_EXTENSIBLE file.
type fmtExtensible struct {
	AudioFormat    uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	ExtraSize      uint16
	ValidBits      uint16
	ChannelMask    uint32
	SubFormat      [16]byte
}

// isPCM reports whether format, as read by the decoder, is integer PCM.
// Extensible files are PCM when their subformat GUID starts with 0x0001.
// rs is left where it was.
func isPCM(rs io.ReadSeeker, format uint16) bool {
	switch format {
	case wavFormatPCM:
		return true
	case wavFormatExtensible:
	default:
		return false
	}

	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return false
	}
	defer rs.Seek(pos, io.SeekStart)

	sub, err := extensibleSubFormat(rs)
	if err != nil {
		return false
	}

	return sub == wavFormatPCM
}

// extensibleSubFormat returns the first two bytes of the subformat GUID
// of the fmt chunk in rs.
func extensibleSubFormat(rs io.ReadSeeker) (uint16, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("wav: rewind: %w", err)
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
		}

		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		var f fmtExtensible
		if ch.Size < binary.Size(f) {
			return 0, fmt.Errorf("%w: %d byte extensible fmt chunk", ErrUnsupportedWavLayout, ch.Size)
		}
		if err := ch.ReadLE(&f); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		return binary.LittleEndian.Uint16(f.SubFormat[:2]), nil
	}
}

func revisionFrom(m *wav.Metadata) (audio.Revision, bool) {
	if m == nil {
		return audio.Revision{}, false
	}

	var tags []audio.Tag
	for _, t := range []audio.Tag{
		{Key: "title", Value: m.Title},
		{Key: "artist", Value: m.Artist},
		{Key: "genre", Value: m.Genre},
	} {
		if t.Value != "" {
			tags = append(tags, t)
		}
	}

	if len(tags) == 0 {
		return audio.Revision{}, false
	}

	return audio.Revision{Tags: tags}, true
}

// Sniff reports whether header starts a RIFF/WAVE file.
func Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.HasPrefix(header, []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE"))
}

// Format is the probe registration for WAV files.
var Format = audio.Format{
	Name:       "wav",
	Extensions: []string{"wav", "wave"},
	Sniff:      Sniff,
	Open:       Open,
}
