// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Spec describes the layout of decoded audio.
type Spec struct {
	// Rate in Hz.
	Rate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
}

func (s Spec) String() string {
	return fmt.Sprintf("%d Hz, %d ch", s.Rate, s.Channels)
}

// CodecType identifies how the payload of a Packet is encoded.
type CodecType uint32

const (
	// CodecNull marks a track nothing in this module can decode.
	CodecNull CodecType = iota
	CodecPCMS16LE
	CodecPCMS24LE
	CodecPCMS32LE
	CodecPCMF32LE
)

func (c CodecType) String() string {
	switch c {
	case CodecNull:
		return "null"
	case CodecPCMS16LE:
		return "pcm_s16le"
	case CodecPCMS24LE:
		return "pcm_s24le"
	case CodecPCMS32LE:
		return "pcm_s32le"
	case CodecPCMF32LE:
		return "pcm_f32le"
	}

	return fmt.Sprintf("codec(%d)", uint32(c))
}

// CodecParams carries what a decoder needs to be built for a track.
type CodecParams struct {
	Codec              CodecType
	SampleRate         int
	Channels           int
	BitsPerSample      int
	MaxFramesPerPacket int
}

// Spec returns the audio spec implied by the codec parameters.
func (p CodecParams) Spec() Spec {
	return Spec{Rate: p.SampleRate, Channels: p.Channels}
}

// Track is one elementary stream inside a container.
type Track struct {
	ID     uint32
	Params CodecParams
}

// Packet is one container level chunk of encoded data for a single track.
type Packet struct {
	TrackID uint32
	// Frames is the number of audio frames encoded in Data.
	Frames int
	// Data may be reused by the reader; it is only valid until the next
	// call to NextPacket.
	Data []byte
}

// FormatReader demultiplexes a container into packets.
type FormatReader interface {
	// Tracks lists every track found in the container.
	Tracks() []Track
	// NextPacket returns the next packet. At the end of the stream it
	// returns io.EOF. Errors wrapping ErrMalformed mean the container
	// framing could not be parsed.
	NextPacket() (Packet, error)
	// Metadata returns the metadata revisions read so far.
	Metadata() *MetadataLog
	// Close releases any resources.
	Close() error
}

// Decoder turns packets of a single track into decoded frames.
type Decoder interface {
	// Params returns the parameters the decoder was built from.
	Params() CodecParams
	// Decode decodes p. The returned frame is owned by the decoder and is
	// only valid until the next call to Decode.
	Decode(p Packet) (*Frame, error)
}

// Hint gives the probe a starting point when sniffing is not conclusive.
type Hint struct {
	// Extension without the leading dot (e.g., "mp3").
	Extension string
}
