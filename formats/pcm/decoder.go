// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/audviz/audio"
)

// DefaultFramesPerPacket is used when a track does not report a packet size.
const DefaultFramesPerPacket = 1152

type decoder struct {
	params         audio.CodecParams
	bytesPerSample int
	frame          *audio.Frame
}

func (d *decoder) Params() audio.CodecParams { return d.params }

func (d *decoder) Decode(p audio.Packet) (*audio.Frame, error) {
	channels := d.params.Channels
	if p.Frames < 0 || p.Frames > d.frame.Capacity() {
		return nil, fmt.Errorf("%w: %d frames, max %d",
			audio.ErrMalformedPacket, p.Frames, d.frame.Capacity())
	}

	want := p.Frames * channels * d.bytesPerSample
	if len(p.Data) != want {
		return nil, fmt.Errorf("%w: %s payload is %d bytes, want %d",
			audio.ErrMalformedPacket, d.params.Codec, len(p.Data), want)
	}

	planes := d.frame.Render(p.Frames)
	step := channels * d.bytesPerSample
	for i := range p.Frames {
		for ch := range channels {
			off := i*step + ch*d.bytesPerSample
			planes[ch][i] = d.sample(p.Data[off : off+d.bytesPerSample])
		}
	}

	return d.frame, nil
}

func (d *decoder) sample(b []byte) float32 {
	switch d.params.Codec {
	case audio.CodecPCMS16LE:
		return float32(int16(binary.LittleEndian.Uint16(b))) / 32768.0
	case audio.CodecPCMS24LE:
		v := int32(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
		// sign extend from 24 bits
		v = (v << 8) >> 8
		return float32(v) / 8388608.0
	case audio.CodecPCMS32LE:
		return float32(float64(int32(binary.LittleEndian.Uint32(b))) / 2147483648.0)
	case audio.CodecPCMF32LE:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	}

	return 0
}

// NewDecoder builds a PCM decoder for params. It is an audio.DecoderFactory.
func NewDecoder(params audio.CodecParams) (audio.Decoder, error) {
	bps, ok := BytesPerSample(params.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotPCM, params.Codec)
	}

	if params.Channels < 1 {
		return nil, ErrInvalidChannels
	}

	if params.SampleRate < 1 {
		return nil, ErrInvalidSampleRate
	}

	if params.MaxFramesPerPacket < 1 {
		params.MaxFramesPerPacket = DefaultFramesPerPacket
	}

	return &decoder{
		params:         params,
		bytesPerSample: bps,
		frame:          audio.NewFrame(params.MaxFramesPerPacket, params.Spec()),
	}, nil
}

// BytesPerSample returns the width of a single sample of codec.
func BytesPerSample(codec audio.CodecType) (int, bool) {
	switch codec {
	case audio.CodecPCMS16LE:
		return 2, true
	case audio.CodecPCMS24LE:
		return 3, true
	case audio.CodecPCMS32LE, audio.CodecPCMF32LE:
		return 4, true
	}

	return 0, false
}

// CodecForBitDepth maps an integer PCM bit depth to its codec, or
// audio.CodecNull when the depth is not supported.
func CodecForBitDepth(bits int) audio.CodecType {
	switch bits {
	case 16:
		return audio.CodecPCMS16LE
	case 24:
		return audio.CodecPCMS24LE
	case 32:
		return audio.CodecPCMS32LE
	}

	return audio.CodecNull
}

// Register adds every PCM codec to r.
func Register(r *audio.CodecRegistry) {
	for _, c := range []audio.CodecType{
		audio.CodecPCMS16LE,
		audio.CodecPCMS24LE,
		audio.CodecPCMS32LE,
		audio.CodecPCMF32LE,
	} {
		r.Register(c, NewDecoder)
	}
}
