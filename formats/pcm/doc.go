// SPDX-License-Identifier: EPL-2.0

// Package pcm provides the codec decoders used by every container in this
// module.
//
// Container readers emit packets whose payload is interleaved little endian
// PCM: signed 16, 24 or 32 bit integers, or IEEE float32. The decoder
// returned by NewDecoder converts such a packet into a planar audio.Frame
// with samples normalised to [-1.0, 1.0].
//
//	codecs := audio.NewCodecRegistry()
//	pcm.Register(codecs)
//	dec, err := codecs.Make(track.Params)
//
// The frame capacity of a decoder is the track's MaxFramesPerPacket and
// never changes. Packets larger than that are rejected with
// audio.ErrMalformedPacket.
package pcm
