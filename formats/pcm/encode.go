// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audviz/audio"
)

// AppendInts appends integer samples to dst in the little endian layout of
// codec. Format readers use it to build packets from go-audio IntBuffers.
func AppendInts(dst []byte, codec audio.CodecType, samples []int) []byte {
	for _, s := range samples {
		switch codec {
		case audio.CodecPCMS16LE:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(int16(s)))
		case audio.CodecPCMS24LE:
			v := uint32(int32(s))
			dst = append(dst, byte(v), byte(v>>8), byte(v>>16))
		case audio.CodecPCMS32LE:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(int32(s)))
		}
	}

	return dst
}

// AppendFloats appends float32 samples to dst as pcm_f32le.
func AppendFloats(dst []byte, samples []float32) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s))
	}

	return dst
}
