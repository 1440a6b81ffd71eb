// SPDX-License-Identifier: EPL-2.0

package pcm

import "encoding/binary"

// MixToMonoS16LE averages the channels of every frame of interleaved
// pcm_s16le data into a single sample. data is rewritten in place and the
// mono prefix is returned. A trailing partial frame is dropped.
func MixToMonoS16LE(data []byte, channels int) []byte {
	if channels <= 1 {
		return data
	}

	frames := len(data) / (channels * 2)

	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 2 // f * 4
			l := int32(int16(binary.LittleEndian.Uint16(data[idx:])))
			r := int32(int16(binary.LittleEndian.Uint16(data[idx+2:])))
			binary.LittleEndian.PutUint16(data[f<<1:], uint16(int16((l+r)/2)))
		}
	default: // Generic path
		for f := range frames {
			sum := int32(0)
			baseIdx := f * channels * 2
			for c := range channels {
				sum += int32(int16(binary.LittleEndian.Uint16(data[baseIdx+c*2:])))
			}
			binary.LittleEndian.PutUint16(data[f<<1:], uint16(int16(sum/int32(channels))))
		}
	}

	return data[:frames*2]
}
