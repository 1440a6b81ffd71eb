// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WriteWAV16 writes a 16-bit PCM WAV with interleaved samples.
func WriteWAV16(w io.Writer, sampleRate, channels int, samples []int16) error {
	return WriteWAV(w, sampleRate, channels, 16, PCM16Bytes(samples))
}

// WriteWAV writes a canonical 44 byte header followed by data, which must
// already be interleaved little endian PCM of bitsPerSample.
func WriteWAV(w io.Writer, sampleRate, channels, bitsPerSample int, data []byte) error {
	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(data))
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bits)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAVExtensible writes a WAVE_FORMAT_EXTENSIBLE file with a 40 byte
// fmt chunk. subFormat is the leading tag of the subformat GUID: 1 for
// integer PCM, 3 for IEEE float.
func WriteWAVExtensible(w io.Writer, sampleRate, channels, bitsPerSample int, subFormat uint16, data []byte) error {
	blockAlign := channels * bitsPerSample / 8

	header := make([]byte, 0, 68)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(60+len(data)))
	header = append(header, "WAVE"...)

	header = append(header, "fmt "...)
	header = binary.LittleEndian.AppendUint32(header, 40)
	header = binary.LittleEndian.AppendUint16(header, 0xfffe)
	header = binary.LittleEndian.AppendUint16(header, uint16(channels))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate*blockAlign))
	header = binary.LittleEndian.AppendUint16(header, uint16(blockAlign))
	header = binary.LittleEndian.AppendUint16(header, uint16(bitsPerSample))
	header = binary.LittleEndian.AppendUint16(header, 22) // extension size
	header = binary.LittleEndian.AppendUint16(header, uint16(bitsPerSample))
	header = binary.LittleEndian.AppendUint32(header, 0) // channel mask
	header = binary.LittleEndian.AppendUint16(header, subFormat)
	// rest of the KSDATAFORMAT_SUBTYPE GUID
	header = append(header, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71)

	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(data)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// PCM24Bytes encodes samples as little endian 24-bit integers.
func PCM24Bytes(samples []int32) []byte {
	out := make([]byte, 0, len(samples)*3)
	for _, s := range samples {
		v := uint32(s)
		out = append(out, byte(v), byte(v>>8), byte(v>>16))
	}

	return out
}

// PCM16Bytes encodes samples as little endian int16.
func PCM16Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}

	return out
}

// WAV16Bytes returns a complete 16-bit WAV file in memory.
func WAV16Bytes(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)
	// bytes.Buffer writes never fail
	_ = WriteWAV16(buf, sampleRate, channels, samples)

	return buf.Bytes()
}

// Tone returns frames of a sine wave at frequency Hz, quantised to int16 and
// duplicated on every channel.
func Tone(sampleRate, channels, frames int, frequency float64) []int16 {
	out := make([]int16, frames*channels)
	for i := range frames {
		t := float64(i) / float64(sampleRate)
		v := Quantize16(float32(math.Sin(2 * math.Pi * frequency * t)))
		for ch := range channels {
			out[i*channels+ch] = v
		}
	}

	return out
}

// Quantize16 converts a float sample to int16, clamping to [-1, 1].
func Quantize16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// WriteFile writes data into a file called name inside a per-test temp dir
// and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}
