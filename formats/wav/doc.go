// SPDX-License-Identifier: EPL-2.0

// Package wav reads RIFF/WAVE containers.
//
// It uses github.com/go-audio/wav to parse the RIFF chunks and exposes the
// file as an audio.FormatReader with a single track (ID 0). Every packet
// holds up to FramesPerPacket frames of interleaved little endian PCM.
//
// # Supported Layouts
//
//   - Integer PCM, 16, 24 or 32 bit
//   - Any channel count and sample rate
//
// Other layouts (8-bit, IEEE float, compressed) still open, but the track
// reports audio.CodecNull so no decoder is picked for it.
//
// # Usage
//
//	f, _ := os.Open("audio.wav")
//	r, err := wav.Open(f)
//	if err != nil {
//	    // Handle error
//	}
//	p, err := r.NextPacket()
//
// Normally the reader is created through an audio.Probe with wav.Format
// registered (see the formats package).
//
// # Metadata
//
// INFO tags (title, artist, genre) found before the data chunk are pushed
// as the first metadata revision.
package wav
