// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF and AIFF-C containers.
//
// This package uses github.com/go-audio/aiff to parse the FORM chunks. The
// big endian samples are handed out as packets of little endian PCM, up to
// FramesPerPacket frames each, on a single track with ID 0.
//
// Sample sizes of 16, 24 and 32 bit are decodable. Any other size opens
// with an audio.CodecNull track.
//
//	f, _ := os.Open("audio.aiff")
//	r, err := aiff.Open(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // Handle error
//	}
package aiff
