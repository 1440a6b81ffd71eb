// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg Vorbis files.
//
// This package uses github.com/jfreymuth/oggvorbis to decode the stream.
// Decoded blocks are handed out as audio.CodecPCMF32LE packets of at most
// FramesPerPacket frames; block sizes vary, so packets do too.
//
// The single track uses the Ogg bitstream serial number as its ID, and
// the comment header (vendor plus KEY=value comments) is published as the
// first metadata revision.
//
//	f, _ := os.Open("audio.ogg")
//	r, err := vorbis.Open(f)
//	if err != nil {
//	    // Handle error
//	}
//	rev, _ := r.Metadata().Current()
package vorbis
