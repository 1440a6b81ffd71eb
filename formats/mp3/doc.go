// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MPEG-1/2 layer III streams.
//
// This package uses github.com/hajimehoshi/go-mp3, which decodes the
// stream to 16-bit little endian stereo PCM. That output is cut into
// packets of FramesPerPacket frames (the size of one layer III frame) on
// a single track with ID 0 and codec audio.CodecPCMS16LE.
//
// # Output Format
//
//   - Channels: taken from the channel mode of the first frame header.
//     go-mp3 duplicates mono into stereo; such packets are folded back to
//     one channel.
//   - Sample rate: depends on the file (typically 44.1kHz or 48kHz)
//
// # Metadata
//
// Title, artist, album, genre and year are read with
// github.com/dhowden/tag and published as the first metadata revision,
// with the tag format (e.g. "ID3v2.4") as vendor.
//
// # Limitations
//
//   - Only decoding is supported
//   - Packets do not map one to one to MPEG frames on disk
package mp3
