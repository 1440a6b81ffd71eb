// SPDX-License-Identifier: EPL-2.0

// Package audio defines the types shared by container readers, codecs and
// the player.
//
// Decoding is split in two stages:
//   - A FormatReader parses a container and yields Packets, each tagged
//     with the ID of the Track it belongs to.
//   - A Decoder turns the packets of one track into planar Frames.
//
// # Probing
//
// A Probe holds the known container formats. Probe.Format matches the
// leading bytes of a stream against every registered format and falls
// back to the file extension in the Hint:
//
//	probe := audio.NewProbe()
//	probe.Register(wav.Format)
//	reader, err := probe.Format(audio.Hint{Extension: "wav"}, f)
//
// A CodecRegistry maps a track's CodecType to a DecoderFactory:
//
//	codecs := audio.NewCodecRegistry()
//	pcm.Register(codecs)
//	dec, err := codecs.Make(track.Params)
//
// Tracks that no decoder can handle are reported with CodecNull.
//
// # Sample Format
//
// Decoded samples are float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// A SampleBuffer has a fixed spec and capacity. CopyInterleaved replaces
// its content with a frame, interleaving the planes.
//
// # Metadata
//
// Readers publish tag revisions to a MetadataLog. Consumers pop revisions
// until IsLatest reports that only the newest one is left.
//
// # Error Handling
//
// NextPacket returns io.EOF at the end of the stream. Broken container
// framing wraps ErrMalformed, packets that do not match their codec wrap
// ErrMalformedPacket:
//
//	for {
//	    pkt, err := reader.NextPacket()
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    frame, err := dec.Decode(pkt)
//	    if err != nil {
//	        return err
//	    }
//	    // Use frame.Plane(ch)
//	}
package audio
