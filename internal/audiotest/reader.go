// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/pcm"
)

// Step is one scripted result of FakeReader.NextPacket.
type Step struct {
	Packet audio.Packet
	Err    error
	// Revisions are pushed to the metadata log before the packet is returned.
	Revisions []audio.Revision
}

// FakeReader is a scripted audio.FormatReader.
type FakeReader struct {
	TrackList []audio.Track
	Steps     []Step

	meta   *audio.MetadataLog
	pos    int
	Closed bool
}

// NewFakeReader creates a reader that replays steps for tracks.
func NewFakeReader(tracks []audio.Track, steps []Step) *FakeReader {
	return &FakeReader{
		TrackList: tracks,
		Steps:     steps,
		meta:      audio.NewMetadataLog(),
	}
}

func (f *FakeReader) Tracks() []audio.Track        { return f.TrackList }
func (f *FakeReader) Metadata() *audio.MetadataLog { return f.meta }

func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

func (f *FakeReader) NextPacket() (audio.Packet, error) {
	if f.pos >= len(f.Steps) {
		return audio.Packet{}, io.EOF
	}

	step := f.Steps[f.pos]
	f.pos++
	for _, rev := range step.Revisions {
		f.meta.Push(rev)
	}

	return step.Packet, step.Err
}

// F32Track returns a pcm_f32le track.
func F32Track(id uint32, sampleRate, channels, maxFrames int) audio.Track {
	return audio.Track{
		ID: id,
		Params: audio.CodecParams{
			Codec:              audio.CodecPCMF32LE,
			SampleRate:         sampleRate,
			Channels:           channels,
			BitsPerSample:      32,
			MaxFramesPerPacket: maxFrames,
		},
	}
}

// F32Packet builds a pcm_f32le packet of frames frames whose samples are
// produced by waveform.
func F32Packet(trackID uint32, channels, frames int, waveform func(frame, channel int) float32) audio.Packet {
	samples := make([]float32, frames*channels)
	for i := range frames {
		for ch := range channels {
			samples[i*channels+ch] = waveform(i, ch)
		}
	}

	return audio.Packet{
		TrackID: trackID,
		Frames:  frames,
		Data:    pcm.AppendFloats(nil, samples),
	}
}

// Constant is a waveform returning v for every sample.
func Constant(v float32) func(int, int) float32 {
	return func(int, int) float32 { return v }
}

// Sine is a waveform generating a sine wave at frequency Hz.
func Sine(sampleRate int, frequency float64) func(int, int) float32 {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Ramp is a waveform returning frame*channels+channel, handy to check
// interleaving order.
func Ramp(channels int) func(int, int) float32 {
	return func(frame, ch int) float32 { return float32(frame*channels + ch) }
}
