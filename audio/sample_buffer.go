// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SampleBuffer is an interleaved float32 buffer whose capacity and spec are
// fixed when it is created. Every copy overwrites the previous content.
type SampleBuffer struct {
	spec    Spec
	samples []float32
	n       int
}

// NewSampleBuffer creates a buffer holding up to duration frames of spec,
// i.e. duration*spec.Channels samples.
func NewSampleBuffer(duration int, spec Spec) *SampleBuffer {
	return &SampleBuffer{
		spec:    spec,
		samples: make([]float32, duration*spec.Channels),
	}
}

func (b *SampleBuffer) Spec() Spec { return b.spec }

// Capacity is the number of samples (not frames) the buffer can hold.
func (b *SampleBuffer) Capacity() int { return len(b.samples) }

// Samples returns the samples written by the last copy.
func (b *SampleBuffer) Samples() []float32 { return b.samples[:b.n] }

// Len is the number of samples written by the last copy.
func (b *SampleBuffer) Len() int { return b.n }

// CopyInterleaved replaces the buffer content with f, interleaving its
// planes (L0,R0,L1,R1,... for stereo). The buffer is left untouched when
// f does not fit.
func (b *SampleBuffer) CopyInterleaved(f *Frame) error {
	if f.Spec().Channels != b.spec.Channels {
		return fmt.Errorf("%w: frame has %d channels, buffer %d",
			ErrSpecMismatch, f.Spec().Channels, b.spec.Channels)
	}

	channels := b.spec.Channels
	frames := f.Frames()
	n := frames * channels
	if n > len(b.samples) {
		return fmt.Errorf("%w: %d samples, capacity %d", ErrCapacityExceeded, n, len(b.samples))
	}

	// Mono is already interleaved
	if channels == 1 {
		copy(b.samples, f.Plane(0))
		b.n = n

		return nil
	}

	for ch := range channels {
		plane := f.Plane(ch)
		for i, v := range plane {
			b.samples[i*channels+ch] = v
		}
	}
	b.n = n

	return nil
}
