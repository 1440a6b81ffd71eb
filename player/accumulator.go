// SPDX-License-Identifier: EPL-2.0

package player

import "github.com/ik5/audviz/audio"

// Accumulator holds the interleaved samples of the latest decoded packet
// and the number of samples decoded so far.
type Accumulator struct {
	buf   *audio.SampleBuffer
	total uint64
}

// write sizes the buffer from the first frame it sees, then overwrites
// its content with f and adds the new sample count to the total.
func (a *Accumulator) write(f *audio.Frame) error {
	if a.buf == nil {
		a.buf = audio.NewSampleBuffer(f.Capacity(), f.Spec())
	}

	if err := a.buf.CopyInterleaved(f); err != nil {
		return err
	}
	a.total += uint64(a.buf.Len())

	return nil
}

// Allocated reports whether the buffer has been sized.
func (a *Accumulator) Allocated() bool { return a.buf != nil }

// Total is the running count of samples, across all channels, decoded
// since the start.
func (a *Accumulator) Total() uint64 { return a.total }

// Samples returns the samples of the latest packet, or nil before the
// first one.
func (a *Accumulator) Samples() []float32 {
	if a.buf == nil {
		return nil
	}

	return a.buf.Samples()
}

// Spec returns the spec the buffer was sized with.
func (a *Accumulator) Spec() (audio.Spec, bool) {
	if a.buf == nil {
		return audio.Spec{}, false
	}

	return a.buf.Spec(), true
}

// Capacity is the buffer capacity in samples, 0 before allocation.
func (a *Accumulator) Capacity() int {
	if a.buf == nil {
		return 0
	}

	return a.buf.Capacity()
}
