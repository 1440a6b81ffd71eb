// SPDX-License-Identifier: EPL-2.0

package audio

// Frame holds the samples of one decoded packet in planar layout: one
// plane per channel, each plane holding Frames() samples.
type Frame struct {
	spec     Spec
	capacity int
	frames   int
	planes   [][]float32
	views    [][]float32
}

// NewFrame allocates a frame able to hold capacity frames of spec.
func NewFrame(capacity int, spec Spec) *Frame {
	planes := make([][]float32, spec.Channels)
	for ch := range planes {
		planes[ch] = make([]float32, capacity)
	}

	return &Frame{
		spec:     spec,
		capacity: capacity,
		planes:   planes,
		views:    make([][]float32, len(planes)),
	}
}

func (f *Frame) Spec() Spec    { return f.spec }
func (f *Frame) Capacity() int { return f.capacity }
func (f *Frame) Frames() int   { return f.frames }

// Plane returns the samples of channel ch.
func (f *Frame) Plane(ch int) []float32 {
	return f.planes[ch][:f.frames]
}

// Render sets the frame length to n frames and returns the planes so a
// decoder can fill them. n is capped at the capacity. The returned slice
// is reused by the next call.
func (f *Frame) Render(n int) [][]float32 {
	if n > f.capacity {
		n = f.capacity
	}
	f.frames = n

	for ch, p := range f.planes {
		f.views[ch] = p[:n]
	}

	return f.views
}
