// SPDX-License-Identifier: EPL-2.0

package audviz

import (
	"image/color"
	"math"
)

var black = color.RGBA{A: 0xff}

// Black is the opaque black returned for absent samples.
func Black() color.RGBA { return black }

// MaxRadius is the radius of a full scale positive sample.
const MaxRadius = 200

// Clamp saturates v to [-1.0, 1.0]. NaN is returned unchanged.
func Clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}

// channels maps a sample to its red and blue intensities:
// -1 is full red, 1 is full blue.
func channels(v float32) (red, blue uint8) {
	c := Clamp(v)
	red = uint8(math.Round(float64((1 - c) * 127.5)))
	blue = uint8(math.Round(float64((c + 1) * 127.5)))

	return red, blue
}

// ToColor maps a sample to a color. ok reports whether the sample is
// present; an absent or NaN sample maps to black.
//
// Green is 255 - max(red, blue), so the color goes red, grey, blue
// as v goes from -1 to 1.
func ToColor(v float32, ok bool) color.RGBA {
	if !ok || math.IsNaN(float64(v)) {
		return black
	}

	red, blue := channels(v)

	return color.RGBA{R: red, G: 255 - max(red, blue), B: blue, A: 0xff}
}

// ToRadiusAndColor maps a sample to a circle radius in [0, MaxRadius] and
// a fill color. An absent or NaN sample maps to (0, black).
//
// Unlike ToColor, green is |red - blue|.
func ToRadiusAndColor(v float32, ok bool) (float32, color.RGBA) {
	if !ok || math.IsNaN(float64(v)) {
		return 0, black
	}

	red, blue := channels(v)
	green := red - blue
	if blue > red {
		green = blue - red
	}

	radius := (Clamp(v) + 1) * (MaxRadius / 2)

	return radius, color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// SampleAt returns samples[i] and whether it exists.
func SampleAt(samples []float32, i int) (float32, bool) {
	if i < 0 || i >= len(samples) {
		return 0, false
	}

	return samples[i], true
}

// Positions returns the buffer indexes sampled for the four circles of a
// buffer holding n samples. They may coincide for short buffers.
func Positions(n int) [4]int {
	return [4]int{0, n / 4, n / 2, n/2 + n/4}
}

// Circle is one sampled position rendered as a circle.
type Circle struct {
	Index  int
	Radius float32
	Color  color.RGBA
}

// Scene is everything the renderer draws for one tick.
type Scene struct {
	// Background is the color of the last sample of the buffer.
	Background color.RGBA
	Circles    [4]Circle
}

// Map builds the scene for the current sample buffer.
func Map(samples []float32) Scene {
	var s Scene
	s.Background = ToColor(SampleAt(samples, len(samples)-1))

	for i, pos := range Positions(len(samples)) {
		r, c := ToRadiusAndColor(SampleAt(samples, pos))
		s.Circles[i] = Circle{Index: pos, Radius: r, Color: c}
	}

	return s
}
