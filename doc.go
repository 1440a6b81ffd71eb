// SPDX-License-Identifier: EPL-2.0

// Package audviz turns decoded audio samples into simple visuals.
//
// A host decodes an audio file one packet per tick with the player
// package and, after every tick, maps the current sample buffer to a
// Scene: a background color and four circles.
//
// # Quick Start
//
//	p := player.New("sample.mp3")
//	for range time.Tick(41 * time.Millisecond) {
//	    if err := p.Tick(); err != nil {
//	        log.Fatal(err)
//	    }
//	    snap := p.Snapshot()
//	    scene := audviz.Map(snap.Samples)
//	    // draw scene
//	}
//
// # Mappings
//
// ToColor and ToRadiusAndColor take a single sample together with a flag
// telling whether the sample exists, so they compose with SampleAt:
//
//	c := audviz.ToColor(audviz.SampleAt(samples, 0))
//
// Samples are clamped to [-1.0, 1.0] first; -1 maps to red and 1 to blue.
// ToRadiusAndColor also returns a radius from 0 (at -1) to 200 (at 1).
// Absent samples map to black, with radius 0. NaN counts as absent.
//
// # Supported Formats
//
// The formats package registers readers for:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
package audviz
