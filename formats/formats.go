// SPDX-License-Identifier: EPL-2.0

// Package formats wires every container reader and codec of this module
// into ready to use registries.
package formats

import (
	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats/aiff"
	"github.com/ik5/audviz/formats/mp3"
	"github.com/ik5/audviz/formats/pcm"
	"github.com/ik5/audviz/formats/vorbis"
	"github.com/ik5/audviz/formats/wav"
)

// DefaultProbe returns a probe knowing WAV, AIFF, Ogg Vorbis and MP3.
// MP3 is registered last since its frame sync sniffing is the loosest.
func DefaultProbe() *audio.Probe {
	p := audio.NewProbe()
	p.Register(wav.Format)
	p.Register(aiff.Format)
	p.Register(vorbis.Format)
	p.Register(mp3.Format)

	return p
}

// DefaultCodecs returns a codec registry with every PCM decoder.
func DefaultCodecs() *audio.CodecRegistry {
	r := audio.NewCodecRegistry()
	pcm.Register(r)

	return r
}
