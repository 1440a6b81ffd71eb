// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// sniffLen is how many leading bytes are handed to Format.Sniff.
const sniffLen = 16

// Format describes a container that the Probe can open.
type Format struct {
	// Name is the registry key (e.g., "wav", "mp3", "ogg vorbis").
	Name string
	// Extensions used as a hint when sniffing is not conclusive.
	Extensions []string
	// Sniff reports whether header (up to 16 bytes) looks like this format.
	Sniff func(header []byte) bool
	// Open builds a reader positioned at the start of r.
	Open func(r io.ReadSeeker) (FormatReader, error)
}

// Probe is a registry of container formats.
type Probe struct {
	formats []Format

	mtx *sync.Mutex
}

func NewProbe() *Probe {
	return &Probe{
		mtx: &sync.Mutex{},
	}
}

// Register adds f. Formats are sniffed in registration order; registering
// the same name again replaces the earlier entry.
func (p *Probe) Register(f Format) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	for i := range p.formats {
		if p.formats[i].Name == f.Name {
			p.formats[i] = f
			return
		}
	}
	p.formats = append(p.formats, f)
}

// Get returns the format registered under name.
func (p *Probe) Get(name string) (Format, bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	for _, f := range p.formats {
		if f.Name == name {
			return f, true
		}
	}

	return Format{}, false
}

// Format detects the container in r and opens a reader for it. The leading
// bytes are matched against every registered format first; the hint
// extension is only used when no format recognises them. Errors wrap
// ErrUnsupportedFormat.
func (p *Probe) Format(hint Hint, r io.ReadSeeker) (FormatReader, error) {
	header := make([]byte, sniffLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: reading header: %w", ErrUnsupportedFormat, err)
	}
	header = header[:n]

	p.mtx.Lock()
	formats := make([]Format, len(p.formats))
	copy(formats, p.formats)
	p.mtx.Unlock()

	for _, f := range formats {
		if f.Sniff == nil || !f.Sniff(header) {
			continue
		}

		return openFormat(f, r)
	}

	ext := strings.ToLower(strings.TrimPrefix(hint.Extension, "."))
	if ext != "" {
		for _, f := range formats {
			for _, e := range f.Extensions {
				if e == ext {
					return openFormat(f, r)
				}
			}
		}
	}

	return nil, fmt.Errorf("%w: no container format matched", ErrUnsupportedFormat)
}

func openFormat(f Format, r io.ReadSeeker) (FormatReader, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, f.Name, err)
	}

	reader, err := f.Open(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, f.Name, err)
	}

	return reader, nil
}

// DecoderFactory builds a decoder for the given parameters.
type DecoderFactory func(params CodecParams) (Decoder, error)

// CodecRegistry maps codec types to decoder factories.
type CodecRegistry struct {
	codecs map[CodecType]DecoderFactory

	mtx *sync.Mutex
}

func NewCodecRegistry() *CodecRegistry {
	return &CodecRegistry{
		codecs: make(map[CodecType]DecoderFactory),
		mtx:    &sync.Mutex{},
	}
}

func (r *CodecRegistry) Register(codec CodecType, f DecoderFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[codec] = f
}

func (r *CodecRegistry) Get(codec CodecType) (DecoderFactory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.codecs[codec]
	return f, ok
}

// Make builds a decoder for params. Errors wrap ErrUnsupportedCodec.
func (r *CodecRegistry) Make(params CodecParams) (Decoder, error) {
	f, ok := r.Get(params.Codec)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCodec, params.Codec)
	}

	dec, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedCodec, params.Codec, err)
	}

	return dec, nil
}
