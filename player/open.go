// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audviz/audio"
)

// Open opens the file at path, detects its container, selects the first
// track with a known codec and builds a decoder for it. Errors are
// *InitError wrapping one of ErrUnreadableSource, ErrUnsupportedFormat,
// ErrNoSupportedTrack or ErrUnsupportedCodec; nothing is left open then.
func Open(path string, probe *audio.Probe, codecs *audio.CodecRegistry) (*PlayerData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InitError{Path: path, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		f.Close()
		if err == nil {
			err = fmt.Errorf("%s is a directory", path)
		}
		return nil, &InitError{Path: path, Err: fmt.Errorf("%w: %w", ErrUnreadableSource, err)}
	}

	data, err := open(f, HintFor(path), probe, codecs)
	if err != nil {
		f.Close()
		return nil, &InitError{Path: path, Err: err}
	}
	data.source = f

	return data, nil
}

func open(rs io.ReadSeeker, hint audio.Hint, probe *audio.Probe, codecs *audio.CodecRegistry) (*PlayerData, error) {
	reader, err := probe.Format(hint, rs)
	if err != nil {
		return nil, err
	}

	track, ok := FirstSupportedTrack(reader.Tracks())
	if !ok {
		reader.Close()
		return nil, fmt.Errorf("%w: %d track(s) found", ErrNoSupportedTrack, len(reader.Tracks()))
	}

	dec, err := codecs.Make(track.Params)
	if err != nil {
		reader.Close()
		return nil, err
	}

	return &PlayerData{
		reader:  reader,
		decoder: dec,
		trackID: track.ID,
	}, nil
}

// FirstSupportedTrack returns the first track whose codec is not
// audio.CodecNull.
func FirstSupportedTrack(tracks []audio.Track) (audio.Track, bool) {
	for _, t := range tracks {
		if t.Params.Codec != audio.CodecNull {
			return t, true
		}
	}

	return audio.Track{}, false
}

// HintFor derives a probe hint from the file extension of path.
func HintFor(path string) audio.Hint {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:] // drop dot
	}

	return audio.Hint{Extension: ext}
}
