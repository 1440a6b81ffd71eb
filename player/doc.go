// SPDX-License-Identifier: EPL-2.0

// Package player drives incremental decoding of one audio file.
//
// A Player starts in Ready. The first Tick opens the file, probes its
// container, picks the first track with a known codec and moves to
// Playing. Every following Tick reads exactly one packet, decodes it and
// copies the result into an Accumulator whose buffer is sized once, from
// the first decoded packet, and overwritten on every tick. Only the
// running sample total survives between ticks.
//
// Any error, including the end of the stream, moves the Player to Halted
// and is returned again by every later Tick:
//
//	p := player.New("song.wav")
//	for {
//		if err := p.Tick(); err != nil {
//			if errors.Is(err, player.ErrIOFailure) {
//				break // end of stream or read error
//			}
//			return err
//		}
//		snap := p.Snapshot()
//		_ = snap.Samples
//	}
package player
