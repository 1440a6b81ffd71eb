// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ik5/audviz/audio"
	"github.com/ik5/audviz/formats"
)

// Player advances playback of a single source by one packet per Tick.
//
// A Player is not safe for concurrent use; Tick, Snapshot and State are
// meant to be called from the same loop.
type Player struct {
	path   string
	probe  *audio.Probe
	codecs *audio.CodecRegistry
	logger zerolog.Logger

	state State
	acc   Accumulator
	ticks uint64
}

// Option configures a Player.
type Option func(*Player)

// WithProbe replaces the default container probe.
func WithProbe(p *audio.Probe) Option {
	return func(pl *Player) { pl.probe = p }
}

// WithCodecs replaces the default codec registry.
func WithCodecs(c *audio.CodecRegistry) Option {
	return func(pl *Player) { pl.codecs = c }
}

// WithLogger sets the logger used for state changes and metadata.
func WithLogger(l zerolog.Logger) Option {
	return func(pl *Player) { pl.logger = l }
}

// New returns a Player in the Ready state for the file at path. Nothing
// is opened until the first Tick.
func New(path string, opts ...Option) *Player {
	p := &Player{
		path:   path,
		logger: log.Logger,
		state:  Ready{},
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.probe == nil {
		p.probe = formats.DefaultProbe()
	}
	if p.codecs == nil {
		p.codecs = formats.DefaultCodecs()
	}

	return p
}

// State returns the current state.
func (p *Player) State() State { return p.state }

// Accumulator exposes the sample accumulator.
func (p *Player) Accumulator() *Accumulator { return &p.acc }

// Tick performs one step:
//
//   - Ready: open the source and move to Playing. No packet is read.
//   - Playing: read, decode and accumulate exactly one packet.
//   - Halted: return the error that halted playback.
//
// Any error moves the Player to Halted; it never recovers.
func (p *Player) Tick() error {
	switch s := p.state.(type) {
	case Ready:
		data, err := Open(p.path, p.probe, p.codecs)
		if err != nil {
			return p.halt(err)
		}
		p.state = Playing{Data: data}
		p.logOpened(data)

		return nil

	case Playing:
		p.ticks++
		if err := p.step(s.Data); err != nil {
			return p.halt(&StreamError{Tick: p.ticks, Err: err})
		}

		return nil

	case Halted:
		return s.Err
	}

	return fmt.Errorf("unknown player state %T", p.state)
}

func (p *Player) step(d *PlayerData) error {
	packet, err := d.reader.NextPacket()
	if err != nil {
		if errors.Is(err, audio.ErrMalformed) {
			return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
		}

		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	p.drainMetadata(d.reader.Metadata())

	if packet.TrackID != d.trackID {
		return fmt.Errorf("%w: got track %d, playing %d", ErrTrackMismatch, packet.TrackID, d.trackID)
	}

	frame, err := d.decoder.Decode(packet)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	if err := p.acc.write(frame); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}

	p.logger.Debug().
		Uint64("tick", p.ticks).
		Int("samples", len(p.acc.Samples())).
		Uint64("total", p.acc.Total()).
		Msg("decoded packet")

	return nil
}

// drainMetadata logs and discards every revision older than the newest.
func (p *Player) drainMetadata(m *audio.MetadataLog) {
	if m == nil {
		return
	}

	for !m.IsLatest() {
		m.Pop()
		if rev, ok := m.Current(); ok {
			p.logRevision(rev, "metadata updated")
		}
	}
}

func (p *Player) halt(err error) error {
	if s, ok := p.state.(Playing); ok {
		if cerr := s.Data.Close(); cerr != nil {
			p.logger.Warn().Err(cerr).Msg("closing source")
		}
	}
	p.state = Halted{Err: err}
	p.logger.Debug().Err(err).Msg("player halted")

	return err
}

// Close releases the source, if open, and halts the Player.
func (p *Player) Close() error {
	s, ok := p.state.(Playing)
	if !ok {
		return nil
	}
	p.state = Halted{Err: ErrClosed}

	return s.Data.Close()
}

func (p *Player) logOpened(d *PlayerData) {
	params := d.Params()
	p.logger.Info().
		Str("path", p.path).
		Uint32("track", d.trackID).
		Stringer("codec", params.Codec).
		Stringer("spec", params.Spec()).
		Msg("playing")

	if m := d.reader.Metadata(); m != nil {
		if rev, ok := m.Current(); ok {
			p.logRevision(rev, "metadata")
		}
	}
}

func (p *Player) logRevision(rev audio.Revision, msg string) {
	tags := zerolog.Dict()
	for _, t := range rev.Tags {
		tags.Str(t.Key, t.Value)
	}

	p.logger.Info().
		Str("vendor", rev.Vendor).
		Dict("tags", tags).
		Msg(msg)
}

// Snapshot is the accumulator as of the last completed tick.
type Snapshot struct {
	Tick  uint64
	Total uint64
	Spec  audio.Spec
	// Samples aliases the accumulator and is only valid until the next
	// Tick. It must not be modified.
	Samples []float32
}

// Snapshot returns the latest packet's samples and the running total.
func (p *Player) Snapshot() Snapshot {
	spec, _ := p.acc.Spec()

	return Snapshot{
		Tick:    p.ticks,
		Total:   p.acc.Total(),
		Spec:    spec,
		Samples: p.acc.Samples(),
	}
}
