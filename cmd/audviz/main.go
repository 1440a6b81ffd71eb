// SPDX-License-Identifier: EPL-2.0

// Command audviz decodes an audio file one packet per tick and prints a
// color line derived from the decoded samples.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ik5/audviz"
	"github.com/ik5/audviz/internal/config"
	"github.com/ik5/audviz/internal/term"
	"github.com/ik5/audviz/player"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	setupLogging(config.Default())
	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogging(cfg)

	log.Debug().
		Str("audio_path", cfg.AudioPath).
		Dur("tick_interval", cfg.TickInterval()).
		Str("log_format", cfg.LogFormat).
		Msg("Configuration")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stdout)
		log.Fatal().Err(err).Msg("Playback stopped")
	}
}

func setupLogging(cfg config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.LogFormat == config.LogFormatJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// run ticks a player for cfg.AudioPath until it halts or ctx is done and
// writes one status line per decoded packet to w. It returns the error
// that halted the player, or nil when ctx was cancelled.
func run(ctx context.Context, cfg config.Config, w io.Writer) error {
	p := player.New(cfg.AudioPath, player.WithLogger(log.Logger))
	defer p.Close()

	r := term.NewRenderer(w)

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Interrupted")
			return nil

		case <-ticker.C:
			if err := p.Tick(); err != nil {
				return err
			}

			snap := p.Snapshot()
			if snap.Tick == 0 {
				continue
			}

			scene := audviz.Map(snap.Samples)
			fmt.Fprint(w, "\r", r.Line(scene, snap.Total, len(snap.Samples)))
		}
	}
}
