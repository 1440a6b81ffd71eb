// SPDX-License-Identifier: EPL-2.0

// Package config holds the host settings: defaults, an optional YAML file
// and command line overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAudioPath      = "./sample.mp3"
	DefaultTickIntervalMS = 41 // ~24 ticks per second

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

var (
	ErrEmptyAudioPath      = errors.New("config: audio_path is empty")
	ErrInvalidTickInterval = errors.New("config: tick_interval_ms must be positive")
	ErrInvalidLogFormat    = errors.New("config: log_format must be console or json")
)

type Config struct {
	AudioPath      string `yaml:"audio_path"`
	TickIntervalMS int    `yaml:"tick_interval_ms"`
	Debug          bool   `yaml:"debug"`
	LogFormat      string `yaml:"log_format"`
}

func Default() Config {
	return Config{
		AudioPath:      DefaultAudioPath,
		TickIntervalMS: DefaultTickIntervalMS,
		LogFormat:      LogFormatConsole,
	}
}

// Load reads the YAML file at filename over the defaults. Keys missing
// from the file keep their default value.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.AudioPath == "" {
		errs = append(errs, ErrEmptyAudioPath)
	}
	if c.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidTickInterval, c.TickIntervalMS))
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.LogFormat))
	}

	return errors.Join(errs...)
}

func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// Flags are the command line overrides. Only flags that were set on the
// command line are applied.
type Flags struct {
	fs *flag.FlagSet

	ConfigFile string
	AudioPath  string
	Tick       int
	Debug      bool
	LogFormat  string
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file (optional)")
	fs.StringVar(&f.AudioPath, "audio", DefaultAudioPath, "Audio file to play")
	fs.IntVar(&f.Tick, "tick", DefaultTickIntervalMS, "Tick interval in milliseconds")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFormat, "log-format", LogFormatConsole, "Log format: console or json")

	return f
}

// Resolve loads the config file, if one was given, applies the flags set
// on the command line and validates the result. fs must be parsed.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.ConfigFile != "" {
		var err error
		if cfg, err = Load(f.ConfigFile); err != nil {
			return cfg, err
		}
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "audio":
			cfg.AudioPath = f.AudioPath
		case "tick":
			cfg.TickIntervalMS = f.Tick
		case "debug":
			cfg.Debug = f.Debug
		case "log-format":
			cfg.LogFormat = f.LogFormat
		}
	})

	return cfg, cfg.Validate()
}
