// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "audviz.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.AudioPath != "./sample.mp3" {
		t.Errorf("AudioPath = %q", cfg.AudioPath)
	}
	if cfg.TickInterval() != 41*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 41ms", cfg.TickInterval())
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "audio_path: /music/song.ogg\ndebug: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		AudioPath:      "/music/song.ogg",
		TickIntervalMS: DefaultTickIntervalMS,
		Debug:          true,
		LogFormat:      LogFormatConsole,
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	if _, err := Load(writeConfig(t, "tick_interval_ms: [1, 2]\n")); err == nil {
		t.Error("Load(bad yaml) error = nil")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty path", func(c *Config) { c.AudioPath = "" }, ErrEmptyAudioPath},
		{"zero tick", func(c *Config) { c.TickIntervalMS = 0 }, ErrInvalidTickInterval},
		{"negative tick", func(c *Config) { c.TickIntervalMS = -5 }, ErrInvalidTickInterval},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFlags_Resolve(t *testing.T) {
	t.Parallel()

	file := writeConfig(t, "audio_path: from-file.wav\ntick_interval_ms: 100\nlog_format: json\n")

	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr error
	}{
		{
			name: "defaults",
			args: nil,
			want: Default(),
		},
		{
			name: "file only",
			args: []string{"-config", file},
			want: Config{AudioPath: "from-file.wav", TickIntervalMS: 100, LogFormat: LogFormatJSON},
		},
		{
			name: "flags override file",
			args: []string{"-config", file, "-audio", "cli.mp3", "-debug", "-log-format", "console"},
			want: Config{AudioPath: "cli.mp3", TickIntervalMS: 100, Debug: true, LogFormat: LogFormatConsole},
		},
		{
			name:    "invalid tick",
			args:    []string{"-tick", "0"},
			wantErr: ErrInvalidTickInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := flag.NewFlagSet("audviz", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			f := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			cfg, err := f.Resolve()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if cfg != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
