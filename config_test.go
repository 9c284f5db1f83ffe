package main

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/Code-Hex/go-chip8/chip8"
	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/log"
)

func Test_parseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"pong.ch8"},
			want: &Config{
				ROMPath:        "pong.ch8",
				Scale:          10,
				CyclesPerFrame: 10,
				TimerMode:      chip8.TimerExternal,
			},
		},
		{
			name: "all flags",
			args: []string{"-scale", "4", "-cycles", "20", "-timers", "cycle", "-debug", "tetris.ch8"},
			want: &Config{
				ROMPath:        "tetris.ch8",
				Scale:          4,
				CyclesPerFrame: 20,
				TimerMode:      chip8.TimerPerCycle,
				Debug:          true,
			},
		},
		{
			name:    "no rom",
			args:    []string{"-scale", "4"},
			wantErr: true,
		},
		{
			name:    "two roms",
			args:    []string{"a.ch8", "b.ch8"},
			wantErr: true,
		},
		{
			name:    "unknown timer mode",
			args:    []string{"-timers", "wallclock", "a.ch8"},
			wantErr: true,
		},
		{
			name:    "zero cycles",
			args:    []string{"-cycles", "0", "a.ch8"},
			wantErr: true,
		},
		{
			name:    "tiny scale",
			args:    []string{"-scale", "0.5", "a.ch8"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags("go-chip8", tt.args, ioutil.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig
	cfg.ROMPath = "a.ch8"
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	cfg.TimerMode = chip8.TimerMode(7)
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() accepted timer mode %v", cfg.TimerMode)
	}
}

func TestConfig_newLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig
	logger := cfg.newLogger(&buf)
	if got := logger.Level(); got != log.InfoLevel {
		t.Errorf("level = %v, want %v", got, log.InfoLevel)
	}
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug record written without -debug: %q", buf.String())
	}

	cfg.Debug = true
	logger = cfg.newLogger(&buf)
	if got := logger.Level(); got != log.DebugLevel {
		t.Errorf("level = %v, want %v", got, log.DebugLevel)
	}
	logger.Debug("traced")
	if !bytes.Contains(buf.Bytes(), []byte("traced")) {
		t.Errorf("debug record missing with -debug: %q", buf.String())
	}
}
