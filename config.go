package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Code-Hex/go-chip8/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Config holds the parameters of an emulation session.
type Config struct {
	// ROMPath is the CHIP-8 program to run.
	ROMPath string
	// Scale is the window size multiplier of the 64x32 display.
	Scale float64
	// CyclesPerFrame is the number of instructions executed per 1/60 s frame.
	CyclesPerFrame int
	// TimerMode decides whether the delay and sound timers tick once per
	// instruction or once per frame (60 Hz).
	TimerMode chip8.TimerMode
	// Debug lowers the log level so that every instruction is traced.
	Debug bool
}

// DefaultConfig runs at 600 instructions per second with 60 Hz timers.
var DefaultConfig = Config{
	Scale:          10,
	CyclesPerFrame: 10,
	TimerMode:      chip8.TimerExternal,
}

// Validate validates the config.
func (c *Config) Validate() error {
	if c.ROMPath == "" {
		return errors.New("no rom specified")
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be >= 1, got %v", c.Scale)
	}
	if c.CyclesPerFrame < 1 || c.CyclesPerFrame > 1000 {
		return fmt.Errorf("cycles per frame must be between 1 and 1000, got %d", c.CyclesPerFrame)
	}
	switch c.TimerMode {
	case chip8.TimerPerCycle, chip8.TimerExternal:
	default:
		return fmt.Errorf("unknown timer mode %v", c.TimerMode)
	}
	return nil
}

// newLogger creates the logger of the session. Debug enables the
// per-instruction trace of the engine.
func (c *Config) newLogger(output io.Writer) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = output
	if c.Debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

// timerFlag parses "cycle" or "frame" into a chip8.TimerMode.
type timerFlag struct{ mode *chip8.TimerMode }

func (f timerFlag) String() string {
	if f.mode == nil || *f.mode == chip8.TimerExternal {
		return "frame"
	}
	return "cycle"
}

func (f timerFlag) Set(s string) error {
	switch s {
	case "cycle":
		*f.mode = chip8.TimerPerCycle
	case "frame":
		*f.mode = chip8.TimerExternal
	default:
		return fmt.Errorf("want cycle or frame, got %q", s)
	}
	return nil
}

func parseFlags(name string, args []string, output io.Writer) (*Config, error) {
	cfg := DefaultConfig
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] path/to/rom\n", name)
		fs.PrintDefaults()
	}
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale of the 64x32 display")
	fs.IntVar(&cfg.CyclesPerFrame, "cycles", cfg.CyclesPerFrame, "instructions executed per frame (60 frames per second)")
	fs.Var(timerFlag{&cfg.TimerMode}, "timers", "timer tick policy: cycle (once per instruction) or frame (60 Hz)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "trace every instruction")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one rom path")
	}
	cfg.ROMPath = fs.Arg(0)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
