package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Code-Hex/go-chip8/chip8"
	"github.com/hajimehoshi/ebiten"
	"github.com/retroenv/retrogolib/log"
)

func run(cfg *Config, logger *log.Logger) error {
	rom, err := readROMFile(cfg.ROMPath)
	if err != nil {
		return err
	}
	g, err := newGame(cfg, rom, logger)
	if err != nil {
		return err
	}
	logger.Info("Loaded ROM",
		log.String("file", cfg.ROMPath),
		log.Int("size", len(rom)),
		log.Int("cycles_per_frame", cfg.CyclesPerFrame),
		log.Stringer("timers", timerFlag{&cfg.TimerMode}))

	// The original implementation of the Chip-8 language used a 64x32-pixel monochrome display.
	err = ebiten.Run(g.update, chip8.DisplayWidth, chip8.DisplayHeight, cfg.Scale, g.windowTitle())
	if err == errQuit {
		return nil
	}
	return err
}

func main() {
	cfg, err := parseFlags(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.newLogger(os.Stdout)
	if err := run(cfg, logger); err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}
