package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Code-Hex/go-chip8/chip8"
)

// readROMFile reads a CHIP-8 program from disk.
func readROMFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(rom) > chip8.MaxROMSize {
		return nil, fmt.Errorf("%s: rom is larger than program / data space (%d > %d bytes): %w",
			path, len(rom), chip8.MaxROMSize, chip8.ErrOutOfBounds)
	}
	return rom, nil
}
