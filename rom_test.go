package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Code-Hex/go-chip8/chip8"
	"github.com/google/go-cmp/cmp"
)

func Test_readROMFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "chip8")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	tests := []struct {
		name    string
		rom     []byte
		wantErr bool
	}{
		{
			name: "valid",
			rom:  []byte{0x00, 0xE0, 0x12, 0x00},
		},
		{
			name: "largest",
			rom:  make([]byte, chip8.MaxROMSize),
		},
		{
			name:    "too large",
			rom:     make([]byte, chip8.MaxROMSize+1),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".ch8")
			if err := ioutil.WriteFile(path, tt.rom, 0644); err != nil {
				t.Fatal(err)
			}
			got, err := readROMFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readROMFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chip8.ErrOutOfBounds) {
					t.Errorf("readROMFile() error = %v, want ErrOutOfBounds", err)
				}
				return
			}
			if diff := cmp.Diff(tt.rom, got); diff != "" {
				t.Errorf("rom: (-want, +got)\n%s", diff)
			}
		})
	}

	if _, err := readROMFile(filepath.Join(dir, "missing.ch8")); !os.IsNotExist(err) {
		t.Errorf("readROMFile(missing) error = %v, want not exist", err)
	}
}
