package main

import (
	"errors"
	"testing"

	"github.com/Code-Hex/go-chip8/chip8"
	"github.com/hajimehoshi/ebiten"
	"github.com/retroenv/retrogolib/log"
)

func Test_pollKeys(t *testing.T) {
	var pad chip8.Keypad
	pad.Press(0x5) // W is up, so this gets cleared
	held := map[ebiten.Key]bool{ebiten.Key4: true, ebiten.KeyX: true}
	pollKeys(&pad, func(k ebiten.Key) bool { return held[k] })

	for key := 0; key < chip8.KeyCount; key++ {
		want := key == 0xC || key == 0x0
		if got := pad.IsPressed(key); got != want {
			t.Errorf("key 0x%X pressed = %v, want %v", key, got, want)
		}
	}
}

func Test_renderFrame(t *testing.T) {
	vm := chip8.New()
	// LD I, 0x300; DRW V0, V0, 1 with 0x80 at 0x300 lights (0, 0).
	if err := vm.LoadROM([]byte{0xA3, 0x00, 0xD0, 0x01}); err != nil {
		t.Fatal(err)
	}
	if err := vm.Load([]byte{0x80}, 0x300); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := vm.Cycle(); err != nil {
			t.Fatal(err)
		}
	}

	pix := make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4)
	renderFrame(vm.Display(), pix)
	if pix[0] != 0xFF || pix[3] != 0xFF {
		t.Errorf("pixel (0, 0) = % X, want lit", pix[0:4])
	}
	if pix[4] != 0x00 || pix[7] != 0xFF {
		t.Errorf("pixel (1, 0) = % X, want dark", pix[4:8])
	}
}

func Test_game_step(t *testing.T) {
	cfg := DefaultConfig
	cfg.ROMPath = "test.ch8"
	cfg.CyclesPerFrame = 3
	rom := []byte{
		0x60, 0x05, // LD V0, 5
		0xF0, 0x15, // LD DT, V0
		0x12, 0x04, // JP 0x204
	}
	g, err := newGame(&cfg, rom, log.NewTestLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	g.step()
	// frame timers tick once per step, not once per cycle
	if got := g.vm.DelayTimer(); got != 4 {
		t.Errorf("DT = %d after one frame, want 4", got)
	}

	g.paused = true
	g.step()
	if got := g.vm.DelayTimer(); got != 4 {
		t.Errorf("paused game ran: DT = %d", got)
	}
}

func Test_game_haltAndReset(t *testing.T) {
	cfg := DefaultConfig
	cfg.ROMPath = "underflow.ch8"
	g, err := newGame(&cfg, []byte{0x00, 0xEE}, log.NewNop()) // RET
	if err != nil {
		t.Fatal(err)
	}
	g.step()
	if !errors.Is(g.halted, chip8.ErrStackUnderflow) {
		t.Fatalf("halted = %v, want ErrStackUnderflow", g.halted)
	}
	if got, want := g.windowTitle(), "CHIP-8: underflow.ch8 [halted: 0x200: RET: stack underflow]"; got != want {
		t.Errorf("windowTitle() = %q, want %q", got, want)
	}

	pc := g.vm.PC()
	g.step()
	if g.vm.PC() != pc {
		t.Errorf("halted game kept running")
	}

	if err := g.reset(); err != nil {
		t.Fatal(err)
	}
	if g.halted != nil || g.vm.PC() != chip8.ProgramStart {
		t.Errorf("reset: halted = %v, PC = 0x%03X", g.halted, g.vm.PC())
	}
	if g.vm.Memory(chip8.ProgramStart+1) != 0xEE {
		t.Errorf("reset did not reload the rom")
	}
}

func Test_game_windowTitle(t *testing.T) {
	cfg := DefaultConfig
	cfg.ROMPath = "beep.ch8"
	cfg.CyclesPerFrame = 2
	rom := []byte{
		0x60, 0x02, // LD V0, 2
		0xF0, 0x18, // LD ST, V0
		0x12, 0x04, // JP 0x204
	}
	g, err := newGame(&cfg, rom, log.NewTestLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.windowTitle(), "CHIP-8: beep.ch8"; got != want {
		t.Errorf("windowTitle() = %q, want %q", got, want)
	}

	g.step() // ST = 1 after the frame tick
	if got, want := g.windowTitle(), "CHIP-8: beep.ch8 [beep]"; got != want {
		t.Errorf("windowTitle() = %q, want %q", got, want)
	}

	g.paused = true
	if got, want := g.windowTitle(), "CHIP-8: beep.ch8 [paused]"; got != want {
		t.Errorf("windowTitle() = %q, want %q", got, want)
	}

	g.paused = false
	g.step()
	if got, want := g.windowTitle(), "CHIP-8: beep.ch8"; got != want {
		t.Errorf("windowTitle() after the buzzer stopped = %q, want %q", got, want)
	}
}
