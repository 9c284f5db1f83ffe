package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Code-Hex/go-chip8/chip8"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/retroenv/retrogolib/log"
)

var errQuit = errors.New("quit")

var (
	pixelOn  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	pixelOff = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// keymap lays the hex keypad out on the left side of a QWERTY keyboard.
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var keymap = map[ebiten.Key]int{
	ebiten.Key1: 0x1, ebiten.Key2: 0x2, ebiten.Key3: 0x3, ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

// pollKeys copies the host keyboard state into the keypad. It only gets the
// keypad, never the machine.
func pollKeys(pad *chip8.Keypad, pressed func(ebiten.Key) bool) {
	for key, hex := range keymap {
		pad.Set(hex, pressed(key))
	}
}

// renderFrame writes the display into pix as RGBA, row by row from the top.
func renderFrame(d *chip8.Display, pix []byte) {
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			c := pixelOff
			if d.Pixel(x, y) {
				c = pixelOn
			}
			i := (y*d.Width() + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

type game struct {
	cfg    *Config
	logger *log.Logger
	vm     *chip8.VM
	rom    []byte
	frame  *ebiten.Image
	pix    []byte

	paused bool
	// halted holds the error that stopped the machine.
	halted error
	title  string
}

func newGame(cfg *Config, rom []byte, logger *log.Logger) (*game, error) {
	vm := chip8.New(
		chip8.WithTimerMode(cfg.TimerMode),
		chip8.WithLogger(logger),
	)
	g := &game{
		cfg:    cfg,
		logger: logger,
		vm:     vm,
		rom:    rom,
		pix:    make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4),
	}
	if err := g.vm.LoadROM(rom); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *game) reset() error {
	g.vm.Reset()
	g.halted = nil
	return g.vm.LoadROM(g.rom)
}

// step runs one frame worth of instructions. Errors halt the machine until
// it is reset.
func (g *game) step() {
	if g.paused || g.halted != nil {
		return
	}
	for i := 0; i < g.cfg.CyclesPerFrame; i++ {
		if err := g.vm.Cycle(); err != nil {
			g.logger.LogDepth(0, log.ErrorLevel, "Machine halted",
				log.Err(err),
				log.Stringer("state", g.vm))
			g.halted = err
			return
		}
	}
	if g.vm.TimerMode() == chip8.TimerExternal {
		g.vm.TickTimers()
	}
}

func (g *game) windowTitle() string {
	title := "CHIP-8: " + g.cfg.ROMPath
	switch {
	case g.halted != nil:
		title = fmt.Sprintf("%s [halted: %v]", title, g.halted)
	case g.paused:
		title += " [paused]"
	case g.vm.Sounding():
		title += " [beep]"
	}
	return title
}

// update is called 60 times per second by ebiten.
func (g *game) update(screen *ebiten.Image) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	pollKeys(g.vm.Keypad(), ebiten.IsKeyPressed)
	g.step()

	if title := g.windowTitle(); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.draw(screen)
}

func (g *game) draw(screen *ebiten.Image) error {
	if g.frame == nil {
		frame, err := ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight, ebiten.FilterNearest)
		if err != nil {
			return err
		}
		g.frame = frame
	}
	renderFrame(g.vm.Display(), g.pix)
	if err := g.frame.ReplacePixels(g.pix); err != nil {
		return err
	}
	return screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
}
