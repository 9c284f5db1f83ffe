// Package chip8 implements the CHIP-8 virtual machine.
//
// Reference: http://devernay.free.fr/hacks/chip8/C8TECH10.HTM
package chip8

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/retroenv/retrogolib/log"
)

const (
	MemorySize    = 4096
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	// ProgramStart is where programs are loaded and where execution begins.
	ProgramStart = 0x200
	// MaxROMSize is the program / data space available above ProgramStart.
	MaxROMSize = MemorySize - ProgramStart

	FontStart     = 0x50
	FontGlyphSize = 5
)

var (
	// ErrOutOfBounds is returned when a load or an instruction would touch
	// memory, the keypad or the stack outside of their valid range.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrStackOverflow is returned by CALL when all 16 stack slots are in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by RET when the stack is empty.
	ErrStackUnderflow = errors.New("stack underflow")
)

// The data should be stored in the interpreter area of Chip-8 memory (0x000 to 0x1FF).
// Example: "0"
// +------------------------+
// | **** | 11110000 | 0xF0 |
// | *  * | 10010000 | 0x90 |
// | *  * | 10010000 | 0x90 |
// | *  * | 10010000 | 0x90 |
// | **** | 11110000 | 0xF0 |
// +------------------------+
var fontset = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// TimerMode selects who decrements the delay and sound timers.
type TimerMode int

const (
	// TimerPerCycle ticks both timers once at the end of every Cycle.
	TimerPerCycle TimerMode = iota
	// TimerExternal leaves the timers alone in Cycle. The host calls
	// TickTimers on its own schedule, conventionally 60 Hz.
	TimerExternal
)

func (m TimerMode) String() string {
	switch m {
	case TimerPerCycle:
		return "cycle"
	case TimerExternal:
		return "external"
	}
	return fmt.Sprintf("TimerMode(%d)", int(m))
}

// VM holds the state of a CHIP-8 machine.
type VM struct {
	// The Chip 8 has 4K memory in total.
	//
	// 0x000 - 0x1FF - Chip 8 interpreter (contains font set in emu)
	// 0x050 - 0x09F - Used for the built in 4x5 pixel font set (0-F)
	// 0x200 - 0xFFF - Program ROM and work RAM
	//
	// +---------------+= 0xFFF (4095) End of Chip-8 RAM
	// |               |
	// | 0x200 to 0xFFF|
	// |     Chip-8    |
	// | Program / Data|
	// |     Space     |
	// |               |
	// +---------------+= 0x200 (512) Start of most Chip-8 programs
	// | 0x000 to 0x1FF|
	// | Reserved for  |
	// |  interpreter  |
	// +---------------+= 0x000 (0) Start of Chip-8 RAM
	memory [MemorySize]byte

	// V0 to VE are general purpose. VF doubles as the carry, borrow and
	// collision flag.
	v [RegisterCount]byte

	// index register
	i uint16

	pc uint16

	stack [StackSize]uint16
	// sp is the number of return addresses on the stack.
	sp uint8

	// Both timers count down to zero. The buzzer sounds while the sound
	// timer is above zero.
	delayTimer, soundTimer uint8

	display Display
	keypad  Keypad

	table     [16]instruction
	timerMode TimerMode
	random    func(n int) int

	logger *log.Logger
}

// Option configures a VM created by New.
type Option func(*VM)

// WithTimerMode sets the timer policy. The default is TimerPerCycle.
func WithTimerMode(mode TimerMode) Option {
	return func(vm *VM) { vm.timerMode = mode }
}

// WithLogger sets the logger. Every executed instruction is traced at debug
// level. The default logger discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(vm *VM) {
		if logger != nil {
			vm.logger = logger
		}
	}
}

// WithRand replaces the random source used by RND.
func WithRand(r *rand.Rand) Option {
	return func(vm *VM) { vm.random = r.Intn }
}

// New creates a VM in its power-on state: font set loaded at FontStart,
// program counter at ProgramStart, everything else zeroed.
func New(opts ...Option) *VM {
	vm := &VM{
		table:  newDispatchTable(),
		random: rand.New(rand.NewSource(newSeed())).Intn,
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.Reset()
	return vm
}

func (vm *VM) String() string {
	return fmt.Sprintf("[PC: 0x%03X, I: 0x%03X, SP: %d, V: % 02X, DT: %d, ST: %d]",
		vm.pc, vm.i, vm.sp, vm.v[:], vm.delayTimer, vm.soundTimer)
}

// Reset puts the machine back into its power-on state. Loaded programs are
// erased. The keypad is left alone since it belongs to the input side.
func (vm *VM) Reset() {
	vm.memory = [MemorySize]byte{}
	copy(vm.memory[FontStart:], fontset[:])
	vm.v = [RegisterCount]byte{}
	vm.i = 0
	vm.pc = ProgramStart
	vm.stack = [StackSize]uint16{}
	vm.sp = 0
	vm.delayTimer, vm.soundTimer = 0, 0
	vm.display.clear()
}

// Load copies data into memory starting at offset. Nothing else is changed.
func (vm *VM) Load(data []byte, offset uint16) error {
	if int(offset)+len(data) > MemorySize {
		return fmt.Errorf("load %d bytes at 0x%03X: %w", len(data), offset, ErrOutOfBounds)
	}
	copy(vm.memory[offset:], data)
	return nil
}

// LoadROM copies a program into the program / data space at ProgramStart.
func (vm *VM) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("rom is larger than program / data space (%d > %d bytes): %w",
			len(rom), MaxROMSize, ErrOutOfBounds)
	}
	return vm.Load(rom, ProgramStart)
}

// Display returns the frame buffer. It stays valid for the lifetime of vm.
func (vm *VM) Display() *Display { return &vm.display }

// Keypad returns the key state written by the input side between cycles.
func (vm *VM) Keypad() *Keypad { return &vm.keypad }

// PC returns the address of the next instruction to fetch.
func (vm *VM) PC() uint16 { return vm.pc }

// I returns the index register.
func (vm *VM) I() uint16 { return vm.i }

// SP returns the number of return addresses on the stack.
func (vm *VM) SP() int { return int(vm.sp) }

func (vm *VM) DelayTimer() uint8 { return vm.delayTimer }
func (vm *VM) SoundTimer() uint8 { return vm.soundTimer }

// TimerMode returns the timer policy the VM was created with.
func (vm *VM) TimerMode() TimerMode { return vm.timerMode }

// V returns register Vx. x is taken modulo 16.
func (vm *VM) V(x int) byte { return vm.v[x&0xF] }

// Memory returns the byte at addr, or 0 when addr is outside memory.
func (vm *VM) Memory(addr int) byte {
	if addr < 0 || addr >= MemorySize {
		return 0
	}
	return vm.memory[addr]
}

// Sounding reports whether the buzzer should be on.
func (vm *VM) Sounding() bool { return vm.soundTimer > 0 }
