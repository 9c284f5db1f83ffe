package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

func (vm *VM) fetchOpCode() (Opcode, error) {
	if int(vm.pc)+1 >= MemorySize {
		return 0, fmt.Errorf("fetch at 0x%03X: %w", vm.pc, ErrOutOfBounds)
	}
	// To demonstrate how this works we will be using opcode `0xA2F0`.
	// The following:
	// memory[pc]     == 0xA2
	// memory[pc + 1] == 0xF0
	//
	// 	   0xA2   0xA2 << 8 = 0xA200   HEX
	// 10100010   1010001000000000     BIN
	first := uint16(vm.memory[vm.pc]) << 8
	second := uint16(vm.memory[vm.pc+1])

	// 	1010001000000000   // 0xA200
	//  |      11110000    // 0xF0 (0x00F0)
	// ------------------
	// 1010001011110000    // 0xA2F0
	return Opcode(first | second), nil
}

// Cycle executes exactly one instruction. The program counter is advanced
// past the instruction before it runs, so control flow instructions simply
// overwrite it. With TimerPerCycle both timers tick once afterwards.
//
// Opcodes without an assigned instruction are no-ops. Stack and memory
// violations are returned as errors wrapping ErrStackOverflow,
// ErrStackUnderflow or ErrOutOfBounds; the VM must not be cycled further
// without a Reset.
func (vm *VM) Cycle() error {
	pc := vm.pc
	op, err := vm.fetchOpCode()
	if err != nil {
		return err
	}
	vm.pc += 2

	vm.logger.Debug("Executing instruction",
		log.Uint16("pc", pc),
		log.Uint16("opcode", uint16(op)),
		log.Stringer("mnemonic", op),
		log.Stringer("state", vm))

	if err := vm.table[op.Family()](vm, op); err != nil {
		return fmt.Errorf("0x%03X: %s: %w", pc, op, err)
	}

	if vm.timerMode == TimerPerCycle {
		vm.TickTimers()
	}
	return nil
}

// TickTimers decrements the delay and sound timers if they have been set.
// Cycle calls it unless the VM was created with TimerExternal.
func (vm *VM) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}
