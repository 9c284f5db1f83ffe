package chip8

import "fmt"

// VX == vm.v[op.X()]
// VY == vm.v[op.Y()]
// VF == vm.v[0xF]
//
// Flag producing instructions write VF last, so the flag wins when X is F.

// cls clears the screen.
func (vm *VM) cls(Opcode) error {
	vm.display.clear()
	return nil
}

// ret returns from a subroutine.
func (vm *VM) ret(Opcode) error {
	if vm.sp == 0 {
		return ErrStackUnderflow
	}
	vm.sp--
	vm.pc = vm.stack[vm.sp]
	return nil
}

// jump jumps to address NNN.
func (vm *VM) jump(op Opcode) error {
	vm.pc = op.NNN()
	return nil
}

// call calls a subroutine at address NNN. The return address is the
// instruction following the call.
func (vm *VM) call(op Opcode) error {
	if int(vm.sp) >= len(vm.stack) {
		return ErrStackOverflow
	}
	vm.stack[vm.sp] = vm.pc
	vm.sp++
	vm.pc = op.NNN()
	return nil
}

// skip advances past the next instruction when cond holds.
// (Usually the next instruction is a jump to skip a code block)
func (vm *VM) skip(cond bool) {
	if cond {
		vm.pc += 2
	}
}

// skipIf skips the next instruction if VX equals NN.
func (vm *VM) skipIf(op Opcode) error {
	vm.skip(vm.v[op.X()] == op.KK())
	return nil
}

// skipIfNot skips the next instruction if VX doesn't equal NN.
func (vm *VM) skipIfNot(op Opcode) error {
	vm.skip(vm.v[op.X()] != op.KK())
	return nil
}

// skipIfXY skips the next instruction if VX equals VY.
func (vm *VM) skipIfXY(op Opcode) error {
	vm.skip(vm.v[op.X()] == vm.v[op.Y()])
	return nil
}

// loadX sets VX to NN.
func (vm *VM) loadX(op Opcode) error {
	vm.v[op.X()] = op.KK()
	return nil
}

// addX adds NN to VX. (Carry flag is not changed)
func (vm *VM) addX(op Opcode) error {
	vm.v[op.X()] += op.KK()
	return nil
}

// loadXY sets VX to the value of VY.
func (vm *VM) loadXY(op Opcode) error {
	vm.v[op.X()] = vm.v[op.Y()]
	return nil
}

// or sets VX to VX or VY. (Bitwise OR operation)
func (vm *VM) or(op Opcode) error {
	vm.v[op.X()] |= vm.v[op.Y()]
	return nil
}

// and sets VX to VX and VY. (Bitwise AND operation)
func (vm *VM) and(op Opcode) error {
	vm.v[op.X()] &= vm.v[op.Y()]
	return nil
}

// xor sets VX to VX xor VY. (Bitwise XOR operation)
func (vm *VM) xor(op Opcode) error {
	vm.v[op.X()] ^= vm.v[op.Y()]
	return nil
}

// add adds VY to VX. VF is set to 1 when there's a carry, and to 0 when there isn't.
func (vm *VM) add(op Opcode) error {
	sum := uint16(vm.v[op.X()]) + uint16(vm.v[op.Y()])
	vm.v[op.X()] = byte(sum)
	vm.v[0xF] = flag(sum > 0xFF)
	return nil
}

// sub VY is subtracted from VX. VF is set to 0 when there's a borrow, and 1 when there isn't.
func (vm *VM) sub(op Opcode) error {
	x, y := vm.v[op.X()], vm.v[op.Y()]
	vm.v[op.X()] = x - y
	vm.v[0xF] = flag(x >= y)
	return nil
}

// shiftr stores the least significant bit of VX in VF and then shifts VX to the right by 1.
func (vm *VM) shiftr(op Opcode) error {
	x := vm.v[op.X()]
	vm.v[op.X()] = x >> 1
	vm.v[0xF] = x & 0x01
	return nil
}

// subYX sets VX to VY minus VX. VF is set to 0 when there's a borrow, and 1 when there isn't.
func (vm *VM) subYX(op Opcode) error {
	x, y := vm.v[op.X()], vm.v[op.Y()]
	vm.v[op.X()] = y - x
	vm.v[0xF] = flag(y >= x)
	return nil
}

// shiftl stores the most significant bit of VX in VF and then shifts VX to the left by 1.
func (vm *VM) shiftl(op Opcode) error {
	x := vm.v[op.X()]
	vm.v[op.X()] = x << 1
	vm.v[0xF] = x >> 7
	return nil
}

// skipIfNotXY skips the next instruction if VX doesn't equal VY.
func (vm *VM) skipIfNotXY(op Opcode) error {
	vm.skip(vm.v[op.X()] != vm.v[op.Y()])
	return nil
}

// loadI sets I to the address NNN.
func (vm *VM) loadI(op Opcode) error {
	vm.i = op.NNN()
	return nil
}

// jumpV0 jumps to the address NNN plus V0.
func (vm *VM) jumpV0(op Opcode) error {
	vm.pc = op.NNN() + uint16(vm.v[0])
	return nil
}

// loadRand sets VX to the result of a bitwise and operation on
// a random number (0 to 255) and NN.
func (vm *VM) loadRand(op Opcode) error {
	vm.v[op.X()] = byte(vm.random(256)) & op.KK()
	return nil
}

// draw draws a sprite at coordinate (VX, VY) that has a width of 8 pixels and a height of N pixels.
// Each row of 8 pixels is read as bit-coded starting from memory location I;
// I value doesn't change after the execution of this instruction. VF is set
// to 1 if any screen pixels are flipped from set to unset when the sprite is drawn, and
// to 0 if that doesn't happen.
//
// The origin wraps around the screen, the sprite itself is clipped at the edges.
func (vm *VM) draw(op Opcode) error {
	height := int(op.N())
	if err := vm.checkMemory(vm.i, height); err != nil {
		return err
	}
	x := int(vm.v[op.X()]) % DisplayWidth
	y := int(vm.v[op.Y()]) % DisplayHeight

	var collision bool
	for row := 0; row < height; row++ {
		if vm.display.drawRow(x, y+row, vm.memory[int(vm.i)+row]) {
			collision = true
		}
	}
	vm.v[0xF] = flag(collision)
	return nil
}

// skipIfKeyPressed skips the next instruction if the key stored in VX is pressed.
func (vm *VM) skipIfKeyPressed(op Opcode) error {
	key, err := vm.keyIndex(op)
	if err != nil {
		return err
	}
	vm.skip(vm.keypad.IsPressed(key))
	return nil
}

// skipIfNotKeyPressed skips the next instruction if the key stored in VX isn't pressed.
func (vm *VM) skipIfNotKeyPressed(op Opcode) error {
	key, err := vm.keyIndex(op)
	if err != nil {
		return err
	}
	vm.skip(!vm.keypad.IsPressed(key))
	return nil
}

func (vm *VM) keyIndex(op Opcode) (int, error) {
	key := int(vm.v[op.X()])
	if key >= KeyCount {
		return 0, fmt.Errorf("key 0x%02X in V%X: %w", key, op.X(), ErrOutOfBounds)
	}
	return key, nil
}

// loadXDelay sets VX to the value of the delay timer.
func (vm *VM) loadXDelay(op Opcode) error {
	vm.v[op.X()] = vm.delayTimer
	return nil
}

// loadXKey awaits a key press, and then stores it in VX.
// While no key is down the instruction re-executes on the next cycle, so the
// caller keeps control between attempts.
func (vm *VM) loadXKey(op Opcode) error {
	key, ok := vm.keypad.firstPressed()
	if !ok {
		vm.pc -= 2
		return nil
	}
	vm.v[op.X()] = byte(key)
	return nil
}

// loadDelayX sets the delay timer to VX.
func (vm *VM) loadDelayX(op Opcode) error {
	vm.delayTimer = vm.v[op.X()]
	return nil
}

// loadSoundX sets the sound timer to VX.
func (vm *VM) loadSoundX(op Opcode) error {
	vm.soundTimer = vm.v[op.X()]
	return nil
}

// addIX adds VX to I. VF is not affected.
func (vm *VM) addIX(op Opcode) error {
	vm.i += uint16(vm.v[op.X()])
	return nil
}

// loadIFont sets I to the location of the sprite for the character in VX.
// Characters 0-F (in hexadecimal) are represented by a 4x5 font.
func (vm *VM) loadIFont(op Opcode) error {
	vm.i = FontStart + FontGlyphSize*uint16(vm.v[op.X()])
	return nil
}

// bcd stores the binary-coded decimal representation of VX, with the hundreds
// digit at I, the tens digit at I+1 and the ones digit at I+2.
func (vm *VM) bcd(op Opcode) error {
	if err := vm.checkMemory(vm.i, 3); err != nil {
		return err
	}
	value := vm.v[op.X()]
	vm.memory[vm.i] = value / 100
	vm.memory[vm.i+1] = (value / 10) % 10
	vm.memory[vm.i+2] = value % 10
	return nil
}

// regDump stores V0 to VX (including VX) in memory starting at address I.
// I itself is left unmodified.
func (vm *VM) regDump(op Opcode) error {
	n := int(op.X()) + 1
	if err := vm.checkMemory(vm.i, n); err != nil {
		return err
	}
	copy(vm.memory[vm.i:], vm.v[:n])
	return nil
}

// regLoad fills V0 to VX (including VX) with values from memory starting at
// address I. I itself is left unmodified.
func (vm *VM) regLoad(op Opcode) error {
	n := int(op.X()) + 1
	if err := vm.checkMemory(vm.i, n); err != nil {
		return err
	}
	copy(vm.v[:n], vm.memory[vm.i:])
	return nil
}

// checkMemory fails when the n bytes starting at addr are not all in memory.
func (vm *VM) checkMemory(addr uint16, n int) error {
	if int(addr)+n > MemorySize {
		return fmt.Errorf("access of %d bytes at 0x%03X: %w", n, addr, ErrOutOfBounds)
	}
	return nil
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}
