package chip8

// instruction executes one decoded opcode against vm. PC already points at
// the next instruction when it runs.
type instruction func(vm *VM, op Opcode) error

// newDispatchTable builds the family table. Families 0x0, 0x8, 0xE and 0xF
// resolve a second time on the low nibble (0x8) or the low byte (the rest).
// Unassigned slots are nil and execute as no-ops.
func newDispatchTable() [16]instruction {
	var table0, tableE, tableF [0x100]instruction
	var table8 [0x10]instruction

	table0[0xE0] = (*VM).cls
	table0[0xEE] = (*VM).ret

	table8[0x0] = (*VM).loadXY
	table8[0x1] = (*VM).or
	table8[0x2] = (*VM).and
	table8[0x3] = (*VM).xor
	table8[0x4] = (*VM).add
	table8[0x5] = (*VM).sub
	table8[0x6] = (*VM).shiftr
	table8[0x7] = (*VM).subYX
	table8[0xE] = (*VM).shiftl

	tableE[0x9E] = (*VM).skipIfKeyPressed
	tableE[0xA1] = (*VM).skipIfNotKeyPressed

	tableF[0x07] = (*VM).loadXDelay
	tableF[0x0A] = (*VM).loadXKey
	tableF[0x15] = (*VM).loadDelayX
	tableF[0x18] = (*VM).loadSoundX
	tableF[0x1E] = (*VM).addIX
	tableF[0x29] = (*VM).loadIFont
	tableF[0x33] = (*VM).bcd
	tableF[0x55] = (*VM).regDump
	tableF[0x65] = (*VM).regLoad

	return [16]instruction{
		0x0: byLowByte(&table0),
		0x1: (*VM).jump,
		0x2: (*VM).call,
		0x3: (*VM).skipIf,
		0x4: (*VM).skipIfNot,
		0x5: (*VM).skipIfXY,
		0x6: (*VM).loadX,
		0x7: (*VM).addX,
		0x8: byLowNibble(&table8),
		0x9: (*VM).skipIfNotXY,
		0xA: (*VM).loadI,
		0xB: (*VM).jumpV0,
		0xC: (*VM).loadRand,
		0xD: (*VM).draw,
		0xE: byLowByte(&tableE),
		0xF: byLowByte(&tableF),
	}
}

func byLowByte(table *[0x100]instruction) instruction {
	return func(vm *VM, op Opcode) error {
		return vm.exec(table[op.KK()], op)
	}
}

func byLowNibble(table *[0x10]instruction) instruction {
	return func(vm *VM, op Opcode) error {
		return vm.exec(table[op.N()], op)
	}
}

func (vm *VM) exec(fn instruction, op Opcode) error {
	if fn == nil {
		return nil
	}
	return fn(vm, op)
}
