package chip8

import "fmt"

// Opcode is a raw 16-bit CHIP-8 instruction word.
//
// To demonstrate how the fields are laid out we will be using `0xD125`.
//
//	D    1    2    5
//	|    |    |    +-- n   (bits 0-3)
//	|    |    +------- y   (bits 4-7)
//	|    +------------ x   (bits 8-11)
//	+----------------- family (bits 12-15)
//
// kk is the low byte (0x25) and nnn the low 12 bits (0x125).
type Opcode uint16

// Family returns the top nibble, the opcode family 0x0-0xF.
func (op Opcode) Family() uint8 { return uint8(op >> 12) }

// X returns the register index in bits 8-11.
func (op Opcode) X() uint8 { return uint8(op>>8) & 0xF }

// Y returns the register index in bits 4-7.
func (op Opcode) Y() uint8 { return uint8(op>>4) & 0xF }

// N returns the lowest nibble.
func (op Opcode) N() uint8 { return uint8(op) & 0xF }

// KK returns the lowest byte.
func (op Opcode) KK() uint8 { return uint8(op) }

// NNN returns the lowest 12 bits, an address.
func (op Opcode) NNN() uint16 { return uint16(op) & 0x0FFF }

// String disassembles op into the conventional mnemonic form.
// Words without an assigned instruction are rendered as data.
func (op Opcode) String() string {
	x, y := op.X(), op.Y()
	switch op.Family() {
	case 0x0:
		switch op.KK() {
		case 0xE0:
			return "CLS"
		case 0xEE:
			return "RET"
		}
	case 0x1:
		return fmt.Sprintf("JP 0x%03X", op.NNN())
	case 0x2:
		return fmt.Sprintf("CALL 0x%03X", op.NNN())
	case 0x3:
		return fmt.Sprintf("SE V%X, 0x%02X", x, op.KK())
	case 0x4:
		return fmt.Sprintf("SNE V%X, 0x%02X", x, op.KK())
	case 0x5:
		return fmt.Sprintf("SE V%X, V%X", x, y)
	case 0x6:
		return fmt.Sprintf("LD V%X, 0x%02X", x, op.KK())
	case 0x7:
		return fmt.Sprintf("ADD V%X, 0x%02X", x, op.KK())
	case 0x8:
		if name, ok := aluMnemonics[op.N()]; ok {
			if op.N() == 0x6 || op.N() == 0xE {
				return fmt.Sprintf("%s V%X", name, x)
			}
			return fmt.Sprintf("%s V%X, V%X", name, x, y)
		}
	case 0x9:
		return fmt.Sprintf("SNE V%X, V%X", x, y)
	case 0xA:
		return fmt.Sprintf("LD I, 0x%03X", op.NNN())
	case 0xB:
		return fmt.Sprintf("JP V0, 0x%03X", op.NNN())
	case 0xC:
		return fmt.Sprintf("RND V%X, 0x%02X", x, op.KK())
	case 0xD:
		return fmt.Sprintf("DRW V%X, V%X, %d", x, y, op.N())
	case 0xE:
		switch op.KK() {
		case 0x9E:
			return fmt.Sprintf("SKP V%X", x)
		case 0xA1:
			return fmt.Sprintf("SKNP V%X", x)
		}
	case 0xF:
		if format, ok := miscMnemonics[op.KK()]; ok {
			return fmt.Sprintf(format, x)
		}
	}
	return fmt.Sprintf("DW 0x%04X", uint16(op))
}

var aluMnemonics = map[uint8]string{
	0x0: "LD",
	0x1: "OR",
	0x2: "AND",
	0x3: "XOR",
	0x4: "ADD",
	0x5: "SUB",
	0x6: "SHR",
	0x7: "SUBN",
	0xE: "SHL",
}

var miscMnemonics = map[uint8]string{
	0x07: "LD V%X, DT",
	0x0A: "LD V%X, K",
	0x15: "LD DT, V%X",
	0x18: "LD ST, V%X",
	0x1E: "ADD I, V%X",
	0x29: "LD F, V%X",
	0x33: "LD B, V%X",
	0x55: "LD [I], V%X",
	0x65: "LD V%X, [I]",
}
