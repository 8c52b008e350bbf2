package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// DecodeError is returned for instruction words that do not match any
// known opcode pattern.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid instruction $%04X", e.Word)
}

// FromBytes assembles an instruction word from two consecutive memory bytes,
// the first one being the high byte.
func FromBytes(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Decode decodes a raw instruction word. The word is matched against the
// CHIP-8 opcode table entries of its first nibble, words with a zero first
// nibble that match no entry are machine code calls.
func Decode(word uint16) (Opcode, error) {
	kind := lookupKind(word)
	if kind == Invalid {
		return Opcode{}, &DecodeError{Word: word}
	}

	op := Opcode{
		Kind: kind,
		Word: word,
		X:    extractRegisterX(word),
		Y:    extractRegisterY(word),
		N:    uint8(word & 0x000F),
		NN:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}
	return op.clearUnused(), nil
}

// lookupKind returns the kind of the opcode table entry that matches the
// word, or Invalid.
func lookupKind(word uint16) Kind {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[firstNibble] {
		if op.Info.Mask&word == op.Info.Value {
			return kinds[op.Info]
		}
	}
	if firstNibble == 0 {
		return System
	}
	return Invalid
}

// clearUnused zeroes the operand fields that the opcode kind does not use,
// so that decoded opcodes of the same instruction compare equal.
func (o Opcode) clearUnused() Opcode {
	res := Opcode{Kind: o.Kind, Word: o.Word}
	switch o.Kind {
	case Clear, Return:
	case System, Jump, Call, LoadIndex, JumpOffset:
		res.NNN = o.NNN
	case SkipEqualImmediate, SkipNotEqualImmediate, LoadImmediate, AddImmediate, Random:
		res.X, res.NN = o.X, o.NN
	case Draw:
		res.X, res.Y, res.N = o.X, o.Y, o.N
	case SkipKeyDown, SkipKeyUp, LoadDelay, WaitKey, SetDelay, SetSound,
		AddIndex, LoadGlyph, StoreBCD, StoreRegisters, LoadRegisters:
		res.X = o.X
	default:
		res.X, res.Y = o.X, o.Y
	}
	return res
}

// extractRegisterX extracts the X register nibble from an instruction word.
func extractRegisterX(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from an instruction word.
func extractRegisterY(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}
