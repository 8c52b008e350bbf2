// Package opcode provides decoding of raw CHIP-8 instruction words into
// typed opcode values.
package opcode

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

// Kind identifies the operation family of a decoded opcode.
type Kind uint8

// Opcode kinds, named after the operation they perform.
const (
	Invalid Kind = iota
	System                // 0nnn
	Clear                 // 00E0
	Return                // 00EE
	Jump                  // 1nnn
	Call                  // 2nnn
	SkipEqualImmediate    // 3xkk
	SkipNotEqualImmediate // 4xkk
	SkipEqualRegister     // 5xy0
	LoadImmediate         // 6xkk
	AddImmediate          // 7xkk
	Move                  // 8xy0
	Or                    // 8xy1
	And                   // 8xy2
	Xor                   // 8xy3
	AddCarry              // 8xy4
	Subtract              // 8xy5
	ShiftRight            // 8xy6
	SubtractReverse       // 8xy7
	ShiftLeft             // 8xyE
	SkipNotEqualRegister  // 9xy0
	LoadIndex             // Annn
	JumpOffset            // Bnnn
	Random                // Cxkk
	Draw                  // Dxyn
	SkipKeyDown           // Ex9E
	SkipKeyUp             // ExA1
	LoadDelay             // Fx07
	WaitKey               // Fx0A
	SetDelay              // Fx15
	SetSound              // Fx18
	AddIndex              // Fx1E
	LoadGlyph             // Fx29
	StoreBCD              // Fx33
	StoreRegisters        // Fx55
	LoadRegisters         // Fx65
)

var kindNames = [...]string{
	Invalid:               "Invalid",
	System:                "System",
	Clear:                 "Clear",
	Return:                "Return",
	Jump:                  "Jump",
	Call:                  "Call",
	SkipEqualImmediate:    "SkipEqualImmediate",
	SkipNotEqualImmediate: "SkipNotEqualImmediate",
	SkipEqualRegister:     "SkipEqualRegister",
	LoadImmediate:         "LoadImmediate",
	AddImmediate:          "AddImmediate",
	Move:                  "Move",
	Or:                    "Or",
	And:                   "And",
	Xor:                   "Xor",
	AddCarry:              "AddCarry",
	Subtract:              "Subtract",
	ShiftRight:            "ShiftRight",
	SubtractReverse:       "SubtractReverse",
	ShiftLeft:             "ShiftLeft",
	SkipNotEqualRegister:  "SkipNotEqualRegister",
	LoadIndex:             "LoadIndex",
	JumpOffset:            "JumpOffset",
	Random:                "Random",
	Draw:                  "Draw",
	SkipKeyDown:           "SkipKeyDown",
	SkipKeyUp:             "SkipKeyUp",
	LoadDelay:             "LoadDelay",
	WaitKey:               "WaitKey",
	SetDelay:              "SetDelay",
	SetSound:              "SetSound",
	AddIndex:              "AddIndex",
	LoadGlyph:             "LoadGlyph",
	StoreBCD:              "StoreBCD",
	StoreRegisters:        "StoreRegisters",
	LoadRegisters:         "LoadRegisters",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Opcode is a decoded CHIP-8 instruction. Only the operand fields used by
// the opcode kind are set, all others are zero.
type Opcode struct {
	Kind Kind
	Word uint16 // raw instruction word

	X   uint8  // first register index, 0-15
	Y   uint8  // second register index, 0-15
	N   uint8  // 4 bit immediate
	NN  uint8  // 8 bit immediate
	NNN uint16 // 12 bit address
}

// kinds maps the CHIP-8 opcode table entries to the opcode kinds.
var kinds = map[chip8.OpcodeInfo]Kind{
	chip8.Opcode00E0: Clear,
	chip8.Opcode00EE: Return,
	chip8.Opcode1000: Jump,
	chip8.Opcode2000: Call,
	chip8.Opcode3000: SkipEqualImmediate,
	chip8.Opcode4000: SkipNotEqualImmediate,
	chip8.Opcode5000: SkipEqualRegister,
	chip8.Opcode6000: LoadImmediate,
	chip8.Opcode7000: AddImmediate,
	chip8.Opcode8000: Move,
	chip8.Opcode8001: Or,
	chip8.Opcode8002: And,
	chip8.Opcode8003: Xor,
	chip8.Opcode8004: AddCarry,
	chip8.Opcode8005: Subtract,
	chip8.Opcode8006: ShiftRight,
	chip8.Opcode8007: SubtractReverse,
	chip8.Opcode800E: ShiftLeft,
	chip8.Opcode9000: SkipNotEqualRegister,
	chip8.OpcodeA000: LoadIndex,
	chip8.OpcodeB000: JumpOffset,
	chip8.OpcodeC000: Random,
	chip8.OpcodeD000: Draw,
	chip8.OpcodeE09E: SkipKeyDown,
	chip8.OpcodeE0A1: SkipKeyUp,
	chip8.OpcodeF007: LoadDelay,
	chip8.OpcodeF00A: WaitKey,
	chip8.OpcodeF015: SetDelay,
	chip8.OpcodeF018: SetSound,
	chip8.OpcodeF01E: AddIndex,
	chip8.OpcodeF029: LoadGlyph,
	chip8.OpcodeF033: StoreBCD,
	chip8.OpcodeF055: StoreRegisters,
	chip8.OpcodeF065: LoadRegisters,
}

// instructions maps the opcode kinds to the instruction set definitions
// of their opcode table entries.
var instructions = tableInstructions()

func tableInstructions() map[Kind]*chip8.Instruction {
	m := make(map[Kind]*chip8.Instruction, len(kinds))
	for _, opcodes := range chip8.Opcodes {
		for _, op := range opcodes {
			if kind, ok := kinds[op.Info]; ok {
				m[kind] = op.Instruction
			}
		}
	}
	return m
}

// Mnemonic returns the assembler mnemonic of the opcode.
func (o Opcode) Mnemonic() string {
	if ins, ok := instructions[o.Kind]; ok {
		return ins.Name
	}
	if o.Kind == System {
		return "sys"
	}
	return ""
}

// String returns the opcode in assembler notation, for example "ld V1, $0A".
func (o Opcode) String() string {
	name := o.Mnemonic()
	if name == "" {
		return fmt.Sprintf("$%04X", o.Word)
	}
	if params := o.params(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// params formats the operands of the opcode.
func (o Opcode) params() string {
	switch o.Kind {
	case System, Jump, Call:
		return fmt.Sprintf("$%03X", o.NNN)
	case JumpOffset:
		return fmt.Sprintf("V0, $%03X", o.NNN)
	case SkipEqualImmediate, SkipNotEqualImmediate, LoadImmediate, AddImmediate, Random:
		return fmt.Sprintf("V%X, $%02X", o.X, o.NN)
	case SkipEqualRegister, SkipNotEqualRegister, Move, Or, And, Xor, AddCarry,
		Subtract, SubtractReverse, ShiftRight, ShiftLeft:
		return fmt.Sprintf("V%X, V%X", o.X, o.Y)
	case LoadIndex:
		return fmt.Sprintf("I, $%03X", o.NNN)
	case Draw:
		return fmt.Sprintf("V%X, V%X, $%X", o.X, o.Y, o.N)
	case SkipKeyDown, SkipKeyUp:
		return fmt.Sprintf("V%X", o.X)
	case LoadDelay:
		return fmt.Sprintf("V%X, DT", o.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", o.X)
	case SetDelay:
		return fmt.Sprintf("DT, V%X", o.X)
	case SetSound:
		return fmt.Sprintf("ST, V%X", o.X)
	case AddIndex:
		return fmt.Sprintf("I, V%X", o.X)
	case LoadGlyph:
		return fmt.Sprintf("F, V%X", o.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", o.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], V%X", o.X)
	case LoadRegisters:
		return fmt.Sprintf("V%X, [I]", o.X)
	}
	return ""
}

// IsSkip returns true if the opcode conditionally skips the next instruction.
func (o Opcode) IsSkip() bool {
	ins, ok := instructions[o.Kind]
	if !ok {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}
