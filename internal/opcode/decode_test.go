package opcode

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected Opcode
	}{
		{"cls", 0x00E0, Opcode{Kind: Clear, Word: 0x00E0}},
		{"ret", 0x00EE, Opcode{Kind: Return, Word: 0x00EE}},
		{"sys", 0x0123, Opcode{Kind: System, Word: 0x0123, NNN: 0x123}},
		{"jp", 0x1ABC, Opcode{Kind: Jump, Word: 0x1ABC, NNN: 0xABC}},
		{"call", 0x2300, Opcode{Kind: Call, Word: 0x2300, NNN: 0x300}},
		{"se byte", 0x3A42, Opcode{Kind: SkipEqualImmediate, Word: 0x3A42, X: 0xA, NN: 0x42}},
		{"sne byte", 0x4B01, Opcode{Kind: SkipNotEqualImmediate, Word: 0x4B01, X: 0xB, NN: 0x01}},
		{"se reg", 0x5120, Opcode{Kind: SkipEqualRegister, Word: 0x5120, X: 1, Y: 2}},
		{"ld byte", 0x6FFF, Opcode{Kind: LoadImmediate, Word: 0x6FFF, X: 0xF, NN: 0xFF}},
		{"add byte", 0x7310, Opcode{Kind: AddImmediate, Word: 0x7310, X: 3, NN: 0x10}},
		{"ld reg", 0x8120, Opcode{Kind: Move, Word: 0x8120, X: 1, Y: 2}},
		{"or", 0x8121, Opcode{Kind: Or, Word: 0x8121, X: 1, Y: 2}},
		{"and", 0x8122, Opcode{Kind: And, Word: 0x8122, X: 1, Y: 2}},
		{"xor", 0x8123, Opcode{Kind: Xor, Word: 0x8123, X: 1, Y: 2}},
		{"add reg", 0x8F14, Opcode{Kind: AddCarry, Word: 0x8F14, X: 0xF, Y: 1}},
		{"sub", 0x8125, Opcode{Kind: Subtract, Word: 0x8125, X: 1, Y: 2}},
		{"shr", 0x8126, Opcode{Kind: ShiftRight, Word: 0x8126, X: 1, Y: 2}},
		{"subn", 0x8127, Opcode{Kind: SubtractReverse, Word: 0x8127, X: 1, Y: 2}},
		{"shl", 0x812E, Opcode{Kind: ShiftLeft, Word: 0x812E, X: 1, Y: 2}},
		{"sne reg", 0x9AB0, Opcode{Kind: SkipNotEqualRegister, Word: 0x9AB0, X: 0xA, Y: 0xB}},
		{"ld i", 0xA2F0, Opcode{Kind: LoadIndex, Word: 0xA2F0, NNN: 0x2F0}},
		{"jp v0", 0xB400, Opcode{Kind: JumpOffset, Word: 0xB400, NNN: 0x400}},
		{"rnd", 0xC70F, Opcode{Kind: Random, Word: 0xC70F, X: 7, NN: 0x0F}},
		{"drw", 0xD125, Opcode{Kind: Draw, Word: 0xD125, X: 1, Y: 2, N: 5}},
		{"skp", 0xE59E, Opcode{Kind: SkipKeyDown, Word: 0xE59E, X: 5}},
		{"sknp", 0xE5A1, Opcode{Kind: SkipKeyUp, Word: 0xE5A1, X: 5}},
		{"ld dt to reg", 0xF307, Opcode{Kind: LoadDelay, Word: 0xF307, X: 3}},
		{"ld key", 0xF30A, Opcode{Kind: WaitKey, Word: 0xF30A, X: 3}},
		{"ld dt", 0xF315, Opcode{Kind: SetDelay, Word: 0xF315, X: 3}},
		{"ld st", 0xF318, Opcode{Kind: SetSound, Word: 0xF318, X: 3}},
		{"add i", 0xF31E, Opcode{Kind: AddIndex, Word: 0xF31E, X: 3}},
		{"ld f", 0xF329, Opcode{Kind: LoadGlyph, Word: 0xF329, X: 3}},
		{"ld b", 0xF333, Opcode{Kind: StoreBCD, Word: 0xF333, X: 3}},
		{"ld [i]", 0xF355, Opcode{Kind: StoreRegisters, Word: 0xF355, X: 3}},
		{"ld from [i]", 0xF365, Opcode{Kind: LoadRegisters, Word: 0xF365, X: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	words := []uint16{
		0x5121, // se with non zero low nibble
		0x912F,
		0x8128, // unused arithmetic sub opcode
		0x812F,
		0xE19F,
		0xE1A2,
		0xF100,
		0xF1FF,
	}

	for _, word := range words {
		op, err := Decode(word)
		assert.Error(t, err)
		assert.Equal(t, Opcode{}, op)

		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, word, decodeErr.Word)
	}
}

func TestDecodeAllWords(t *testing.T) {
	// every word either decodes to a valid kind with register indices in
	// range or fails with the word attached
	for w := 0; w <= 0xFFFF; w++ {
		word := uint16(w)
		op, err := Decode(word)
		if err != nil {
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) || decodeErr.Word != word {
				t.Fatalf("unexpected error for $%04X: %v", word, err)
			}
			continue
		}
		if op.Kind == Invalid || op.X > 0xF || op.Y > 0xF || op.Word != word {
			t.Fatalf("unexpected opcode for $%04X: %+v", word, op)
		}
	}
}

func TestFromBytes(t *testing.T) {
	assert.Equal(t, uint16(0xA2F0), FromBytes(0xA2, 0xF0))
	assert.Equal(t, uint16(0x00FF), FromBytes(0x00, 0xFF))
}

func TestDecodeError(t *testing.T) {
	err := &DecodeError{Word: 0x8128}
	assert.Equal(t, "invalid instruction $8128", err.Error())
}
