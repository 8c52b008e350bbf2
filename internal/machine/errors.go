package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/opcode"
)

var (
	// ErrProgramTooLarge is returned when a program does not fit into the
	// memory area starting at ProgramStart.
	ErrProgramTooLarge = errors.New("program too large for memory")
	// ErrStackOverflow is returned when a call is executed with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// MemoryError is returned for memory accesses outside of the addressable
// memory. Address is the first address that is out of bounds.
type MemoryError struct {
	Address uint16
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("out of bounds memory access at $%04X", e.Address)
}

// Numeric error codes of the embedding interface. The low 16 bits carry
// the instruction word or address for decode and memory errors.
const (
	CodeNone            uint32 = 0
	CodeUnknown         uint32 = 0x10000000
	CodeDecode          uint32 = 0x10010000
	CodeMemory          uint32 = 0x10020000
	CodeProgramTooLarge uint32 = 0x10030000
	CodeStackOverflow   uint32 = 0x10040000
	CodeStackUnderflow  uint32 = 0x10050000
)

// ErrorCode converts an error returned by the machine to its numeric code.
func ErrorCode(err error) uint32 {
	if err == nil {
		return CodeNone
	}

	var decodeErr *opcode.DecodeError
	if errors.As(err, &decodeErr) {
		return CodeDecode | uint32(decodeErr.Word)
	}
	var memErr *MemoryError
	if errors.As(err, &memErr) {
		return CodeMemory | uint32(memErr.Address)
	}

	switch {
	case errors.Is(err, ErrProgramTooLarge):
		return CodeProgramTooLarge
	case errors.Is(err, ErrStackOverflow):
		return CodeStackOverflow
	case errors.Is(err, ErrStackUnderflow):
		return CodeStackUnderflow
	default:
		return CodeUnknown
	}
}
