package machine

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/opcode"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout and register file constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Font glyphs
//	0x050-0x1FF: Unused interpreter area
//	0x200-0xFFF: Program space (3584 bytes)
const (
	MemorySize   = 4096
	FontBase     = 0x000
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that can be loaded.
	MaxProgramSize = MemorySize - ProgramStart

	NumRegisters = 16
	FlagRegister = NumRegisters - 1
	StackSize    = 32
	NumKeys      = 16
)

// keyWait is the state of a pending key wait instruction.
type keyWait struct {
	active   bool
	register uint8 // register that receives the key index
	captured bool  // a key was seen pressed, waiting for its release
	key      uint8
}

// Machine is a CHIP-8 virtual machine instance.
type Machine struct {
	memory    [MemorySize]byte
	registers [NumRegisters]uint8
	stack     [StackSize]uint16
	sp        int

	pc    uint16
	index uint16
	delay uint8
	sound uint8
	seed  uint8

	wait   keyWait
	screen framebuffer

	quirks           Quirks
	randomMultiplier uint8
	randomIncrement  uint8
	randomModulus    uint8

	logger *log.Logger
}

// New returns a new machine for the given configuration, with the font
// copied into memory and the program counter at ProgramStart.
func New(cfg Config) (*Machine, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	m := &Machine{
		pc:               ProgramStart,
		seed:             cfg.RandomSeed,
		quirks:           cfg.Quirks,
		randomMultiplier: cfg.RandomMultiplier,
		randomIncrement:  cfg.RandomIncrement,
		randomModulus:    cfg.RandomModulus,
		logger:           cfg.Logger,
	}
	copy(m.memory[FontBase:], cfg.Font)
	return m, nil
}

// LoadProgram copies the program bytes to memory starting at ProgramStart.
// Memory stays unmodified if the program does not fit.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// Fetch reads and decodes the instruction at the program counter without
// executing it.
func (m *Machine) Fetch() (opcode.Opcode, error) {
	if err := checkRange(m.pc, opcode.Size); err != nil {
		return opcode.Opcode{}, err
	}
	word := opcode.FromBytes(m.memory[m.pc], m.memory[m.pc+1])
	return opcode.Decode(word)
}

// Screen returns a read-only view of the framebuffer.
func (m *Machine) Screen() Screen {
	return Screen{fb: &m.screen}
}

// Beep returns whether the sound timer is active.
func (m *Machine) Beep() bool {
	return m.sound > 0
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Index returns the index register.
func (m *Machine) Index() uint16 {
	return m.index
}

// Register returns the value of register VX, only the low nibble of x is used.
func (m *Machine) Register(x uint8) uint8 {
	return m.registers[x&0x0F]
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delay
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.sound
}

// StackDepth returns the number of return addresses on the stack.
func (m *Machine) StackDepth() int {
	return m.sp
}

// Waiting returns whether the machine is waiting for a key.
func (m *Machine) Waiting() bool {
	return m.wait.active
}

// ReadMemory returns the byte at the given address.
func (m *Machine) ReadMemory(address uint16) (byte, error) {
	if err := checkRange(address, 1); err != nil {
		return 0, err
	}
	return m.memory[address], nil
}

// checkRange verifies that length bytes starting at address are inside the
// memory bounds.
func checkRange(address uint16, length int) error {
	if int(address) >= MemorySize {
		return &MemoryError{Address: address}
	}
	if int(address)+length > MemorySize {
		return &MemoryError{Address: MemorySize}
	}
	return nil
}

// random advances the linear congruential generator and returns the new
// seed. The arithmetic wraps at 8 bits before the modulus is applied.
func (m *Machine) random() uint8 {
	m.seed = (m.randomMultiplier*m.seed + m.randomIncrement) % m.randomModulus
	return m.seed
}
