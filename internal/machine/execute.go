package machine

import (
	"github.com/retroenv/chip8vm/internal/font"
	"github.com/retroenv/chip8vm/internal/opcode"
)

// execute applies the semantics of a decoded opcode. All operands are read
// into locals before any register is written, as the destination register
// may be the flag register or alias a source register. Bounds and stack
// limits are checked before any state is changed.
//
//nolint:funlen,cyclop // one case per opcode kind
func (m *Machine) execute(op opcode.Opcode, keypad Keypad) error {
	vx := m.registers[op.X]
	vy := m.registers[op.Y]

	switch op.Kind {
	case opcode.System:
		// machine code routines are not supported and ignored
		m.pc += opcode.Size

	case opcode.Clear:
		m.screen.clear()
		m.pc += opcode.Size

	case opcode.Return:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case opcode.Jump:
		m.pc = op.NNN

	case opcode.Call:
		if m.sp >= StackSize {
			return ErrStackOverflow
		}
		m.stack[m.sp] = m.pc + opcode.Size
		m.sp++
		m.pc = op.NNN

	case opcode.SkipEqualImmediate:
		m.skipIf(vx == op.NN)
	case opcode.SkipNotEqualImmediate:
		m.skipIf(vx != op.NN)
	case opcode.SkipEqualRegister:
		m.skipIf(vx == vy)
	case opcode.SkipNotEqualRegister:
		m.skipIf(vx != vy)

	case opcode.LoadImmediate:
		m.registers[op.X] = op.NN
		m.pc += opcode.Size

	case opcode.AddImmediate:
		m.registers[op.X] = vx + op.NN
		m.pc += opcode.Size

	case opcode.Move:
		m.registers[op.X] = vy
		m.pc += opcode.Size

	case opcode.Or:
		m.logic(op.X, vx|vy)
	case opcode.And:
		m.logic(op.X, vx&vy)
	case opcode.Xor:
		m.logic(op.X, vx^vy)

	case opcode.AddCarry:
		sum := uint16(vx) + uint16(vy)
		m.setWithFlag(op.X, uint8(sum), boolToFlag(sum > 0xFF))

	case opcode.Subtract:
		m.setWithFlag(op.X, vx-vy, boolToFlag(vx >= vy))

	case opcode.SubtractReverse:
		m.setWithFlag(op.X, vy-vx, boolToFlag(vy >= vx))

	case opcode.ShiftRight:
		src := m.shiftSource(vx, vy)
		m.setWithFlag(op.X, src>>1, src&0x01)

	case opcode.ShiftLeft:
		src := m.shiftSource(vx, vy)
		m.setWithFlag(op.X, src<<1, src>>7)

	case opcode.LoadIndex:
		m.index = op.NNN
		m.pc += opcode.Size

	case opcode.JumpOffset:
		m.pc = op.NNN + uint16(m.registers[0])

	case opcode.Random:
		m.registers[op.X] = m.random() & op.NN
		m.pc += opcode.Size

	case opcode.Draw:
		return m.draw(vx, vy, op.N)

	case opcode.SkipKeyDown:
		m.skipIf(keypad[vx&0x0F])
	case opcode.SkipKeyUp:
		m.skipIf(!keypad[vx&0x0F])

	case opcode.LoadDelay:
		m.registers[op.X] = m.delay
		m.pc += opcode.Size

	case opcode.WaitKey:
		// the program counter advances once the key wait is resolved
		m.wait = keyWait{active: true, register: op.X}

	case opcode.SetDelay:
		m.delay = vx
		m.pc += opcode.Size

	case opcode.SetSound:
		m.sound = vx
		m.pc += opcode.Size

	case opcode.AddIndex:
		m.index += uint16(vx)
		m.pc += opcode.Size

	case opcode.LoadGlyph:
		m.index = FontBase + uint16(vx&0x0F)*font.GlyphSize
		m.pc += opcode.Size

	case opcode.StoreBCD:
		return m.storeBCD(vx)

	case opcode.StoreRegisters:
		return m.transferRegisters(op.X, true)

	case opcode.LoadRegisters:
		return m.transferRegisters(op.X, false)

	default:
		return &opcode.DecodeError{Word: op.Word}
	}
	return nil
}

// skipIf advances the program counter by one instruction, or by two
// instructions if the condition is true.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += opcode.Size
	}
	m.pc += opcode.Size
}

// logic stores the result of a bitwise operation.
func (m *Machine) logic(x, result uint8) {
	m.registers[x] = result
	if m.quirks.ResetFlagOnLogic {
		m.registers[FlagRegister] = 0
	}
	m.pc += opcode.Size
}

// setWithFlag stores an ALU result and its flag output. The flag is written
// last, so VF holds the flag if it is also the destination register.
func (m *Machine) setWithFlag(x, result, flag uint8) {
	m.registers[x] = result
	m.registers[FlagRegister] = flag
	m.pc += opcode.Size
}

func (m *Machine) shiftSource(vx, vy uint8) uint8 {
	if m.quirks.ShiftFromY {
		return vy
	}
	return vx
}

func (m *Machine) draw(x, y, rows uint8) error {
	if err := checkRange(m.index, int(rows)); err != nil {
		return err
	}

	start := int(m.index)
	sprite := m.memory[start : start+int(rows)]
	m.registers[FlagRegister] = m.screen.draw(int(x), int(y), sprite, m.quirks.Edge)
	m.pc += opcode.Size
	return nil
}

func (m *Machine) storeBCD(value uint8) error {
	if err := checkRange(m.index, 3); err != nil {
		return err
	}

	m.memory[m.index] = value / 100
	m.memory[m.index+1] = value / 10 % 10
	m.memory[m.index+2] = value % 10
	m.pc += opcode.Size
	return nil
}

// transferRegisters copies the registers V0 to VX to memory at the index
// register, or loads them from there.
func (m *Machine) transferRegisters(x uint8, store bool) error {
	count := int(x) + 1
	if err := checkRange(m.index, count); err != nil {
		return err
	}

	start := int(m.index)
	if store {
		copy(m.memory[start:start+count], m.registers[:count])
	} else {
		copy(m.registers[:count], m.memory[start:start+count])
	}

	switch m.quirks.Index {
	case IndexAddX:
		m.index += uint16(x)
	case IndexAddXPlusOne:
		m.index += uint16(x) + 1
	case IndexUnchanged:
	}
	m.pc += opcode.Size
	return nil
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
