package machine

import (
	"github.com/retroenv/chip8vm/internal/opcode"
	"github.com/retroenv/retrogolib/log"
)

// Keypad is a snapshot of the 16 key hexadecimal keypad, indexed by key
// code 0x0-0xF. True means the key is down.
type Keypad [NumKeys]bool

// Pressed returns the lowest key code that is down.
func (k Keypad) Pressed() (uint8, bool) {
	for i, down := range k {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// Tick performs one machine step using the given keypad state. If a key
// wait is pending, the keypad is evaluated and no instruction is fetched.
// Otherwise one instruction is fetched, decoded and executed. The delay and
// sound timers are decremented by one on every call, including failing ones.
func (m *Machine) Tick(keypad Keypad) error {
	defer m.decrementTimers()

	if m.wait.active {
		m.resolveKeyWait(keypad)
		return nil
	}

	op, err := m.Fetch()
	if err != nil {
		return err
	}

	if m.logger != nil {
		m.logger.Debug("Executing instruction",
			log.Hex("pc", m.pc),
			log.String("instruction", op.String()))
	}

	return m.execute(op, keypad)
}

func (m *Machine) decrementTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// resolveKeyWait checks the keypad against the configured key wait
// condition and completes the wait instruction once it holds.
func (m *Machine) resolveKeyWait(keypad Keypad) {
	if m.quirks.KeyWait == KeyPress {
		if key, ok := keypad.Pressed(); ok {
			m.completeKeyWait(key)
		}
		return
	}

	if !m.wait.captured {
		if key, ok := keypad.Pressed(); ok {
			m.wait.captured = true
			m.wait.key = key
		}
		return
	}
	if !keypad[m.wait.key] {
		m.completeKeyWait(m.wait.key)
	}
}

func (m *Machine) completeKeyWait(key uint8) {
	m.registers[m.wait.register] = key
	m.wait = keyWait{}
	m.pc += opcode.Size

	if m.logger != nil {
		m.logger.Debug("Key wait completed",
			log.Hex("key", key),
			log.Hex("pc", m.pc))
	}
}
