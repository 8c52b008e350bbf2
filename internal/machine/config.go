package machine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/retroenv/chip8vm/internal/font"
	"github.com/retroenv/retrogolib/log"
)

// Default random generator parameters. The generator computes
// seed = (multiplier*seed + increment) mod 256 mod modulus.
const (
	DefaultRandomSeed       = 123
	DefaultRandomMultiplier = 42
	DefaultRandomIncrement  = 31
	DefaultRandomModulus    = 13
)

// EdgeMode defines how sprites are drawn across the screen edge.
type EdgeMode uint8

const (
	EdgeWrap EdgeMode = iota // pixels wrap around to the opposite side
	EdgeClip                 // pixels beyond the right or bottom edge are discarded
)

var edgeModeNames = map[EdgeMode]string{
	EdgeWrap: "wrap",
	EdgeClip: "clip",
}

func (m EdgeMode) String() string {
	return modeName(edgeModeNames, m)
}

// ParseEdgeMode parses an edge mode name.
func ParseEdgeMode(s string) (EdgeMode, error) {
	return parseMode(edgeModeNames, s, "edge mode")
}

// IndexMode defines how the index register changes after block register
// transfers to or from memory.
type IndexMode uint8

const (
	IndexUnchanged   IndexMode = iota // I keeps its value
	IndexAddX                         // I is advanced by X
	IndexAddXPlusOne                  // I is advanced by X+1
)

var indexModeNames = map[IndexMode]string{
	IndexUnchanged:   "unchanged",
	IndexAddX:        "x",
	IndexAddXPlusOne: "x+1",
}

func (m IndexMode) String() string {
	return modeName(indexModeNames, m)
}

// ParseIndexMode parses an index mode name.
func ParseIndexMode(s string) (IndexMode, error) {
	return parseMode(indexModeNames, s, "index mode")
}

// KeyWaitMode defines the condition that completes a key wait instruction.
type KeyWaitMode uint8

const (
	KeyRelease KeyWaitMode = iota // a key was pressed and then released
	KeyPress                      // any key is currently down
)

var keyWaitModeNames = map[KeyWaitMode]string{
	KeyRelease: "release",
	KeyPress:   "press",
}

func (m KeyWaitMode) String() string {
	return modeName(keyWaitModeNames, m)
}

// ParseKeyWaitMode parses a key wait mode name.
func ParseKeyWaitMode(s string) (KeyWaitMode, error) {
	return parseMode(keyWaitModeNames, s, "key wait mode")
}

// Quirks contains the behaviors that differ between CHIP-8 interpreters.
type Quirks struct {
	Edge    EdgeMode
	Index   IndexMode
	KeyWait KeyWaitMode

	ResetFlagOnLogic bool // 8xy1/8xy2/8xy3 clear VF
	ShiftFromY       bool // 8xy6/8xyE shift VY into VX
}

// Config contains the machine configuration.
type Config struct {
	Font   []byte // glyph table copied to FontBase, font.GlyphSize bytes per digit
	Quirks Quirks

	RandomSeed       uint8
	RandomMultiplier uint8
	RandomIncrement  uint8
	RandomModulus    uint8

	Logger *log.Logger // optional, traces executed instructions at debug level
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{
		Font: font.Default(),
		Quirks: Quirks{
			Edge:             EdgeWrap,
			Index:            IndexUnchanged,
			KeyWait:          KeyRelease,
			ResetFlagOnLogic: true,
			ShiftFromY:       true,
		},
		RandomSeed:       DefaultRandomSeed,
		RandomMultiplier: DefaultRandomMultiplier,
		RandomIncrement:  DefaultRandomIncrement,
		RandomModulus:    DefaultRandomModulus,
	}
}

func (c Config) validate() error {
	if len(c.Font) < font.Size {
		return fmt.Errorf("font table has %d bytes, expected at least %d", len(c.Font), font.Size)
	}
	if FontBase+len(c.Font) > ProgramStart {
		return fmt.Errorf("font table of %d bytes overlaps program area", len(c.Font))
	}
	if c.RandomModulus == 0 {
		return fmt.Errorf("random modulus must not be 0")
	}
	if _, ok := edgeModeNames[c.Quirks.Edge]; !ok {
		return fmt.Errorf("unsupported edge mode %d", c.Quirks.Edge)
	}
	if _, ok := indexModeNames[c.Quirks.Index]; !ok {
		return fmt.Errorf("unsupported index mode %d", c.Quirks.Index)
	}
	if _, ok := keyWaitModeNames[c.Quirks.KeyWait]; !ok {
		return fmt.Errorf("unsupported key wait mode %d", c.Quirks.KeyWait)
	}
	return nil
}

func modeName[T ~uint8](names map[T]string, mode T) string {
	if name, ok := names[mode]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", uint8(mode))
}

func parseMode[T ~uint8](names map[T]string, s, kind string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range names {
		if name == s {
			return mode, nil
		}
	}

	valid := make([]string, 0, len(names))
	for _, name := range names {
		valid = append(valid, name)
	}
	sort.Strings(valid)
	var zero T
	return zero, fmt.Errorf("unsupported %s '%s', valid options: %s", kind, s, strings.Join(valid, ", "))
}
