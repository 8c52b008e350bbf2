// Package loader handles CHIP-8 program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// ErrEmptyProgram is returned for program files without content.
var ErrEmptyProgram = errors.New("program file is empty")

// Loader handles loading program files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new program loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a raw CHIP-8 program image. The file has no header, its
// content is copied to memory at machine.ProgramStart.
func (l *Loader) Load(path string) ([]byte, error) {
	if system := detectFromFile(path); system != arch.CHIP8System {
		l.logger.Warn("File extension does not indicate a CHIP-8 program, loading as raw program",
			log.String("file", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	l.logger.Debug("Loaded program",
		log.String("file", path),
		log.Int("size", len(data)))
	return data, nil
}

func validate(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyProgram
	}
	if len(data) > machine.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", machine.ErrProgramTooLarge, len(data), machine.MaxProgramSize)
	}
	return nil
}

// detectFromFile determines the system type based on file extension.
func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	default:
		return ""
	}
}
