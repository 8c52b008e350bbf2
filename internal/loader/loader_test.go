package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.ch8", []byte{0x12, 0x00})

		data, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x00}, data)
	})

	t.Run("load file with unknown extension", func(t *testing.T) {
		tmpFile := createTempFile(t, "test.bin", []byte{0x00, 0xE0})

		data, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, 2)
	})

	t.Run("load maximum size program", func(t *testing.T) {
		tmpFile := createTempFile(t, "full.ch8", make([]byte, machine.MaxProgramSize))

		data, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, machine.MaxProgramSize)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "reading file")
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, "empty.ch8", nil)

		_, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})

	t.Run("error on too large file", func(t *testing.T) {
		tmpFile := createTempFile(t, "large.ch8", make([]byte, machine.MaxProgramSize+1))

		_, err := New(log.NewTestLogger(t)).Load(tmpFile)
		assert.True(t, errors.Is(err, machine.ErrProgramTooLarge))
		assert.Equal(t, machine.CodeProgramTooLarge, machine.ErrorCode(err))
	})
}

func TestDetectFromFile(t *testing.T) {
	tests := []struct {
		file string
		want arch.System
	}{
		{"pong.ch8", arch.CHIP8System},
		{"PONG.CH8", arch.CHIP8System},
		{"maze.c8", arch.CHIP8System},
		{"test.rom", arch.CHIP8System},
		{"game.nes", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.want, detectFromFile(tt.file))
		})
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
