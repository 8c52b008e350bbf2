package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseArgs(t, "pong.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, uint(600), opts.Ticks)
	assert.Equal(t, uint(0), opts.Hz)
	assert.Equal(t, machine.EdgeWrap.String(), opts.Edge)
	assert.Equal(t, machine.IndexUnchanged.String(), opts.Index)
	assert.Equal(t, machine.KeyRelease.String(), opts.KeyWait)
	assert.Equal(t, 10, opts.Scale)
	assert.False(t, opts.Idle)
	assert.False(t, opts.NoVFReset)
	assert.False(t, opts.ShiftX)
	assert.Empty(t, opts.HeldKeys)
}

func TestParseFlags_Options(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "ticks and hz",
			args: []string{"-ticks", "0", "-hz", "1000000000", "test.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, uint(0), opts.Ticks)
				assert.Equal(t, uint(1000000000), opts.Hz)
			},
		},
		{
			name: "quirks",
			args: []string{"-edge", "CLIP", "-index", "x+1", "-keywait", "press", "-no-vf-reset", "-shift-x", "test.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "clip", opts.Edge)
				assert.Equal(t, "x+1", opts.Index)
				assert.Equal(t, "press", opts.KeyWait)
				assert.True(t, opts.NoVFReset)
				assert.True(t, opts.ShiftX)
			},
		},
		{
			name: "keys",
			args: []string{"-keys", "f,1,A,1", "test.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, []uint8{0x1, 0xA, 0xF}, opts.HeldKeys)
			},
		},
		{
			name: "output",
			args: []string{"-png", "out.png", "-scale", "4", "-ascii", "-q", "test.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "out.png", opts.PNG)
				assert.Equal(t, 4, opts.Scale)
				assert.True(t, opts.ASCII)
				assert.True(t, opts.Quiet)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		usage    bool
		contains string
	}{
		{"missing file", nil, true, ""},
		{"flag after file", []string{"test.ch8", "-debug"}, true, "found after program file"},
		{"multiple files", []string{"a.ch8", "b.ch8"}, true, "Only one program file"},
		{"edge mode", []string{"-edge", "bounce", "test.ch8"}, false, "unsupported edge mode"},
		{"index mode", []string{"-index", "y", "test.ch8"}, false, "unsupported index mode"},
		{"key wait mode", []string{"-keywait", "hold", "test.ch8"}, false, "unsupported key wait mode"},
		{"scale", []string{"-scale", "0", "test.ch8"}, false, "unsupported scale"},
		{"tick rate", []string{"-hz", "2000000000", "test.ch8"}, false, "unsupported tick rate"},
		{"keys", []string{"-keys", "1,g", "test.ch8"}, false, "invalid key 'g'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		input   string
		want    []uint8
		wantErr bool
	}{
		{"", nil, false},
		{" ", nil, false},
		{"0", []uint8{0}, false},
		{"0x5, 3", []uint8{3, 5}, false},
		{"f,e,f", []uint8{0xE, 0xF}, false},
		{"10", nil, true},
		{"1,,2", nil, true},
		{"z", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			keys, err := ParseKeys(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, keys)
		})
	}
}
