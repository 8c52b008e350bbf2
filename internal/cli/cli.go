// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/render"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/retrogolib/set"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one program file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Edge = strings.ToLower(opts.Edge)
	opts.Index = strings.ToLower(opts.Index)
	opts.KeyWait = strings.ToLower(opts.KeyWait)

	if _, err := machine.ParseEdgeMode(opts.Edge); err != nil {
		return err
	}
	if _, err := machine.ParseIndexMode(opts.Index); err != nil {
		return err
	}
	if _, err := machine.ParseKeyWaitMode(opts.KeyWait); err != nil {
		return err
	}

	if opts.Hz > runner.MaxHz {
		return fmt.Errorf("unsupported tick rate %d, valid range: 0-%d", opts.Hz, runner.MaxHz)
	}

	if opts.Scale < 1 || opts.Scale > render.MaxScale {
		return fmt.Errorf("unsupported scale %d, valid range: 1-%d", opts.Scale, render.MaxScale)
	}

	keys, err := ParseKeys(opts.Keys)
	if err != nil {
		return err
	}
	opts.HeldKeys = keys
	return nil
}

// ParseKeys parses a comma separated list of hexadecimal key codes. Duplicate
// keys are ignored, the result is sorted.
func ParseKeys(s string) ([]uint8, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	keys := set.New[uint8]()
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(strings.ToLower(field), "0x")

		key, err := strconv.ParseUint(field, 16, 8)
		if err != nil || key >= machine.NumKeys {
			return nil, fmt.Errorf("invalid key '%s', valid keys are 0-f", field)
		}
		keys.Add(uint8(key))
	}

	var result []uint8
	for key := uint8(0); key < machine.NumKeys; key++ {
		if keys.Contains(key) {
			result = append(result, key)
		}
	}
	return result, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.PNG, "png", "", "name of the PNG file to write the final display to")
	flags.UintVar(&opts.Ticks, "ticks", 600, "maximum number of ticks to run, 0 runs until interrupted")
	flags.UintVar(&opts.Hz, "hz", 0, "ticks per second, 0 runs as fast as possible")
	flags.StringVar(&opts.Keys, "keys", "", "comma separated hex keys that are held down during the run, for example 1,a,f")
	flags.BoolVar(&opts.Idle, "idle", false, "stop when the program jumps to itself")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.StringVar(&opts.Edge, "edge", machine.EdgeWrap.String(), "sprite edge handling (wrap/clip)")
	flags.StringVar(&opts.Index, "index", machine.IndexUnchanged.String(), "index register change after Fx55/Fx65 (unchanged/x/x+1)")
	flags.StringVar(&opts.KeyWait, "keywait", machine.KeyRelease.String(), "condition that completes Fx0A (release/press)")
	flags.BoolVar(&opts.NoVFReset, "no-vf-reset", false, "do not clear VF after 8xy1, 8xy2 and 8xy3")
	flags.BoolVar(&opts.ShiftX, "shift-x", false, "shift VX instead of VY for 8xy6 and 8xyE")

	flags.IntVar(&opts.Scale, "scale", 10, "pixel scale of the PNG image")
	flags.BoolVar(&opts.ASCII, "ascii", false, "print the display as ASCII even on a terminal")
	flags.BoolVar(&opts.NoPrint, "noprint", false, "do not print the final display")
}
