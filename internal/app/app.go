// Package app provides the main application helpers for the interpreter.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/render"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner logs the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8vm - CHIP-8 interpreter",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintResult logs the statistics of a finished run.
func PrintResult(logger *log.Logger, result runner.Result) {
	if result.Machine == nil {
		return
	}
	logger.Info("Program stopped",
		log.Stringer("reason", result.Reason),
		log.Int("ticks", result.Ticks),
		log.Int("beep_ticks", result.BeepTicks),
		log.Hex("pc", result.Machine.PC()),
		log.Int("pixels", result.Machine.Screen().Lit()))
}

// WriteOutput prints the final display to w and writes the PNG image if
// requested by the options. Unicode block characters are used when blocks
// is set and ASCII output was not forced.
func WriteOutput(w io.Writer, opts options.Program, result runner.Result, blocks bool) error {
	if result.Machine == nil {
		return nil
	}
	screen := result.Machine.Screen()

	if !opts.NoPrint {
		if err := render.Text(w, screen, blocks && !opts.ASCII); err != nil {
			return fmt.Errorf("printing display: %w", err)
		}
	}

	if opts.PNG == "" {
		return nil
	}
	file, err := os.Create(opts.PNG)
	if err != nil {
		return fmt.Errorf("creating image file %s: %w", opts.PNG, err)
	}
	if err := render.PNG(file, screen, opts.Scale); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing image file %s: %w", opts.PNG, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing image file %s: %w", opts.PNG, err)
	}
	return nil
}

// ExitCode returns the process exit code for the error of a run. A run that
// was canceled by the user is not a failure.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}
