// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// MachineConfig creates the machine configuration from the program options.
// The logger is passed to the machine for instruction tracing when debug
// logging is enabled.
func MachineConfig(opts options.Program, logger *log.Logger) (machine.Config, error) {
	cfg := machine.DefaultConfig()

	var err error
	if cfg.Quirks.Edge, err = machine.ParseEdgeMode(opts.Edge); err != nil {
		return machine.Config{}, fmt.Errorf("parsing edge mode: %w", err)
	}
	if cfg.Quirks.Index, err = machine.ParseIndexMode(opts.Index); err != nil {
		return machine.Config{}, fmt.Errorf("parsing index mode: %w", err)
	}
	if cfg.Quirks.KeyWait, err = machine.ParseKeyWaitMode(opts.KeyWait); err != nil {
		return machine.Config{}, fmt.Errorf("parsing key wait mode: %w", err)
	}
	cfg.Quirks.ResetFlagOnLogic = !opts.NoVFReset
	cfg.Quirks.ShiftFromY = !opts.ShiftX

	if opts.Debug {
		cfg.Logger = logger
	}
	return cfg, nil
}
