// Package runner drives a CHIP-8 program from file loading to the final
// machine state.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/opcode"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// StopReason describes why a run ended.
type StopReason int

const (
	StopTickLimit StopReason = iota // the configured number of ticks was run
	StopIdle                        // the program jumps to itself
	StopCanceled                    // the context was canceled
	StopError                       // a tick returned an error
)

func (r StopReason) String() string {
	switch r {
	case StopTickLimit:
		return "tick limit"
	case StopIdle:
		return "idle"
	case StopCanceled:
		return "canceled"
	case StopError:
		return "error"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// MaxHz is the highest tick rate that can be paced, one tick per nanosecond.
const MaxHz = uint(time.Second)

// Result contains the outcome of a run.
type Result struct {
	Machine   *machine.Machine
	Reason    StopReason
	Ticks     int // successfully completed ticks
	BeepTicks int // ticks after which the sound timer was active
}

// Runner orchestrates program loading and execution.
type Runner struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new program runner.
func New(logger *log.Logger) *Runner {
	return &Runner{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Run loads the program file of the options and executes it.
func (r *Runner) Run(ctx context.Context, opts options.Program) (Result, error) {
	program, err := r.loader.Load(opts.Input)
	if err != nil {
		return Result{}, fmt.Errorf("loading program: %w", err)
	}

	r.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("edge", opts.Edge),
		log.String("index", opts.Index),
		log.String("keywait", opts.KeyWait))

	return r.Execute(ctx, program, opts)
}

// Execute runs an in memory program with the machine settings of the
// options. This is useful for testing and programmatic usage where the
// program is not read from a file.
// On a tick error the returned result contains the machine state at the
// time of the error.
func (r *Runner) Execute(ctx context.Context, program []byte, opts options.Program) (Result, error) {
	cfg, err := config.MachineConfig(opts, r.logger)
	if err != nil {
		return Result{}, fmt.Errorf("creating machine config: %w", err)
	}
	m, err := machine.New(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("creating machine: %w", err)
	}
	if err := m.LoadProgram(program); err != nil {
		return Result{}, fmt.Errorf("loading program: %w", err)
	}

	var keypad machine.Keypad
	for _, key := range opts.HeldKeys {
		keypad[key&0x0F] = true
	}

	result := Result{Machine: m}
	err = r.loop(ctx, m, keypad, opts, &result)

	r.logger.Debug("Program stopped",
		log.Stringer("reason", result.Reason),
		log.Int("ticks", result.Ticks),
		log.Int("beep_ticks", result.BeepTicks),
		log.Hex("pc", m.PC()))
	return result, err
}

func (r *Runner) loop(ctx context.Context, m *machine.Machine, keypad machine.Keypad,
	opts options.Program, result *Result) error {

	var pacing <-chan time.Time
	if opts.Hz > 0 {
		ticker := time.NewTicker(tickInterval(opts.Hz))
		defer ticker.Stop()
		pacing = ticker.C
	}

	for opts.Ticks == 0 || uint(result.Ticks) < opts.Ticks {
		if err := wait(ctx, pacing); err != nil {
			result.Reason = StopCanceled
			return fmt.Errorf("running program: %w", err)
		}

		if opts.Idle && isIdle(m) {
			result.Reason = StopIdle
			return nil
		}

		pc := m.PC()
		if err := m.Tick(keypad); err != nil {
			result.Reason = StopError
			return fmt.Errorf("tick %d at $%04X: %w", result.Ticks, pc, err)
		}

		result.Ticks++
		if m.Beep() {
			result.BeepTicks++
		}
	}

	result.Reason = StopTickLimit
	return nil
}

// tickInterval returns the pacing interval for the tick rate, rates above
// MaxHz are paced at MaxHz.
func tickInterval(hz uint) time.Duration {
	if hz >= MaxHz {
		return time.Nanosecond
	}
	return time.Second / time.Duration(hz)
}

// wait blocks until the next pacing tick if pacing is enabled and returns
// the context error once the context is done.
func wait(ctx context.Context, pacing <-chan time.Time) error {
	if pacing == nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-pacing:
		return nil
	}
}

// isIdle returns whether the next instruction is a jump to itself. A machine
// in this state can only change its timers.
func isIdle(m *machine.Machine) bool {
	if m.Waiting() {
		return false
	}
	op, err := m.Fetch()
	if err != nil {
		return false
	}
	return op.Kind == opcode.Jump && op.NNN == m.PC()
}
