// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/chip8vm/internal/app"
	"github.com/retroenv/chip8vm/internal/cli"
	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/render"
	"github.com/retroenv/chip8vm/internal/runner"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	result, err := runner.New(logger).Run(ctx, opts)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		// Handle context cancellation (Ctrl+C) gracefully
		logger.Info("Operation cancelled")
	case result.Machine != nil:
		logger.Error("Program execution failed",
			log.Err(err),
			log.Hex("code", machine.ErrorCode(err)))
	default:
		logger.Fatal("Running program failed", log.Err(err))
	}

	app.PrintResult(logger, result)
	if err := app.WriteOutput(os.Stdout, opts, result, render.IsTerminal(os.Stdout)); err != nil {
		logger.Fatal("Writing output failed", log.Err(err))
	}
	os.Exit(app.ExitCode(err))
}
