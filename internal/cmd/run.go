// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/osalbsp"
	"github.com/aibor/osalbsp/internal/sampleapp"
	"github.com/aibor/osalbsp/rtems"
)

const localConfigFile = ".osalbsp-args"

// IO provides output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	return parseArgs(args, cfg.Stderr)
}

func run(ctx context.Context, flags *flags, cfg IO, logger *slog.Logger) int {
	exec := rtems.New(rtems.Config{
		TickDuration: flags.Tick,
		// Workers and the init task.
		MaxTasks: int(flags.Tasks) + 1,
	})

	app := sampleapp.New(exec, sampleapp.Config{
		Tasks:      int(flags.Tasks),
		Iterations: int(flags.Iterations),
	}, logger)

	bsp := osalbsp.New(osalbsp.Config{
		Kernel:     exec,
		Console:    cfg.Stdout,
		Logger:     logger,
		Args:       flags.AppArgs,
		FlushDelay: rtems.Interval(flags.FlushTicks),
	})

	code := bsp.Main(ctx, app.Application())

	if flags.Suspend {
		logger.Info("Suspending main task",
			slog.String("status", code.String()))
		bsp.Shutdown(ctx)
	}

	return int(code)
}

func handleParseArgsError(err error, logger *slog.Logger) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		logger.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the CLI command. It returns the exit code
// for the process.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err, newLogger(cfg.Stderr, false))
	}

	logger := newLogger(cfg.Stderr, flags.Debug)
	logger.Debug("Starting", slog.Any("args", flags.AppArgs))

	return run(ctx, flags, cfg, logger)
}
