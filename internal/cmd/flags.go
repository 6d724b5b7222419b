// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/aibor/osalbsp"
	"github.com/aibor/osalbsp/rtems"
)

const (
	name = "osalbsp"

	tasksDefault = 4
	tasksMin     = 1
	tasksMax     = rtems.DefaultMaxTasks - 1

	iterationsDefault = 10
	iterationsMin     = 1
	iterationsMax     = 100000

	flushTicksDefault = uint64(osalbsp.DefaultFlushDelay)
	flushTicksMax     = 10000

	usageMessage = `Usage of 'osalbsp':
    osalbsp [flags...] [appargs...]

Runs the sample application on the BSP and exits with the executive status
code of the application's exit status.

All osalbsp flags can also be provided via environment variable OSALBSP_ARGS:
	OSALBSP_ARGS="-debug -tasks=8" osalbsp

All osalbsp flags can also be provided via file ./.osalbsp-args, with one
argument per line.

With -suspend the process does not exit on its own. Use SIGQUIT or SIGKILL to
terminate it.
`
)

type flags struct {
	Tasks      uint64
	Iterations uint64
	FlushTicks uint64
	Tick       time.Duration
	AppArgs    []string

	Suspend bool
	Debug   bool
	Version bool

	flagSet *flag.FlagSet
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		Tasks:      tasksDefault,
		Iterations: iterationsDefault,
		FlushTicks: flushTicksDefault,
		Tick:       rtems.DefaultTickDuration,
	}

	flags.initFlagset(output)

	err := flags.parseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) parseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}

		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.Version {
		return f.printVersionInformation()
	}

	if f.Tick <= 0 {
		return f.fail("tick must be positive", nil)
	}

	// All positional arguments are passed to the application.
	f.AppArgs = append([]string{}, f.flagSet.Args()...)

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.Tasks,
			Lower: tasksMin,
			Upper: tasksMax,
		},
		"tasks",
		"number of worker tasks the sample application starts",
	)

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.Iterations,
			Lower: iterationsMin,
			Upper: iterationsMax,
		},
		"iterations",
		"number of locked counter increments per task",
	)

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.FlushTicks,
			Upper: flushTicksMax,
		},
		"flushTicks",
		"ticks to wait after printing the exit status",
	)

	flagSet.DurationVar(
		&f.Tick,
		"tick",
		f.Tick,
		"duration of a clock tick",
	)

	flagSet.BoolVar(
		&f.Suspend,
		"suspend",
		f.Suspend,
		"suspend the main task instead of exiting",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
