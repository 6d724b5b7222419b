// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sampleapp provides a demonstration application for the BSP. Its
// worker tasks increment a shared counter under the BSP access lock.
package sampleapp

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/aibor/osalbsp"
	"github.com/aibor/osalbsp/rtems"
)

// Config defines the workload.
type Config struct {
	// Tasks is the number of worker tasks started on startup.
	Tasks int

	// Iterations is the number of counter increments per task.
	Iterations int
}

// App runs worker tasks on an executive.
type App struct {
	exec   *rtems.Executive
	cfg    Config
	logger *slog.Logger

	// counter is guarded by the BSP access lock.
	counter  int
	failures atomic.Int64
}

// New creates a new [App] that starts its tasks on the given executive.
func New(exec *rtems.Executive, cfg Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		exec:   exec,
		cfg:    cfg,
		logger: logger,
	}
}

// Application returns the hooks for [osalbsp.BSP.Main].
func (a *App) Application() osalbsp.Application {
	return osalbsp.Application{
		Startup: a.Startup,
		Run:     a.Run,
	}
}

// TaskName returns the name of the worker task with the given index.
func TaskName(index int) rtems.Name {
	return rtems.BuildName('T', 'K', byte('0'+index/10%10), byte('0'+index%10))
}

// Startup starts the worker tasks.
func (a *App) Startup(ctx context.Context, bsp *osalbsp.BSP) {
	for idx := range a.cfg.Tasks {
		name := TaskName(idx)

		id, err := a.exec.TaskStart(ctx, name, func(ctx context.Context) {
			a.work(ctx, bsp)
		})
		if err != nil {
			a.failures.Add(1)
			a.logger.Error("Failed to start task",
				slog.String("task", name.String()),
				slog.Any("error", err),
			)

			continue
		}

		a.logger.Debug("Started task",
			slog.String("task", name.String()),
			slog.String("id", id.String()),
		)
	}
}

func (a *App) work(ctx context.Context, bsp *osalbsp.BSP) {
	for range a.cfg.Iterations {
		if err := bsp.Lock(ctx); err != nil {
			a.failures.Add(1)

			if ctx.Err() != nil {
				return
			}

			continue
		}

		a.counter++

		if err := bsp.Unlock(ctx); err != nil {
			a.failures.Add(1)
		}

		if err := a.exec.TaskWakeAfter(ctx, 1); err != nil {
			return
		}
	}
}

// Run waits for all worker tasks and sets the exit code. It is [osalbsp.Success]
// only if every increment happened without any failure.
func (a *App) Run(_ context.Context, bsp *osalbsp.BSP) {
	if err := a.exec.Wait(); err != nil {
		a.failures.Add(1)
		a.logger.Error("Task failed", slog.Any("error", err))
	}

	status := osalbsp.Success
	if a.counter != a.Expected() || a.failures.Load() > 0 {
		status = osalbsp.Error
	}

	a.logger.Info("Workers done",
		slog.Int("counter", a.counter),
		slog.Int("expected", a.Expected()),
		slog.Int64("failures", a.failures.Load()),
	)

	bsp.SetExitCode(status)
	bsp.RequestShutdown()
}

// Counter returns the counter value. Only valid after [App.Run] returned.
func (a *App) Counter() int {
	return a.counter
}

// Failures returns the number of failed operations.
func (a *App) Failures() int64 {
	return a.failures.Load()
}

// Expected returns the counter value a successful run ends with.
func (a *App) Expected() int {
	return a.cfg.Tasks * a.cfg.Iterations
}
