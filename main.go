// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aibor/osalbsp/rtems"
)

// Hook is an application entry point called by [BSP.Main].
type Hook func(ctx context.Context, bsp *BSP)

// Application is the pair of hooks run by [BSP.Main].
type Application struct {
	// Startup should set up all tasks and resources, then return.
	Startup Hook

	// Run implements the background task. It should set the final status
	// with [BSP.SetExitCode] before returning. If nil, [BSP.IdleLoop] is
	// used.
	Run Hook
}

// Main creates a [BSP] for the given config and runs [BSP.Main].
func Main(ctx context.Context, cfg Config, app Application) rtems.StatusCode {
	return New(cfg).Main(ctx, app)
}

// Main is the BSP entry point.
//
// It clears the BSP state, creates the access mutex and runs the startup and
// then the run hook. The resulting application status is returned as
// executive status code, see [BSP.ReturnStatus].
//
// Failing to create the access mutex is not fatal. It is written to the
// debug output and all further lock operations fail. A panicking hook is
// logged and sets the application status to [Error]. Main always proceeds
// through all steps.
func (b *BSP) Main(ctx context.Context, app Application) rtems.StatusCode {
	b.reset()
	b.createAccessMutex()

	b.runHook(ctx, "startup", app.Startup)

	run := app.Run
	if run == nil {
		run = func(ctx context.Context, bsp *BSP) {
			bsp.IdleLoop(ctx)
		}
	}

	b.runHook(ctx, "run", run)

	return b.ReturnStatus(ctx)
}

func (b *BSP) createAccessMutex() {
	id, err := b.kernel.SemaphoreCreate(AccessMutexName, 1, accessMutexAttr, 0)
	if err != nil {
		b.debug("rtems_semaphore_create", err)
		return
	}

	b.mu.Lock()
	b.rtemsGlobal.AccessMutex = id
	b.mu.Unlock()

	b.logger.Debug("Created access mutex", slog.String("id", id.String()))
}

func (b *BSP) runHook(ctx context.Context, name string, hook Hook) {
	if hook == nil {
		return
	}

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		var err error
		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}

		b.logger.Error("Application hook failed",
			slog.String("hook", name),
			slog.Any("error", err),
		)

		b.SetExitCode(Error)
	}()

	hook(ctx, b)
}
