// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import "context"

// Shutdown suspends the calling task. It never returns.
//
// A resumed task is suspended again. If suspension fails, the task halts.
func (b *BSP) Shutdown(ctx context.Context) {
	for {
		if err := b.kernel.TaskSuspend(ctx, b.kernel.TaskSelf(ctx)); err != nil {
			b.debug("rtems_task_suspend", err)
			b.kernel.Halt()
		}
	}
}

// RequestShutdown makes [BSP.IdleLoop] return. It may be called more than
// once.
func (b *BSP) RequestShutdown() {
	b.shutdownOnce.Do(func() {
		close(b.shutdown)
	})
}

// IdleLoop blocks until [BSP.RequestShutdown] is called or the context is
// done. It is the default run hook.
func (b *BSP) IdleLoop(ctx context.Context) {
	select {
	case <-b.shutdown:
	case <-ctx.Done():
	}
}
