// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aibor/osalbsp/rtems"
)

// testKernel forwards to a real executive unless a failure is configured.
type testKernel struct {
	*rtems.Executive

	createErr  error
	suspendErr error
	onCreate   func()

	mu        sync.Mutex
	wakeAfter []rtems.Interval

	haltOnce sync.Once
	halted   chan struct{}
}

func newTestKernel() *testKernel {
	return &testKernel{
		Executive: rtems.New(rtems.Config{TickDuration: time.Millisecond}),
		halted:    make(chan struct{}),
	}
}

func (k *testKernel) SemaphoreCreate(
	name rtems.Name,
	count uint32,
	attr rtems.Attribute,
	ceiling rtems.TaskPriority,
) (rtems.ID, error) {
	if k.onCreate != nil {
		k.onCreate()
	}

	if k.createErr != nil {
		return 0, k.createErr
	}

	return k.Executive.SemaphoreCreate(name, count, attr, ceiling)
}

func (k *testKernel) TaskSuspend(ctx context.Context, id rtems.ID) error {
	if k.suspendErr != nil {
		return k.suspendErr
	}

	return k.Executive.TaskSuspend(ctx, id)
}

func (k *testKernel) TaskWakeAfter(ctx context.Context, ticks rtems.Interval) error {
	k.mu.Lock()
	k.wakeAfter = append(k.wakeAfter, ticks)
	k.mu.Unlock()

	return k.Executive.TaskWakeAfter(ctx, ticks)
}

func (k *testKernel) Halt() {
	k.haltOnce.Do(func() {
		close(k.halted)
	})

	select {}
}

func (k *testKernel) wakeAfterCalls() []rtems.Interval {
	k.mu.Lock()
	defer k.mu.Unlock()

	return append([]rtems.Interval(nil), k.wakeAfter...)
}

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
