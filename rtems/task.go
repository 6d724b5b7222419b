// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rtems

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
)

type taskKey struct{}

type task struct {
	name Name

	mu        sync.Mutex
	suspended bool
	resume    chan struct{}
}

func (t *task) suspend() (<-chan struct{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.suspended {
		return nil, AlreadySuspended
	}

	t.suspended = true
	t.resume = make(chan struct{})

	return t.resume, nil
}

func (t *task) wake() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.suspended {
		return IncorrectState
	}

	t.suspended = false
	close(t.resume)

	return nil
}

// pending returns the resume channel if the task is suspended, nil
// otherwise.
func (t *task) pending() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.suspended {
		return nil
	}

	return t.resume
}

// addTask registers a new task. The caller must hold e.mu.
func (e *Executive) addTask(name Name) ID {
	index := e.nextIndex(classTasks, func(i uint16) bool {
		_, exists := e.tasks[i]
		return exists
	})
	e.tasks[index] = &task{name: name}

	return makeID(classTasks, index)
}

// TaskStart creates a new task and runs the given entry function in its own
// goroutine. The context passed to the entry function carries the new task's
// identity.
//
// A panicking entry function terminates only its task. The panic is reported
// as [TaskExitted] by [Executive.Wait].
func (e *Executive) TaskStart(
	ctx context.Context,
	name Name,
	entry func(ctx context.Context),
) (ID, error) {
	if name == 0 {
		return 0, InvalidName
	}

	e.mu.Lock()

	if len(e.tasks) >= e.cfg.MaxTasks {
		e.mu.Unlock()
		return 0, TooMany
	}

	id := e.addTask(name)
	e.mu.Unlock()

	taskCtx := context.WithValue(ctx, taskKey{}, id)

	e.group.Go(func() (err error) {
		defer e.removeTask(id)

		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("task %s (%s): %w: %v", name, id, TaskExitted, rec)
			}
		}()

		entry(taskCtx)

		return nil
	})

	return id, nil
}

func (e *Executive) removeTask(id ID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.tasks, id.index())
}

// Wait blocks until all started tasks have returned. It returns the first
// error of a task that exited abnormally.
func (e *Executive) Wait() error {
	return e.group.Wait() //nolint:wrapcheck
}

// TaskSelf returns the ID of the calling task. Callers without task identity
// in their context are treated as the init task.
func (e *Executive) TaskSelf(ctx context.Context) ID {
	if id, ok := ctx.Value(taskKey{}).(ID); ok {
		return id
	}

	return e.initTask
}

// TaskName returns the name of the task with the given ID.
func (e *Executive) TaskName(id ID) (Name, error) {
	t, err := e.task(id)
	if err != nil {
		return 0, err
	}

	return t.name, nil
}

// TaskSuspend suspends the task with the given ID.
//
// Suspending the calling task blocks until it is resumed by
// [Executive.TaskResume] or the context is done. Any other task is marked
// suspended and blocks at its next call of [Executive.TaskWakeAfter].
func (e *Executive) TaskSuspend(ctx context.Context, id ID) error {
	t, err := e.task(id)
	if err != nil {
		return err
	}

	resume, err := t.suspend()
	if err != nil {
		return err
	}

	if id != e.TaskSelf(ctx) {
		return nil
	}

	return e.blockSuspended(ctx, t, resume)
}

// TaskResume resumes the suspended task with the given ID.
func (e *Executive) TaskResume(id ID) error {
	t, err := e.task(id)
	if err != nil {
		return err
	}

	return t.wake()
}

// TaskIsSuspended reports whether the task with the given ID is suspended.
func (e *Executive) TaskIsSuspended(id ID) (bool, error) {
	t, err := e.task(id)
	if err != nil {
		return false, err
	}

	return t.pending() != nil, nil
}

// TaskWakeAfter blocks the calling task for the given number of ticks. Zero
// ticks yield the processor. Afterwards the task blocks as long as it is
// suspended.
func (e *Executive) TaskWakeAfter(ctx context.Context, ticks Interval) error {
	if ticks == 0 {
		runtime.Gosched()
	} else {
		timer := time.NewTimer(ticks.duration(e.cfg.TickDuration))
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", Timeout, ctx.Err())
		}
	}

	t, err := e.task(e.TaskSelf(ctx))
	if err != nil {
		// Task was removed concurrently, nothing to wait for.
		return nil //nolint:nilerr
	}

	if resume := t.pending(); resume != nil {
		return e.blockSuspended(ctx, t, resume)
	}

	return nil
}

func (e *Executive) blockSuspended(
	ctx context.Context,
	t *task,
	resume <-chan struct{},
) error {
	select {
	case <-resume:
		return nil
	case <-ctx.Done():
		_ = t.wake()
		return fmt.Errorf("%w: %w", Timeout, ctx.Err())
	}
}

func (e *Executive) task(id ID) (*task, error) {
	if id.class() != classTasks {
		return nil, InvalidID
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t, exists := e.tasks[id.index()]
	if !exists {
		return nil, InvalidID
	}

	return t, nil
}
