// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rtems

import (
	"context"
	"fmt"
	"math"
	"sync"

	xsemaphore "golang.org/x/sync/semaphore"
)

// MaxSemaphoreCount is the upper bound of counting semaphores.
const MaxSemaphoreCount = math.MaxInt32

type semaphore struct {
	name    Name
	attr    Attribute
	ceiling TaskPriority
	weights *xsemaphore.Weighted

	// deleted is done once the semaphore is deleted. Blocked obtainers are
	// woken by it.
	deleted context.Context
	remove  context.CancelFunc

	mu    sync.Mutex
	held  int64
	owner ID
}

func (s *semaphore) acquired(by ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.held++
	if s.attr.binary() {
		s.owner = by
	}
}

func (s *semaphore) release(by ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attr.binary() {
		if s.held == 0 || (s.owner != 0 && s.owner != by) {
			return NotOwnerOfResource
		}

		s.owner = 0
	} else if s.held == 0 {
		return Unsatisfied
	}

	s.held--
	s.weights.Release(1)

	return nil
}

func (s *semaphore) inUse() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attr.binary() && s.owner != 0
}

// SemaphoreCreate creates a new semaphore with the given initial count.
//
// Binary semaphores are mutexes and accept only the counts 0 and 1. Priority
// inheritance is only defined for binary semaphores without priority
// ceiling. Priorities are recorded but not enforced, since goroutines have no
// priority.
func (e *Executive) SemaphoreCreate(
	name Name,
	count uint32,
	attr Attribute,
	ceiling TaskPriority,
) (ID, error) {
	if name == 0 {
		return 0, InvalidName
	}

	maxCount := int64(MaxSemaphoreCount)
	if attr.binary() {
		maxCount = 1
	}

	if int64(count) > maxCount {
		return 0, InvalidNumber
	}

	if attr.has(InheritPriority) &&
		(!attr.binary() || attr.has(PriorityCeiling)) {
		return 0, NotDefined
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.semaphores) >= e.cfg.MaxSemaphores {
		return 0, TooMany
	}

	sem := &semaphore{
		name:    name,
		attr:    attr,
		ceiling: ceiling,
		weights: xsemaphore.NewWeighted(maxCount),
		held:    maxCount - int64(count),
	}

	// A fresh semaphore always has the capacity.
	if sem.held > 0 {
		_ = sem.weights.TryAcquire(sem.held)
	}

	sem.deleted, sem.remove = context.WithCancel(context.Background())

	index := e.nextIndex(classSemaphores, func(i uint16) bool {
		_, exists := e.semaphores[i]
		return exists
	})
	e.semaphores[index] = sem

	return makeID(classSemaphores, index), nil
}

// SemaphoreObtain acquires the semaphore with the given ID.
//
// With [NoWait] it fails immediately with [Unsatisfied] if the semaphore is
// not available. With [Wait] it blocks for the given number of ticks, or
// forever for [NoTimeout]. Waiters are woken with [ObjectWasDeleted] if the
// semaphore is deleted. Cancellation of the context results in [Timeout]
// wrapping the context's error.
func (e *Executive) SemaphoreObtain(
	ctx context.Context,
	id ID,
	opt Option,
	timeout Interval,
) error {
	sem, err := e.semaphore(id)
	if err != nil {
		return err
	}

	self := e.TaskSelf(ctx)

	if opt == NoWait {
		if !sem.weights.TryAcquire(1) {
			return Unsatisfied
		}

		sem.acquired(self)

		return nil
	}

	var (
		acquireCtx context.Context
		cancel     context.CancelFunc
	)

	if timeout == NoTimeout {
		acquireCtx, cancel = context.WithCancel(ctx)
	} else {
		acquireCtx, cancel = context.WithTimeout(ctx,
			timeout.duration(e.cfg.TickDuration))
	}
	defer cancel()

	stop := context.AfterFunc(sem.deleted, cancel)
	defer stop()

	if err := sem.weights.Acquire(acquireCtx, 1); err != nil {
		switch {
		case sem.deleted.Err() != nil:
			return ObjectWasDeleted
		case ctx.Err() != nil:
			return fmt.Errorf("%w: %w", Timeout, ctx.Err())
		default:
			return Timeout
		}
	}

	if sem.deleted.Err() != nil {
		sem.weights.Release(1)
		return ObjectWasDeleted
	}

	sem.acquired(self)

	return nil
}

// SemaphoreRelease releases the semaphore with the given ID.
//
// Binary semaphores can only be released by the task holding them.
func (e *Executive) SemaphoreRelease(ctx context.Context, id ID) error {
	sem, err := e.semaphore(id)
	if err != nil {
		return err
	}

	return sem.release(e.TaskSelf(ctx))
}

// SemaphoreDelete deletes the semaphore with the given ID. A binary semaphore
// that is currently held can not be deleted.
func (e *Executive) SemaphoreDelete(id ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sem, err := e.lookupSemaphore(id)
	if err != nil {
		return err
	}

	if sem.inUse() {
		return ResourceInUse
	}

	delete(e.semaphores, id.index())
	sem.remove()

	return nil
}

// SemaphoreName returns the name of the semaphore with the given ID.
func (e *Executive) SemaphoreName(id ID) (Name, error) {
	sem, err := e.semaphore(id)
	if err != nil {
		return 0, err
	}

	return sem.name, nil
}

func (e *Executive) semaphore(id ID) (*semaphore, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lookupSemaphore(id)
}

func (e *Executive) lookupSemaphore(id ID) (*semaphore, error) {
	if id.class() != classSemaphores {
		return nil, InvalidID
	}

	sem, exists := e.semaphores[id.index()]
	if !exists {
		return nil, InvalidID
	}

	return sem, nil
}
