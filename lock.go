// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import (
	"context"
	"fmt"

	"github.com/aibor/osalbsp/rtems"
)

// Lock obtains the access mutex. It blocks without timeout.
//
// Failures are written to the debug output and returned wrapped in
// [ErrLock]. Callers that only need best effort locking may ignore the
// error.
func (b *BSP) Lock(ctx context.Context) error {
	err := b.kernel.SemaphoreObtain(ctx, b.AccessMutex(), rtems.Wait, rtems.NoTimeout)
	if err != nil {
		b.debug("rtems_semaphore_obtain", err)
		return fmt.Errorf("%w: %w", ErrLock, err)
	}

	return nil
}

// Unlock releases the access mutex.
//
// Failures are written to the debug output and returned wrapped in
// [ErrUnlock].
func (b *BSP) Unlock(ctx context.Context) error {
	err := b.kernel.SemaphoreRelease(ctx, b.AccessMutex())
	if err != nil {
		b.debug("rtems_semaphore_release", err)
		return fmt.Errorf("%w: %w", ErrUnlock, err)
	}

	return nil
}
