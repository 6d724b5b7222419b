// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rtems

import "golang.org/x/sys/unix"

// Halt blocks the calling goroutine forever. It never returns.
//
// The thread sleeps in pause(2), so the runtime does not consider the
// program deadlocked if no other goroutine is left.
func (*Executive) Halt() {
	for {
		_ = unix.Pause()
	}
}
