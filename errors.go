// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import "errors"

var (
	// ErrLock is returned if the access mutex could not be obtained.
	ErrLock = errors.New("bsp lock failed")
	// ErrUnlock is returned if the access mutex could not be released.
	ErrUnlock = errors.New("bsp unlock failed")
	// ErrPanic is logged if an application hook panicked.
	ErrPanic = errors.New("hook panicked")
)
