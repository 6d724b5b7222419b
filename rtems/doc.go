// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rtems provides a small in-process model of a classic real-time
// executive API: directive status codes, object names and IDs, binary and
// counting semaphores and task suspension.
//
// It covers exactly the directives the board support glue forwards to. Task
// identity is carried in the [context.Context] passed to blocking directives,
// since goroutines have no identity of their own.
package rtems
