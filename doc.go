// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package osalbsp provides the board support glue between a real-time
// executive and an OS abstraction layer.
//
// A [BSP] is created once at process start and passed to everything that
// needs the low level access lock. [BSP.Main] clears the BSP state, creates
// the access mutex, runs the application's startup and run hooks and
// translates the application's exit status into an executive status code.
package osalbsp
