// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import (
	"context"
	"fmt"

	"github.com/aibor/osalbsp/rtems"
)

// ExitStatusFmt is the format of the exit status line printed by
// [BSP.ReturnStatus].
const ExitStatusFmt = "\nApplication exit status: %s (%d)\n\n"

// TranslateStatus maps an application status to an executive status code.
//
// [Success] becomes [rtems.Successful]. Anything else just means the main
// task exited and becomes [rtems.TaskExitted].
func TranslateStatus(status Status) rtems.StatusCode {
	if status == Success {
		return rtems.Successful
	}

	return rtems.TaskExitted
}

// ReturnStatus translates the current application status, prints it to the
// console and waits for the configured flush delay.
func (b *BSP) ReturnStatus(ctx context.Context) rtems.StatusCode {
	status := b.AppStatus()
	code := TranslateStatus(status)

	statusStr := "ERROR"
	if code == rtems.Successful {
		statusStr = "SUCCESS"
	}

	_, _ = fmt.Fprintf(b.console, ExitStatusFmt, statusStr, status)

	if err := b.kernel.TaskWakeAfter(ctx, b.flushDelay); err != nil {
		b.debug("rtems_task_wake_after", err)
	}

	return code
}
