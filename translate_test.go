// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/aibor/osalbsp"
	"github.com/aibor/osalbsp/rtems"
	"github.com/stretchr/testify/assert"
)

func TestTranslateStatus(t *testing.T) {
	tests := []struct {
		status   osalbsp.Status
		expected rtems.StatusCode
	}{
		{osalbsp.Success, rtems.Successful},
		{osalbsp.Error, rtems.TaskExitted},
		{osalbsp.SemFailure, rtems.TaskExitted},
		{osalbsp.ErrNotImplemented, rtems.TaskExitted},
		{osalbsp.Status(42), rtems.TaskExitted},
		{osalbsp.Status(-1000), rtems.TaskExitted},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, osalbsp.TranslateStatus(tt.status))
		})
	}
}

func TestBSP_ReturnStatus(t *testing.T) {
	tests := []struct {
		name         string
		status       osalbsp.Status
		expectedCode rtems.StatusCode
		expectedOut  string
	}{
		{
			name:         "success",
			status:       osalbsp.Success,
			expectedCode: rtems.Successful,
			expectedOut:  "\nApplication exit status: SUCCESS (0)\n\n",
		},
		{
			name:         "generic error",
			status:       osalbsp.Error,
			expectedCode: rtems.TaskExitted,
			expectedOut:  "\nApplication exit status: ERROR (-1)\n\n",
		},
		{
			name:         "positive value",
			status:       osalbsp.Status(3),
			expectedCode: rtems.TaskExitted,
			expectedOut:  "\nApplication exit status: ERROR (3)\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var console bytes.Buffer

			kernel := newTestKernel()

			bsp := osalbsp.New(osalbsp.Config{
				Kernel:     kernel,
				Console:    &console,
				FlushDelay: 3,
			})
			bsp.SetExitCode(tt.status)

			code := bsp.ReturnStatus(context.Background())

			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedOut, console.String())
			assert.Equal(t, []rtems.Interval{3}, kernel.wakeAfterCalls())
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "OS_SUCCESS", osalbsp.Success.String())
	assert.Equal(t, "OS_ERROR", osalbsp.Error.String())
	assert.Equal(t, "OS_SEM_FAILURE", osalbsp.SemFailure.String())
	assert.Equal(t, "OS_STATUS(-99)", osalbsp.Status(-99).String())
}
