// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import "strconv"

// Status is an OS abstraction layer status code. Only [Success] is
// non-negative.
type Status int32

// OS abstraction layer status codes.
const (
	Success                Status = 0
	Error                  Status = -1
	InvalidPointer         Status = -2
	ErrorAddressMisaligned Status = -3
	ErrorTimeout           Status = -4
	InvalidIntNum          Status = -5
	SemFailure             Status = -6
	SemTimeout             Status = -7
	QueueEmpty             Status = -8
	QueueFull              Status = -9
	QueueTimeout           Status = -10
	QueueInvalidSize       Status = -11
	QueueIDError           Status = -12
	ErrNameTooLong         Status = -13
	ErrNoFreeIDs           Status = -14
	ErrNameTaken           Status = -15
	ErrInvalidID           Status = -16
	ErrNameNotFound        Status = -17
	ErrSemNotFull          Status = -18
	ErrInvalidPriority     Status = -19
	InvalidSemValue        Status = -20
	ErrFile                Status = -27
	ErrNotImplemented      Status = -28
)

var statusNames = map[Status]string{
	Success:                "OS_SUCCESS",
	Error:                  "OS_ERROR",
	InvalidPointer:         "OS_INVALID_POINTER",
	ErrorAddressMisaligned: "OS_ERROR_ADDRESS_MISALIGNED",
	ErrorTimeout:           "OS_ERROR_TIMEOUT",
	InvalidIntNum:          "OS_INVALID_INT_NUM",
	SemFailure:             "OS_SEM_FAILURE",
	SemTimeout:             "OS_SEM_TIMEOUT",
	QueueEmpty:             "OS_QUEUE_EMPTY",
	QueueFull:              "OS_QUEUE_FULL",
	QueueTimeout:           "OS_QUEUE_TIMEOUT",
	QueueInvalidSize:       "OS_QUEUE_INVALID_SIZE",
	QueueIDError:           "OS_QUEUE_ID_ERROR",
	ErrNameTooLong:         "OS_ERR_NAME_TOO_LONG",
	ErrNoFreeIDs:           "OS_ERR_NO_FREE_IDS",
	ErrNameTaken:           "OS_ERR_NAME_TAKEN",
	ErrInvalidID:           "OS_ERR_INVALID_ID",
	ErrNameNotFound:        "OS_ERR_NAME_NOT_FOUND",
	ErrSemNotFull:          "OS_ERR_SEM_NOT_FULL",
	ErrInvalidPriority:     "OS_ERR_INVALID_PRIORITY",
	InvalidSemValue:        "OS_INVALID_SEM_VALUE",
	ErrFile:                "OS_ERR_FILE",
	ErrNotImplemented:      "OS_ERR_NOT_IMPLEMENTED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "OS_STATUS(" + strconv.Itoa(int(s)) + ")"
}
