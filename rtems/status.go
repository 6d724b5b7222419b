// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rtems

import "strconv"

// StatusCode is a directive status code.
//
// Any code but [Successful] is an error and can be returned as such.
type StatusCode uint32

// Directive status codes.
const (
	Successful StatusCode = iota
	TaskExitted
	MPNotConfigured
	InvalidName
	InvalidID
	TooMany
	Timeout
	ObjectWasDeleted
	InvalidSize
	InvalidAddress
	InvalidNumber
	NotDefined
	ResourceInUse
	Unsatisfied
	IncorrectState
	AlreadySuspended
	IllegalOnSelf
	IllegalOnRemoteObject
	CalledFromISR
	InvalidPriority
	InvalidClock
	InvalidNode
	NotConfigured
	NotOwnerOfResource
	NotImplemented
	InternalError
	NoMemory
	IOError
)

var statusText = [...]string{
	Successful:            "RTEMS_SUCCESSFUL",
	TaskExitted:           "RTEMS_TASK_EXITTED",
	MPNotConfigured:       "RTEMS_MP_NOT_CONFIGURED",
	InvalidName:           "RTEMS_INVALID_NAME",
	InvalidID:             "RTEMS_INVALID_ID",
	TooMany:               "RTEMS_TOO_MANY",
	Timeout:               "RTEMS_TIMEOUT",
	ObjectWasDeleted:      "RTEMS_OBJECT_WAS_DELETED",
	InvalidSize:           "RTEMS_INVALID_SIZE",
	InvalidAddress:        "RTEMS_INVALID_ADDRESS",
	InvalidNumber:         "RTEMS_INVALID_NUMBER",
	NotDefined:            "RTEMS_NOT_DEFINED",
	ResourceInUse:         "RTEMS_RESOURCE_IN_USE",
	Unsatisfied:           "RTEMS_UNSATISFIED",
	IncorrectState:        "RTEMS_INCORRECT_STATE",
	AlreadySuspended:      "RTEMS_ALREADY_SUSPENDED",
	IllegalOnSelf:         "RTEMS_ILLEGAL_ON_SELF",
	IllegalOnRemoteObject: "RTEMS_ILLEGAL_ON_REMOTE_OBJECT",
	CalledFromISR:         "RTEMS_CALLED_FROM_ISR",
	InvalidPriority:       "RTEMS_INVALID_PRIORITY",
	InvalidClock:          "RTEMS_INVALID_CLOCK",
	InvalidNode:           "RTEMS_INVALID_NODE",
	NotConfigured:         "RTEMS_NOT_CONFIGURED",
	NotOwnerOfResource:    "RTEMS_NOT_OWNER_OF_RESOURCE",
	NotImplemented:        "RTEMS_NOT_IMPLEMENTED",
	InternalError:         "RTEMS_INTERNAL_ERROR",
	NoMemory:              "RTEMS_NO_MEMORY",
	IOError:               "RTEMS_IO_ERROR",
}

// String returns the symbolic name of the status code.
func (s StatusCode) String() string {
	if int(s) < len(statusText) {
		return statusText[s]
	}

	return "RTEMS_STATUS(" + strconv.FormatUint(uint64(s), 10) + ")"
}

func (s StatusCode) Error() string {
	return s.String()
}

// Err returns nil for [Successful] and the status code itself otherwise.
func (s StatusCode) Err() error {
	if s == Successful {
		return nil
	}

	return s
}
