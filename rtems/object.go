// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rtems

import (
	"fmt"
	"strings"
	"time"
)

// Name is a four character object name.
type Name uint32

// BuildName packs the given four characters into a [Name].
func BuildName(c1, c2, c3, c4 byte) Name {
	return Name(uint32(c1)<<24 | uint32(c2)<<16 | uint32(c3)<<8 | uint32(c4))
}

// String returns the printable characters of the name.
func (n Name) String() string {
	var builder strings.Builder

	for shift := 24; shift >= 0; shift -= 8 {
		c := byte(n >> shift)
		if c >= ' ' && c <= '~' {
			builder.WriteByte(c)
		}
	}

	return builder.String()
}

// ID identifies an executive object. The zero ID is never valid.
type ID uint32

type objectClass uint32

const (
	classTasks      objectClass = 1
	classSemaphores objectClass = 4
)

const (
	apiClassic = 2
	localNode  = 1

	idClassShift = 27
	idAPIShift   = 24
	idNodeShift  = 16
	idIndexMask  = 0xffff
)

func makeID(class objectClass, index uint16) ID {
	return ID(uint32(class)<<idClassShift |
		apiClassic<<idAPIShift |
		localNode<<idNodeShift |
		uint32(index))
}

func (id ID) class() objectClass {
	return objectClass(id >> idClassShift)
}

func (id ID) index() uint16 {
	return uint16(id & idIndexMask)
}

// String returns the ID in hex notation as the executive prints it.
func (id ID) String() string {
	return fmt.Sprintf("0x%08x", uint32(id))
}

// Attribute is a set of object attributes given on creation.
type Attribute uint32

// Semaphore attributes.
const (
	Fifo                  Attribute = 0
	Priority              Attribute = 1 << 2
	CountingSemaphore     Attribute = 0
	BinarySemaphore       Attribute = 1 << 4
	SimpleBinarySemaphore Attribute = 1 << 5
	InheritPriority       Attribute = 1 << 6
	PriorityCeiling       Attribute = 1 << 7

	semaphoreClassMask = BinarySemaphore | SimpleBinarySemaphore
)

func (a Attribute) has(flag Attribute) bool {
	return a&flag != 0
}

func (a Attribute) binary() bool {
	return a&semaphoreClassMask != 0
}

// Option modifies the behavior of blocking directives.
type Option uint32

// Blocking options.
const (
	Wait   Option = 0
	NoWait Option = 1
)

// TaskPriority is a task priority. Lower values are more important.
type TaskPriority uint32

// Interval is a duration in clock ticks.
type Interval uint32

// NoTimeout makes blocking directives wait forever.
const NoTimeout Interval = 0

func (i Interval) duration(tick time.Duration) time.Duration {
	return time.Duration(i) * tick
}
