// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rtems

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Defaults used for zero [Config] values.
const (
	DefaultTickDuration  = 10 * time.Millisecond
	DefaultMaxSemaphores = 64
	DefaultMaxTasks      = 64
)

// InitTaskName is the name of the task that exists from the start and is
// used for callers without own task identity.
var InitTaskName = BuildName('U', 'I', '1', ' ')

// Config is the executive configuration.
type Config struct {
	// TickDuration is the length of a single clock tick.
	TickDuration time.Duration

	// MaxSemaphores limits the number of concurrently existing semaphores.
	MaxSemaphores int

	// MaxTasks limits the number of concurrently existing tasks, including
	// the init task.
	MaxTasks int
}

func (c Config) withDefaults() Config {
	if c.TickDuration <= 0 {
		c.TickDuration = DefaultTickDuration
	}

	if c.MaxSemaphores <= 0 {
		c.MaxSemaphores = DefaultMaxSemaphores
	}

	if c.MaxTasks <= 0 {
		c.MaxTasks = DefaultMaxTasks
	}

	return c
}

// Executive manages semaphore and task objects.
//
// All methods are safe for concurrent use.
type Executive struct {
	cfg Config

	mu         sync.Mutex
	semaphores map[uint16]*semaphore
	tasks      map[uint16]*task
	lastIndex  map[objectClass]uint16

	initTask ID
	group    errgroup.Group
}

// New creates a new [Executive] with the given config. Zero config values
// are replaced by their defaults.
func New(cfg Config) *Executive {
	exec := &Executive{
		cfg:        cfg.withDefaults(),
		semaphores: make(map[uint16]*semaphore),
		tasks:      make(map[uint16]*task),
		lastIndex:  make(map[objectClass]uint16),
	}

	exec.mu.Lock()
	exec.initTask = exec.addTask(InitTaskName)
	exec.mu.Unlock()

	return exec
}

// TickDuration returns the configured clock tick length.
func (e *Executive) TickDuration() time.Duration {
	return e.cfg.TickDuration
}

// nextIndex returns the next free object index of the given class. The
// caller must hold e.mu and ensure there is a free index.
func (e *Executive) nextIndex(class objectClass, used func(uint16) bool) uint16 {
	index := e.lastIndex[class]

	for {
		index++
		if index == 0 {
			index = 1
		}

		if !used(index) {
			e.lastIndex[class] = index
			return index
		}
	}
}
