// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/aibor/osalbsp/rtems"
	"golang.org/x/sys/unix"
)

// Kernel is the set of executive directives the BSP forwards to.
type Kernel interface {
	SemaphoreCreate(
		name rtems.Name,
		count uint32,
		attr rtems.Attribute,
		ceiling rtems.TaskPriority,
	) (rtems.ID, error)
	SemaphoreObtain(
		ctx context.Context,
		id rtems.ID,
		opt rtems.Option,
		timeout rtems.Interval,
	) error
	SemaphoreRelease(ctx context.Context, id rtems.ID) error
	TaskSelf(ctx context.Context) rtems.ID
	TaskSuspend(ctx context.Context, id rtems.ID) error
	TaskWakeAfter(ctx context.Context, ticks rtems.Interval) error
	Halt()
}

var _ Kernel = (*rtems.Executive)(nil)

// DefaultFlushDelay is the number of ticks [BSP.ReturnStatus] waits for
// console output to drain.
const DefaultFlushDelay rtems.Interval = 100

// AccessMutexName is the name of the BSP access mutex.
var AccessMutexName = rtems.BuildName('B', 'S', 'P', 0)

const accessMutexAttr = rtems.Priority |
	rtems.BinarySemaphore |
	rtems.InheritPriority

// Config defines the environment of a [BSP].
type Config struct {
	// Kernel is the executive the BSP forwards to. If nil, a new
	// [rtems.Executive] with default config is used.
	Kernel Kernel

	// Console receives the exit status line. Defaults to [os.Stdout].
	Console io.Writer

	// Logger is the debug output hook for failed directives. Defaults to
	// [slog.Default].
	Logger *slog.Logger

	// Args are the program arguments made available to the application.
	Args []string

	// FlushDelay is the number of ticks to wait after printing the exit
	// status.
	FlushDelay rtems.Interval
}

// DefaultConfig returns a config for the given kernel with the default
// flush delay.
func DefaultConfig(kernel Kernel) Config {
	return Config{
		Kernel:     kernel,
		FlushDelay: DefaultFlushDelay,
	}
}

// GlobalData is the generic BSP state.
type GlobalData struct {
	Args      []string
	AppStatus Status
}

// RTEMSGlobalData is the executive specific BSP state.
type RTEMSGlobalData struct {
	AccessMutex rtems.ID
}

// BSP is the board support context. There should be exactly one per
// process. It is safe for concurrent use.
type BSP struct {
	kernel     Kernel
	console    io.Writer
	logger     *slog.Logger
	args       []string
	flushDelay rtems.Interval

	mu          sync.Mutex
	global      GlobalData
	rtemsGlobal RTEMSGlobalData

	shutdownOnce sync.Once
	shutdown     chan struct{}
}

// New creates a new [BSP] for the given config.
func New(cfg Config) *BSP {
	bsp := &BSP{
		kernel:     cfg.Kernel,
		console:    cfg.Console,
		logger:     cfg.Logger,
		args:       slices.Clone(cfg.Args),
		flushDelay: cfg.FlushDelay,
		shutdown:   make(chan struct{}),
	}

	if bsp.kernel == nil {
		bsp.kernel = rtems.New(rtems.Config{})
	}

	if bsp.console == nil {
		bsp.console = os.Stdout
	}

	if bsp.logger == nil {
		bsp.logger = slog.Default()
	}

	return bsp
}

// Global returns a snapshot of the generic BSP state.
func (b *BSP) Global() GlobalData {
	b.mu.Lock()
	defer b.mu.Unlock()

	global := b.global
	global.Args = slices.Clone(global.Args)

	return global
}

// RTEMSGlobal returns a snapshot of the executive specific BSP state.
func (b *BSP) RTEMSGlobal() RTEMSGlobalData {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.rtemsGlobal
}

// AccessMutex returns the ID of the access mutex. It is zero if the mutex
// has not been created (successfully).
func (b *BSP) AccessMutex() rtems.ID {
	return b.RTEMSGlobal().AccessMutex
}

// Args returns the program arguments.
func (b *BSP) Args() []string {
	return b.Global().Args
}

// AppStatus returns the current application status.
func (b *BSP) AppStatus() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.global.AppStatus
}

// SetExitCode sets the application status that is translated into the
// return code of [BSP.Main].
func (b *BSP) SetExitCode(status Status) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.global.AppStatus = status
}

func (b *BSP) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.global = GlobalData{}
	b.rtemsGlobal = RTEMSGlobalData{}

	b.global.Args = slices.Clone(b.args)
}

// debug is the debug output hook for failed directives.
func (b *BSP) debug(directive string, err error) {
	b.logger.Debug("BSP directive failed",
		slog.String("directive", directive),
		slog.Any("error", err),
		slog.Int("tid", unix.Gettid()),
	)
}
