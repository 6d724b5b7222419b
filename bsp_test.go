// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osalbsp_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aibor/osalbsp"
	"github.com/aibor/osalbsp/rtems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBSP_Main(t *testing.T) {
	tests := []struct {
		name         string
		createErr    error
		app          func(calls *[]string) osalbsp.Application
		expectedCode rtems.StatusCode
		expectedOut  string
		expectedLog  string
		assertMutex  assert.ValueAssertionFunc
	}{
		{
			name: "success",
			app: func(calls *[]string) osalbsp.Application {
				return osalbsp.Application{
					Startup: func(_ context.Context, _ *osalbsp.BSP) {
						*calls = append(*calls, "startup")
					},
					Run: func(_ context.Context, bsp *osalbsp.BSP) {
						*calls = append(*calls, "run")
						bsp.SetExitCode(osalbsp.Success)
					},
				}
			},
			expectedCode: rtems.Successful,
			expectedOut:  "\nApplication exit status: SUCCESS (0)\n\n",
			assertMutex:  assert.NotZero,
		},
		{
			name: "error status",
			app: func(calls *[]string) osalbsp.Application {
				return osalbsp.Application{
					Startup: func(_ context.Context, _ *osalbsp.BSP) {
						*calls = append(*calls, "startup")
					},
					Run: func(_ context.Context, bsp *osalbsp.BSP) {
						*calls = append(*calls, "run")
						bsp.SetExitCode(osalbsp.Error)
					},
				}
			},
			expectedCode: rtems.TaskExitted,
			expectedOut:  "\nApplication exit status: ERROR (-1)\n\n",
			assertMutex:  assert.NotZero,
		},
		{
			name:      "mutex creation fails",
			createErr: rtems.TooMany,
			app: func(calls *[]string) osalbsp.Application {
				return osalbsp.Application{
					Startup: func(_ context.Context, _ *osalbsp.BSP) {
						*calls = append(*calls, "startup")
					},
					Run: func(_ context.Context, _ *osalbsp.BSP) {
						*calls = append(*calls, "run")
					},
				}
			},
			expectedCode: rtems.Successful,
			expectedOut:  "\nApplication exit status: SUCCESS (0)\n\n",
			expectedLog:  "directive=rtems_semaphore_create",
			assertMutex:  assert.Zero,
		},
		{
			name: "startup panics",
			app: func(calls *[]string) osalbsp.Application {
				return osalbsp.Application{
					Startup: func(_ context.Context, _ *osalbsp.BSP) {
						*calls = append(*calls, "startup")
						panic(assert.AnError)
					},
					Run: func(_ context.Context, _ *osalbsp.BSP) {
						*calls = append(*calls, "run")
					},
				}
			},
			expectedCode: rtems.TaskExitted,
			expectedOut:  "\nApplication exit status: ERROR (-1)\n\n",
			expectedLog:  osalbsp.ErrPanic.Error(),
			assertMutex:  assert.NotZero,
		},
		{
			name: "default run hook",
			app: func(calls *[]string) osalbsp.Application {
				return osalbsp.Application{
					Startup: func(_ context.Context, bsp *osalbsp.BSP) {
						*calls = append(*calls, "startup", "run")
						bsp.SetExitCode(osalbsp.ErrorTimeout)
						bsp.RequestShutdown()
					},
				}
			},
			expectedCode: rtems.TaskExitted,
			expectedOut:  "\nApplication exit status: ERROR (-4)\n\n",
			assertMutex:  assert.NotZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				console bytes.Buffer
				logOut  bytes.Buffer
				calls   []string
			)

			kernel := newTestKernel()
			kernel.createErr = tt.createErr

			bsp := osalbsp.New(osalbsp.Config{
				Kernel:     kernel,
				Console:    &console,
				Logger:     debugLogger(&logOut),
				FlushDelay: 1,
			})

			code := bsp.Main(context.Background(), tt.app(&calls))

			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedOut, console.String())
			assert.Equal(t, []string{"startup", "run"}, calls)
			assert.Contains(t, logOut.String(), tt.expectedLog)
			tt.assertMutex(t, bsp.AccessMutex())
		})
	}
}

func TestBSP_Main_ClearsState(t *testing.T) {
	kernel := newTestKernel()

	bsp := osalbsp.New(osalbsp.Config{
		Kernel:  kernel,
		Console: io.Discard,
		Args:    []string{"-a", "b"},
	})

	run := osalbsp.Application{
		Run: func(_ context.Context, bsp *osalbsp.BSP) {
			bsp.SetExitCode(osalbsp.QueueFull)
		},
	}

	var (
		atCreate []osalbsp.GlobalData
		mutexes  []rtems.ID
	)

	kernel.onCreate = func() {
		atCreate = append(atCreate, bsp.Global())
		mutexes = append(mutexes, bsp.AccessMutex())
	}

	assert.Equal(t, rtems.TaskExitted, bsp.Main(context.Background(), run))
	first := bsp.AccessMutex()
	require.NotZero(t, first)

	assert.Equal(t, rtems.TaskExitted, bsp.Main(context.Background(), run))
	require.NotZero(t, bsp.AccessMutex())
	assert.NotEqual(t, first, bsp.AccessMutex())

	expected := osalbsp.GlobalData{
		Args:      []string{"-a", "b"},
		AppStatus: osalbsp.Success,
	}

	assert.Equal(t, []osalbsp.GlobalData{expected, expected}, atCreate)
	assert.Equal(t, []rtems.ID{0, 0}, mutexes)
}

func TestBSP_Args(t *testing.T) {
	args := []string{"one", "two"}

	bsp := osalbsp.New(osalbsp.Config{Args: args, Console: io.Discard})
	assert.Empty(t, bsp.Args(), "args are set on main")

	bsp.Main(context.Background(), osalbsp.Application{
		Run: func(context.Context, *osalbsp.BSP) {},
	})

	actual := bsp.Args()
	assert.Equal(t, args, actual)

	actual[0] = "changed"
	assert.Equal(t, "one", bsp.Args()[0])
	assert.Equal(t, "one", args[0])
}

func TestMain_DefaultConfig(t *testing.T) {
	cfg := osalbsp.DefaultConfig(newTestKernel())
	assert.Equal(t, osalbsp.DefaultFlushDelay, cfg.FlushDelay)

	var console bytes.Buffer

	cfg.Console = &console
	cfg.FlushDelay = 0

	code := osalbsp.Main(context.Background(), cfg, osalbsp.Application{
		Run: func(_ context.Context, bsp *osalbsp.BSP) {
			bsp.SetExitCode(osalbsp.Success)
		},
	})

	assert.Equal(t, rtems.Successful, code)
	assert.Contains(t, console.String(), "SUCCESS")
}
