// Package infra implements infrastructure concerns (process table, windowing,
// COM services, panel state).
package infra

import (
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

const defaultProcessPollInterval = 500 * time.Millisecond

// ProcessManagerImpl implements domain.ProcessProbe and domain.ProcessWaiter
// using gopsutil.
type ProcessManagerImpl struct {
	pollInterval time.Duration
	clock        domain.Clock
}

// NewProcessManager creates a process manager with the default poll cadence.
func NewProcessManager() *ProcessManagerImpl {
	return &ProcessManagerImpl{
		pollInterval: defaultProcessPollInterval,
		clock:        SystemClock{},
	}
}

// NewProcessManagerWithClock creates a process manager with a custom clock
// and poll interval.
func NewProcessManagerWithClock(clock domain.Clock, pollInterval time.Duration) *ProcessManagerImpl {
	if pollInterval <= 0 {
		pollInterval = defaultProcessPollInterval
	}
	return &ProcessManagerImpl{
		pollInterval: pollInterval,
		clock:        clock,
	}
}

// IsRunning reports whether any process's executable name matches name
// case-insensitively. A failed snapshot reports not running; callers
// re-derive the truth from the subsequent visibility check.
func (pm *ProcessManagerImpl) IsRunning(name string) bool {
	procs, err := process.Processes()
	if err != nil {
		return false
	}

	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue // Process may have exited
		}
		if strings.EqualFold(pname, name) {
			return true
		}
	}
	return false
}

// WaitFor polls IsRunning on the poll interval until the process is observed
// or timeout elapses. The deadline is checked before each sleep, so the wait
// never overshoots by more than one interval.
func (pm *ProcessManagerImpl) WaitFor(name string, timeout time.Duration) bool {
	deadline := pm.clock.Now().Add(timeout)
	for {
		if pm.IsRunning(name) {
			return true
		}
		if !pm.clock.Now().Before(deadline) {
			return false
		}
		pm.clock.Sleep(pm.pollInterval)
	}
}

// Ensure ProcessManagerImpl implements the process interfaces.
var (
	_ domain.ProcessProbe  = (*ProcessManagerImpl)(nil)
	_ domain.ProcessWaiter = (*ProcessManagerImpl)(nil)
)
