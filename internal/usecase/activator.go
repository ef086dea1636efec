// Package usecase contains application business logic.
package usecase

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// ActivatorConfig holds the process names and timing budgets for one
// activation attempt. Every blocking wait has a budget; unbounded waits are
// not permitted, so the worst-case wall clock is the sum of the stage
// budgets.
type ActivatorConfig struct {
	KeyboardProcess    string
	ShellProcess       string
	ShellReadyTimeout  time.Duration
	SettleDelay        time.Duration
	VisibilityTimeout  time.Duration
	VisibilityInterval time.Duration
}

// DefaultActivatorConfig returns the tuned production budgets.
func DefaultActivatorConfig() ActivatorConfig {
	return ActivatorConfig{
		KeyboardProcess:   "TabTip.exe",
		ShellProcess:      "explorer.exe",
		ShellReadyTimeout: 30 * time.Second,
		// Polling immediately after launch proved unreliable; give the
		// service time to build its window first. Environment-dependent,
		// override via config if activation flakes.
		SettleDelay:        7 * time.Second,
		VisibilityTimeout:  10 * time.Second,
		VisibilityInterval: 250 * time.Millisecond,
	}
}

// Activator drives the touch keyboard into a known state: launched, and
// hidden again if it popped up during startup. One Activate call is one
// synchronous attempt; there is no internal parallelism and no cancellation.
type Activator struct {
	config     ActivatorConfig
	probe      domain.ProcessProbe
	waiter     domain.ProcessWaiter
	paths      domain.PathResolver
	fs         domain.FileSystem
	launcher   domain.Launcher
	visibility domain.VisibilityOracle
	com        domain.ComRuntime
	keyboard   domain.KeyboardService
	windows    domain.WindowFinder
	clock      domain.Clock
	logger     *zap.Logger
}

// NewActivator creates an activation controller.
func NewActivator(
	config ActivatorConfig,
	probe domain.ProcessProbe,
	waiter domain.ProcessWaiter,
	paths domain.PathResolver,
	fs domain.FileSystem,
	launcher domain.Launcher,
	visibility domain.VisibilityOracle,
	com domain.ComRuntime,
	keyboard domain.KeyboardService,
	windows domain.WindowFinder,
	clock domain.Clock,
	logger *zap.Logger,
) *Activator {
	return &Activator{
		config:     config,
		probe:      probe,
		waiter:     waiter,
		paths:      paths,
		fs:         fs,
		launcher:   launcher,
		visibility: visibility,
		com:        com,
		keyboard:   keyboard,
		windows:    windows,
		clock:      clock,
		logger:     logger,
	}
}

// Activate runs one attempt end to end and reports the terminal outcome.
//
// Errors are one of two kinds: *domain.ComponentNotFoundError when the
// keyboard executable cannot be located, and *domain.ActivationError for
// every failure after that point. The keyboard never becoming visible is a
// normal outcome, not an error: a service running invisibly cannot be told
// apart from one that is slow to start, and background operation is expected
// on these devices.
func (a *Activator) Activate() (domain.ActivationOutcome, error) {
	if a.probe.IsRunning(a.config.KeyboardProcess) {
		a.logger.Info("keyboard service already running, nothing to do",
			zap.String("process", a.config.KeyboardProcess))
		return domain.OutcomeAlreadyRunning, nil
	}

	path, err := a.paths.KeyboardExecutable()
	if err != nil {
		return domain.OutcomeInvalid, &domain.ComponentNotFoundError{
			Reason: "install folder could not be resolved",
			Err:    err,
		}
	}
	if !a.fs.ExistsFile(path) {
		return domain.OutcomeInvalid, &domain.ComponentNotFoundError{
			Path:   path,
			Reason: "keyboard executable missing",
		}
	}
	a.logger.Debug("resolved keyboard executable", zap.String("path", path))

	// During early boot the shell may not be up yet, and the keyboard
	// service will not register its COM objects before it is.
	if !a.waiter.WaitFor(a.config.ShellProcess, a.config.ShellReadyTimeout) {
		return domain.OutcomeInvalid, &domain.ActivationError{
			Reason: fmt.Sprintf("timed out after %s waiting for shell (%s)",
				a.config.ShellReadyTimeout, a.config.ShellProcess),
		}
	}

	if err := a.launcher.Open(path); err != nil {
		return domain.OutcomeInvalid, &domain.ActivationError{Reason: "launching keyboard service", Err: err}
	}
	a.logger.Debug("keyboard service launch requested", zap.String("path", path))

	// The launch gives no synchronous confirmation; settle, then observe.
	a.clock.Sleep(a.config.SettleDelay)

	if !a.pollVisibility() {
		a.logger.Info("keyboard never became visible, assuming background start",
			zap.Duration("budget", a.config.VisibilityTimeout))
		return domain.OutcomeLeftOpen, nil
	}

	a.logger.Debug("keyboard visible, toggling to hide",
		zap.String("strategy", a.visibility.Name()))
	if err := a.hideKeyboard(); err != nil {
		return domain.OutcomeInvalid, err
	}

	a.logger.Info("keyboard hidden")
	return domain.OutcomeHidden, nil
}

// pollVisibility polls the oracle on the configured cadence until it reports
// visible or the budget elapses. The deadline is checked before each sleep.
func (a *Activator) pollVisibility() bool {
	deadline := a.clock.Now().Add(a.config.VisibilityTimeout)
	for {
		if a.visibility.IsKeyboardVisible() {
			return true
		}
		if !a.clock.Now().Before(deadline) {
			return false
		}
		a.clock.Sleep(a.config.VisibilityInterval)
	}
}

// hideKeyboard owns the COM apartment for the toggle call. The apartment is
// released on every path out of here, exactly once.
func (a *Activator) hideKeyboard() error {
	if err := a.com.Initialize(); err != nil {
		return &domain.ActivationError{Reason: "COM runtime initialization", Err: err}
	}
	defer a.com.Release()

	if err := a.keyboard.Toggle(a.windows.DesktopWindow()); err != nil {
		return &domain.ActivationError{
			Reason: "keyboard service unreachable, keyboard remained visible",
			Err:    err,
		}
	}
	return nil
}
