package domain

import "time"

// ProcessProbe answers whether a named process is currently running.
// Implementation: uses gopsutil for process table snapshots.
type ProcessProbe interface {
	// IsRunning takes one point-in-time snapshot of the process table and
	// reports whether any entry's executable name matches name
	// case-insensitively. A failed snapshot reports not running.
	IsRunning(name string) bool
}

// ProcessWaiter polls for a named process until it appears or a timeout
// elapses.
type ProcessWaiter interface {
	// WaitFor reports whether the process was observed before the deadline.
	// A zero timeout returns the immediate probe result.
	WaitFor(name string, timeout time.Duration) bool
}

// VisibilityOracle reports whether the touch keyboard is currently visible
// to the user. Calls are pure queries, independent of each other, and safe
// at arbitrary frequency. The keyboard's window or backing service not
// existing yet reports not visible, never an error.
type VisibilityOracle interface {
	IsKeyboardVisible() bool

	// Name identifies the detection strategy ("inputpane" or "window").
	Name() string
}

// KeyboardService issues the show/hide toggle against the keyboard's local
// COM service. The caller must hold an initialized COM apartment.
type KeyboardService interface {
	// Toggle connects to the service (with a bounded internal retry loop)
	// and fires exactly one toggle at the target window. Only connection
	// failure is an error; the toggle call itself is fire-and-forget.
	Toggle(target uintptr) error
}

// ComRuntime scopes the per-thread COM apartment required by KeyboardService.
// Initialize and Release must be paired exactly once per activation attempt.
type ComRuntime interface {
	Initialize() error
	Release()
}

// Launcher starts a program by path with default open semantics. No
// synchronous confirmation is available; success is inferred later through
// process and visibility observation.
type Launcher interface {
	Open(path string) error
}

// PathResolver locates the touch keyboard service executable via the
// well-known system folder layout.
type PathResolver interface {
	KeyboardExecutable() (string, error)
}

// FileSystem answers filesystem existence checks.
type FileSystem interface {
	// ExistsFile reports whether path exists and is a regular file.
	ExistsFile(path string) bool
}

// WindowFinder locates well-known window handles.
type WindowFinder interface {
	// DesktopWindow returns the desktop window handle, used as the toggle
	// target.
	DesktopWindow() uintptr
}

// Clock abstracts wall time and sleeping so every bounded wait is
// deterministic under test.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// PanelStore reads and writes the physical panel size override.
// Implementation: single read/write of a packed binary record through the
// OS state broadcast mechanism; no retries, no state.
type PanelStore interface {
	Get() (PanelDimensions, error)
	Set(dims PanelDimensions) error
}

// DeviceFormWriter applies the handheld device-form override.
// A single idempotent registry value write; success or failure only.
type DeviceFormWriter interface {
	Apply() error
}
