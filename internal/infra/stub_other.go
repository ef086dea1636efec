//go:build !windows

package infra

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// ErrUnsupported is returned by the Windows-only collaborators on other
// platforms. The CLI targets Windows handhelds; these stubs keep the tree
// buildable where only the hermetic tests run.
var ErrUnsupported = errors.New("physpanel: this operation requires windows")

type unsupported struct{}

func (unsupported) KeyboardExecutable() (string, error) { return "", ErrUnsupported }
func (unsupported) Open(string) error                   { return ErrUnsupported }
func (unsupported) Initialize() error                   { return ErrUnsupported }
func (unsupported) Release()                            {}
func (unsupported) Toggle(uintptr) error                { return ErrUnsupported }
func (unsupported) DesktopWindow() uintptr              { return 0 }
func (unsupported) Set(domain.PanelDimensions) error    { return ErrUnsupported }
func (unsupported) Apply() error                        { return ErrUnsupported }

func (unsupported) Get() (domain.PanelDimensions, error) {
	return domain.PanelDimensions{}, ErrUnsupported
}

type stubOracle struct {
	name string
}

func (o stubOracle) Name() string            { return o.name }
func (o stubOracle) IsKeyboardVisible() bool { return false }

// NewKeyboardPathResolver returns a PathResolver that always reports
// ErrUnsupported.
func NewKeyboardPathResolver() domain.PathResolver { return unsupported{} }

// NewShellLauncher returns a Launcher that always reports ErrUnsupported.
func NewShellLauncher() domain.Launcher { return unsupported{} }

// NewComRuntime returns a ComRuntime whose Initialize always fails with
// ErrUnsupported.
func NewComRuntime() domain.ComRuntime { return unsupported{} }

// NewDesktop returns a WindowFinder whose desktop handle is always zero.
func NewDesktop() domain.WindowFinder { return unsupported{} }

// NewPanelStore returns a PanelStore that always reports ErrUnsupported.
func NewPanelStore() domain.PanelStore { return unsupported{} }

// NewDeviceFormRegistry returns a DeviceFormWriter that always reports
// ErrUnsupported.
func NewDeviceFormRegistry() domain.DeviceFormWriter {
	return unsupported{}
}

// NewInputPaneOracle returns an oracle that never sees the keyboard.
func NewInputPaneOracle() domain.VisibilityOracle {
	return stubOracle{name: StrategyInputPane}
}

// NewWindowOracle returns an oracle that never sees the keyboard.
func NewWindowOracle() domain.VisibilityOracle {
	return stubOracle{name: StrategyWindow}
}

// NewTipService returns a KeyboardService whose Toggle always fails with
// ErrUnsupported.
func NewTipService(connectTimeout, retryInterval time.Duration, clock domain.Clock, logger *zap.Logger) domain.KeyboardService {
	return unsupported{}
}
