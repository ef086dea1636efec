//go:build windows

package infra

import (
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// Shell framework input-pane service coordinates.
var (
	clsidFrameworkInputPane = ole.NewGUID("{D5120AA3-46BA-44C5-822D-CA8092C1FC72}")
	iidIFrameworkInputPane  = ole.NewGUID("{5752238B-24F0-495A-82F1-2FD593056796}")
)

type paneRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// iFrameworkInputPaneVtbl mirrors IFrameworkInputPane's vtable layout; only
// Location is called, but the preceding slots must be present for the offset
// to be right.
type iFrameworkInputPaneVtbl struct {
	ole.IUnknownVtbl
	Advise         uintptr
	AdviseWithHWND uintptr
	Unadvise       uintptr
	Location       uintptr
}

type iFrameworkInputPane struct {
	ole.IUnknown
}

func (p *iFrameworkInputPane) vtable() *iFrameworkInputPaneVtbl {
	return (*iFrameworkInputPaneVtbl)(unsafe.Pointer(p.RawVTable))
}

func (p *iFrameworkInputPane) Location(rc *paneRect) error {
	hr, _, _ := syscall.SyscallN(p.vtable().Location,
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(rc)))
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

// InputPaneOracle implements domain.VisibilityOracle by asking the shell's
// input-pane service for the keyboard's on-screen rectangle.
type InputPaneOracle struct{}

// NewInputPaneOracle creates the input-pane visibility oracle.
func NewInputPaneOracle() domain.VisibilityOracle {
	return &InputPaneOracle{}
}

// Name returns the strategy name.
func (o *InputPaneOracle) Name() string { return StrategyInputPane }

// IsKeyboardVisible reports true iff the input pane's rectangle has positive
// width and height. The oracle owns a scoped, thread-pinned COM apartment per
// query, so callers need no COM state of their own. Any failure to create or
// query the service reports not visible; the pane may simply not exist yet.
func (o *InputPaneOracle) IsKeyboardVisible() bool {
	visible := false
	withApartment(func() {
		unknown, err := ole.CreateInstance(clsidFrameworkInputPane, iidIFrameworkInputPane)
		if err != nil {
			return
		}
		pane := (*iFrameworkInputPane)(unsafe.Pointer(unknown))
		defer pane.Release()

		var rc paneRect
		if err := pane.Location(&rc); err != nil {
			return
		}
		visible = rc.Right-rc.Left > 0 && rc.Bottom-rc.Top > 0
	})
	return visible
}

// Ensure InputPaneOracle implements domain.VisibilityOracle.
var _ domain.VisibilityOracle = (*InputPaneOracle)(nil)
