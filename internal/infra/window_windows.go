//go:build windows

package infra

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procFindWindowW           = user32.NewProc("FindWindowW")
	procIsWindowVisible       = user32.NewProc("IsWindowVisible")
	procIsIconic              = user32.NewProc("IsIconic")
	procGetDesktopWindow      = user32.NewProc("GetDesktopWindow")
	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")
)

const (
	// keyboardWindowClass is the class name of the touch keyboard's
	// top-level host window.
	keyboardWindowClass = "IPTip_Main_Window"

	// dwmwaCloaked is the DWMWA_CLOAKED window attribute.
	dwmwaCloaked = 14
)

// WindowOracle implements domain.VisibilityOracle by inspecting the
// keyboard's top-level host window. This is the fallback strategy: it
// measures host-window state where the input-pane service measures geometry.
type WindowOracle struct{}

// NewWindowOracle creates the window-inspection visibility oracle.
func NewWindowOracle() domain.VisibilityOracle {
	return &WindowOracle{}
}

// Name returns the strategy name.
func (o *WindowOracle) Name() string { return StrategyWindow }

// IsKeyboardVisible locates the keyboard's host window by class name. No
// window means not visible. A cloaked window passes IsWindowVisible while the
// compositor suppresses it from the screen, so the cloak attribute is checked
// before the ordinary visible/minimized flags.
func (o *WindowOracle) IsKeyboardVisible() bool {
	cls, err := windows.UTF16PtrFromString(keyboardWindowClass)
	if err != nil {
		return false
	}
	hwnd, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(cls)), 0)
	if hwnd == 0 {
		return false
	}

	var cloaked uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(hwnd, dwmwaCloaked,
		uintptr(unsafe.Pointer(&cloaked)), unsafe.Sizeof(cloaked))
	if hr == 0 && cloaked != 0 {
		return false
	}

	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return false
	}
	iconic, _, _ := procIsIconic.Call(hwnd)
	return iconic == 0
}

// DesktopImpl implements domain.WindowFinder.
type DesktopImpl struct{}

// NewDesktop creates the desktop window finder.
func NewDesktop() domain.WindowFinder {
	return &DesktopImpl{}
}

// DesktopWindow returns the desktop window handle.
func (DesktopImpl) DesktopWindow() uintptr {
	hwnd, _, _ := procGetDesktopWindow.Call()
	return hwnd
}

// Ensure the windowing implementations satisfy their interfaces.
var (
	_ domain.VisibilityOracle = (*WindowOracle)(nil)
	_ domain.WindowFinder     = (*DesktopImpl)(nil)
)
