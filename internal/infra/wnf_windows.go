//go:build windows

package infra

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

var (
	ntdll                    = windows.NewLazySystemDLL("ntdll.dll")
	procNtQueryWnfStateData  = ntdll.NewProc("NtQueryWnfStateData")
	procNtUpdateWnfStateData = ntdll.NewProc("NtUpdateWnfStateData")
)

// wnfStateName identifies a WNF state slot.
type wnfStateName struct {
	Data1 uint32
	Data2 uint32
}

// WNF_DX_INTERNAL_PANEL_DIMENSIONS: the graphics stack's internal panel size
// record.
var wnfPanelDimensions = wnfStateName{Data1: 0xA3BC4875, Data2: 0x41C61629}

// WnfPanelStore implements domain.PanelStore over the WNF state broadcast
// mechanism.
type WnfPanelStore struct{}

// NewPanelStore creates the WNF-backed panel store.
func NewPanelStore() domain.PanelStore {
	return &WnfPanelStore{}
}

// Get reads the current panel size override. A non-zero status or a payload
// of the wrong size means no override is set.
func (s *WnfPanelStore) Get() (domain.PanelDimensions, error) {
	var (
		raw         uint64
		changeStamp uint32
		size        = uint32(unsafe.Sizeof(raw))
	)

	status, _, _ := procNtQueryWnfStateData.Call(
		uintptr(unsafe.Pointer(&wnfPanelDimensions)),
		0,
		0,
		uintptr(unsafe.Pointer(&changeStamp)),
		uintptr(unsafe.Pointer(&raw)),
		uintptr(unsafe.Pointer(&size)),
	)
	if status != 0 {
		return domain.PanelDimensions{}, fmt.Errorf("querying panel dimensions: NTSTATUS 0x%08X", uint32(status))
	}
	if size != uint32(unsafe.Sizeof(raw)) {
		return domain.PanelDimensions{}, fmt.Errorf("querying panel dimensions: unexpected payload size %d", size)
	}
	return unpackPanelDimensions(raw), nil
}

// Set writes a new panel size override. Requires SYSTEM privileges.
func (s *WnfPanelStore) Set(dims domain.PanelDimensions) error {
	raw := packPanelDimensions(dims)

	status, _, _ := procNtUpdateWnfStateData.Call(
		uintptr(unsafe.Pointer(&wnfPanelDimensions)),
		uintptr(unsafe.Pointer(&raw)),
		unsafe.Sizeof(raw),
		0,
		0,
		0,
		0,
	)
	if status != 0 {
		return fmt.Errorf("updating panel dimensions: NTSTATUS 0x%08X (SYSTEM privileges required)", uint32(status))
	}
	return nil
}

// Ensure WnfPanelStore implements domain.PanelStore.
var _ domain.PanelStore = (*WnfPanelStore)(nil)
