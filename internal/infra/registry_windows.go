//go:build windows

package infra

import (
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

const (
	deviceFormKeyPath = `SYSTEM\CurrentControlSet\Control\OEM`
	deviceFormValue   = "DeviceForm"

	// deviceFormHandheld marks the device as a gaming handheld; the shell
	// uses it to offer the full-screen experience surfaces.
	deviceFormHandheld = 0x2E
)

// DeviceFormRegistry implements domain.DeviceFormWriter against HKLM.
type DeviceFormRegistry struct{}

// NewDeviceFormRegistry creates the device-form registry writer.
func NewDeviceFormRegistry() domain.DeviceFormWriter {
	return &DeviceFormRegistry{}
}

// Apply writes the handheld device-form override. Idempotent; requires an
// elevated process.
func (r *DeviceFormRegistry) Apply() error {
	key, _, err := registry.CreateKey(registry.LOCAL_MACHINE, deviceFormKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("opening HKLM\\%s: %w", deviceFormKeyPath, err)
	}
	defer key.Close()

	if err := key.SetDWordValue(deviceFormValue, deviceFormHandheld); err != nil {
		return fmt.Errorf("writing %s: %w", deviceFormValue, err)
	}
	return nil
}

// Ensure DeviceFormRegistry implements domain.DeviceFormWriter.
var _ domain.DeviceFormWriter = (*DeviceFormRegistry)(nil)
