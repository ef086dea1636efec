package infra

import "github.com/8bit2qubit/physpanel/internal/domain"

// The panel dimensions record is a single 64-bit value: width in millimeters
// in the low 32 bits, height in the high 32 bits.

func packPanelDimensions(d domain.PanelDimensions) uint64 {
	return uint64(d.HeightMm)<<32 | uint64(d.WidthMm)
}

func unpackPanelDimensions(raw uint64) domain.PanelDimensions {
	return domain.PanelDimensions{
		WidthMm:  uint32(raw & 0xFFFFFFFF),
		HeightMm: uint32(raw >> 32),
	}
}
