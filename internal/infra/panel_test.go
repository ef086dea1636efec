package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

func TestPackPanelDimensions_Layout(t *testing.T) {
	// Width occupies the low 32 bits, height the high 32.
	raw := packPanelDimensions(domain.PanelDimensions{WidthMm: 155, HeightMm: 87})
	assert.Equal(t, uint64(0x00000057_0000009B), raw)
}

func TestUnpackPanelDimensions(t *testing.T) {
	dims := unpackPanelDimensions(0x00000057_0000009B)
	assert.Equal(t, domain.PanelDimensions{WidthMm: 155, HeightMm: 87}, dims)
}

func TestPanelDimensions_RoundTrip(t *testing.T) {
	for _, dims := range []domain.PanelDimensions{
		{},
		{WidthMm: 1, HeightMm: 1},
		{WidthMm: 155, HeightMm: 87},
		{WidthMm: 0xFFFFFFFF, HeightMm: 0xFFFFFFFF},
	} {
		assert.Equal(t, dims, unpackPanelDimensions(packPanelDimensions(dims)))
	}
}
