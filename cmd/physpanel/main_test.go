package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

func TestExitCode(t *testing.T) {
	notFound := &domain.ComponentNotFoundError{Reason: "keyboard executable missing"}
	activation := &domain.ActivationError{Reason: "timed out waiting for shell"}

	assert.Equal(t, 2, exitCode(notFound))
	assert.Equal(t, 2, exitCode(fmt.Errorf("wrapped: %w", notFound)))
	assert.Equal(t, 1, exitCode(activation))
	assert.Equal(t, 1, exitCode(errors.New("anything else")))
}

func TestParseDimensions(t *testing.T) {
	dims, err := parseDimensions("155", "87")
	require.NoError(t, err)
	assert.Equal(t, domain.PanelDimensions{WidthMm: 155, HeightMm: 87}, dims)

	for _, args := range [][2]string{
		{"0", "87"},
		{"155", "0"},
		{"-155", "87"},
		{"abc", "87"},
		{"155", "8.7"},
		{"4294967296", "87"}, // overflows uint32
	} {
		_, err := parseDimensions(args[0], args[1])
		assert.Error(t, err, "args %v", args)
	}
}
