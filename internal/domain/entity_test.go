package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationOutcome_String(t *testing.T) {
	assert.Equal(t, "invalid", OutcomeInvalid.String())
	assert.Equal(t, "already-running", OutcomeAlreadyRunning.String())
	assert.Equal(t, "hidden", OutcomeHidden.String())
	assert.Equal(t, "left-open", OutcomeLeftOpen.String())
	assert.Equal(t, "unknown(99)", ActivationOutcome(99).String())
}

// TestActivationOutcome_ZeroValueIsNotTerminal guards the enum layout: the
// zero value must never collide with a real terminal state, or an outcome
// read past a mishandled error would look like a successful short-circuit.
func TestActivationOutcome_ZeroValueIsNotTerminal(t *testing.T) {
	var zero ActivationOutcome
	assert.Equal(t, OutcomeInvalid, zero)
	assert.NotEqual(t, OutcomeAlreadyRunning, zero)
	assert.NotEqual(t, OutcomeHidden, zero)
	assert.NotEqual(t, OutcomeLeftOpen, zero)
}

func TestPanelDimensions_DiagonalInches(t *testing.T) {
	// A 155x87mm panel is a 7-inch class display.
	dims := PanelDimensions{WidthMm: 155, HeightMm: 87}
	assert.InDelta(t, 7.0, dims.DiagonalInches(), 0.01)

	assert.Zero(t, PanelDimensions{}.DiagonalInches())
}

func TestComponentNotFoundError_Message(t *testing.T) {
	err := &ComponentNotFoundError{
		Path:   `C:\Program Files\Common Files\Microsoft Shared\ink\TabTip.exe`,
		Reason: "keyboard executable missing",
	}
	assert.Contains(t, err.Error(), "keyboard component not found")
	assert.Contains(t, err.Error(), "TabTip.exe")

	wrapped := &ComponentNotFoundError{
		Reason: "install folder could not be resolved",
		Err:    errors.New("folder lookup failed"),
	}
	assert.Contains(t, wrapped.Error(), "folder lookup failed")
	assert.Equal(t, "folder lookup failed", errors.Unwrap(wrapped).Error())
}

func TestActivationError_Message(t *testing.T) {
	plain := &ActivationError{Reason: "timed out waiting for shell"}
	assert.Equal(t, "keyboard activation failed: timed out waiting for shell", plain.Error())

	wrapped := &ActivationError{
		Reason: "keyboard service unreachable, keyboard remained visible",
		Err:    errors.New("class not registered"),
	}
	assert.Contains(t, wrapped.Error(), "class not registered")
	assert.Equal(t, "class not registered", errors.Unwrap(wrapped).Error())
}

// TestErrorKinds_MatchThroughWrapping verifies callers can branch on the two
// error kinds with errors.As even after further wrapping.
func TestErrorKinds_MatchThroughWrapping(t *testing.T) {
	notFound := fmt.Errorf("startkeyboard: %w", &ComponentNotFoundError{Reason: "missing"})
	activation := fmt.Errorf("startkeyboard: %w", &ActivationError{Reason: "init"})

	var cnf *ComponentNotFoundError
	var act *ActivationError

	assert.True(t, errors.As(notFound, &cnf))
	assert.False(t, errors.As(notFound, &act))
	assert.True(t, errors.As(activation, &act))
	assert.False(t, errors.As(activation, &cnf))
}
