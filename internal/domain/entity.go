// Package domain contains core business entities and interfaces.
// This is the innermost layer in Clean Architecture - no external dependencies.
package domain

import (
	"fmt"
	"math"
)

// ActivationOutcome is the terminal result of one keyboard activation attempt.
type ActivationOutcome int

const (
	// OutcomeInvalid is the zero value, returned alongside errors, so a
	// mishandled error can never read as a real terminal state.
	OutcomeInvalid ActivationOutcome = iota

	// OutcomeAlreadyRunning means the keyboard service was already up;
	// nothing was launched or toggled.
	OutcomeAlreadyRunning

	// OutcomeHidden means the keyboard became visible after launch and was
	// toggled back out of view.
	OutcomeHidden

	// OutcomeLeftOpen means the keyboard never became visible within the
	// polling budget and is assumed to be running in the background.
	OutcomeLeftOpen
)

// String returns a human-readable outcome name.
func (o ActivationOutcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeAlreadyRunning:
		return "already-running"
	case OutcomeHidden:
		return "hidden"
	case OutcomeLeftOpen:
		return "left-open"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// PanelDimensions is the physical display size override, in millimeters.
type PanelDimensions struct {
	WidthMm  uint32
	HeightMm uint32
}

// DiagonalInches computes the approximate diagonal screen size.
func (d PanelDimensions) DiagonalInches() float64 {
	diagonalMm := math.Hypot(float64(d.WidthMm), float64(d.HeightMm))
	return diagonalMm / 25.4
}

// ComponentNotFoundError reports that the touch keyboard executable could not
// be located at its expected install path. This condition is never retried.
type ComponentNotFoundError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ComponentNotFoundError) Error() string {
	msg := "keyboard component not found: " + e.Reason
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ComponentNotFoundError) Unwrap() error { return e.Err }

// ActivationError reports a failure during launch sequencing, COM runtime
// initialization, or keyboard service invocation. Lower-layer errors are
// always translated into this kind before leaving the activation controller.
type ActivationError struct {
	Reason string
	Err    error
}

func (e *ActivationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("keyboard activation failed: %s: %v", e.Reason, e.Err)
	}
	return "keyboard activation failed: " + e.Reason
}

func (e *ActivationError) Unwrap() error { return e.Err }
