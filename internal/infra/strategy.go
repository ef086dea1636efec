package infra

import (
	"fmt"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// Visibility strategy names.
const (
	StrategyInputPane = "inputpane"
	StrategyWindow    = "window"
)

// NewVisibilityOracle returns the oracle for the configured strategy name.
// The input-pane strategy measures the keyboard's reported geometry; the
// window strategy measures host-window state. The two can disagree, so they
// are never combined.
func NewVisibilityOracle(strategy string) (domain.VisibilityOracle, error) {
	switch strategy {
	case "", StrategyInputPane:
		return NewInputPaneOracle(), nil
	case StrategyWindow:
		return NewWindowOracle(), nil
	default:
		return nil, fmt.Errorf("unknown visibility strategy %q", strategy)
	}
}
