package infra

import (
	"time"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// SystemClock implements domain.Clock with real wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

var _ domain.Clock = SystemClock{}
