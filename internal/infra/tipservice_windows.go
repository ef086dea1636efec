//go:build windows

package infra

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"go.uber.org/zap"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// Touch keyboard TipInvocation service coordinates. The object lives in the
// keyboard's own process, so instance creation fails until the service has
// finished starting up.
var (
	clsidTipInvocation = ole.NewGUID("{4CE576FA-83DC-4F88-951C-9D0782B4E376}")
	iidITipInvocation  = ole.NewGUID("{37C994E7-432B-4834-A2F7-DCE1F13B834B}")
)

type iTipInvocationVtbl struct {
	ole.IUnknownVtbl
	Toggle uintptr
}

type iTipInvocation struct {
	ole.IUnknown
}

func (t *iTipInvocation) vtable() *iTipInvocationVtbl {
	return (*iTipInvocationVtbl)(unsafe.Pointer(t.RawVTable))
}

// toggle fires the show/hide toggle at hwnd. Fire-and-forget: only the
// ability to connect matters, not the toggle's own HRESULT.
func (t *iTipInvocation) toggle(hwnd uintptr) {
	syscall.SyscallN(t.vtable().Toggle, uintptr(unsafe.Pointer(t)), hwnd)
}

// TipService implements domain.KeyboardService against the keyboard's
// out-of-process TipInvocation object.
type TipService struct {
	connectTimeout time.Duration
	retryInterval  time.Duration
	clock          domain.Clock
	logger         *zap.Logger
}

// NewTipService creates a keyboard service invoker with the given connect
// budget and retry cadence.
func NewTipService(connectTimeout, retryInterval time.Duration, clock domain.Clock, logger *zap.Logger) domain.KeyboardService {
	return &TipService{
		connectTimeout: connectTimeout,
		retryInterval:  retryInterval,
		clock:          clock,
		logger:         logger,
	}
}

// Toggle retries creating the service object on the retry cadence until the
// connect budget is exhausted. On success it issues exactly one toggle at
// target and releases the handle unconditionally.
func (s *TipService) Toggle(target uintptr) error {
	deadline := s.clock.Now().Add(s.connectTimeout)
	var lastErr error
	attempts := 0

	for {
		attempts++
		unknown, err := ole.CreateInstance(clsidTipInvocation, iidITipInvocation)
		if err == nil {
			s.logger.Debug("keyboard service connected",
				zap.Int("attempts", attempts))
			tip := (*iTipInvocation)(unsafe.Pointer(unknown))
			tip.toggle(target)
			tip.Release()
			return nil
		}
		lastErr = err
		if !s.clock.Now().Before(deadline) {
			break
		}
		s.clock.Sleep(s.retryInterval)
	}

	return fmt.Errorf("keyboard service unreachable after %s (%d attempts): %w",
		s.connectTimeout, attempts, lastErr)
}

// Ensure TipService implements domain.KeyboardService.
var _ domain.KeyboardService = (*TipService)(nil)
