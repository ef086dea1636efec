//go:build windows

package infra

import (
	"errors"
	"fmt"
	"runtime"

	ole "github.com/go-ole/go-ole"

	"github.com/8bit2qubit/physpanel/internal/domain"
)

// sFalse is the HRESULT returned when COM was already initialized on the
// calling thread. It is a success code and still requires the balancing
// CoUninitialize.
const sFalse = 1

// ComRuntimeImpl implements domain.ComRuntime as a single-threaded COM
// apartment. Initialize pins the goroutine to its OS thread so every COM
// call until Release lands on the apartment's thread.
type ComRuntimeImpl struct{}

// NewComRuntime creates a new COM runtime scope.
func NewComRuntime() domain.ComRuntime {
	return &ComRuntimeImpl{}
}

// Initialize enters an apartment-threaded COM context on the current thread.
func (c *ComRuntimeImpl) Initialize() error {
	runtime.LockOSThread()
	if ok := enterApartment(); !ok {
		runtime.UnlockOSThread()
		return fmt.Errorf("CoInitializeEx failed for the current thread")
	}
	return nil
}

// Release leaves the apartment and unpins the OS thread.
func (c *ComRuntimeImpl) Release() {
	ole.CoUninitialize()
	runtime.UnlockOSThread()
}

// withApartment runs fn on a thread holding a COM apartment. The goroutine is
// pinned for the duration so initialization, fn, and the balancing
// CoUninitialize all land on the same OS thread; without the pin the runtime
// could migrate the goroutine mid-scope, leaving the entered apartment leaked
// on one thread while CoUninitialize unbalances another. Returns whether the
// apartment was entered and fn ran.
func withApartment(fn func()) bool {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if ok := enterApartment(); !ok {
		return false
	}
	defer ole.CoUninitialize()

	fn()
	return true
}

// enterApartment initializes an apartment-threaded COM context on the calling
// thread. Both S_OK and S_FALSE count as entered; either way the caller owes
// one CoUninitialize.
func enterApartment() bool {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err == nil {
		return true
	}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && oleErr.Code() == sFalse {
		return true
	}
	return false
}

// Ensure ComRuntimeImpl implements domain.ComRuntime.
var _ domain.ComRuntime = (*ComRuntimeImpl)(nil)
