//go:build integration

package integration

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/8bit2qubit/physpanel/internal/domain"
	"github.com/8bit2qubit/physpanel/internal/usecase"
)

// The suite runs the real activation controller against fake OS collaborators
// and a fake clock, so every timing budget elapses instantly and
// deterministically.

type fixtures struct {
	probe    *stubProbe
	waiter   *stubWaiter
	resolver *stubResolver
	fs       *stubFS
	launcher *stubLauncher
	oracle   *stubOracle
	runtime  *stubRuntime
	keyboard *stubKeyboard
	clock    *stubClock
}

type stubProbe struct{ running map[string]bool }

func (s *stubProbe) IsRunning(name string) bool { return s.running[name] }

type stubWaiter struct {
	result bool
	calls  int
}

func (s *stubWaiter) WaitFor(name string, timeout time.Duration) bool {
	s.calls++
	return s.result
}

type stubResolver struct {
	path string
	err  error
}

func (s *stubResolver) KeyboardExecutable() (string, error) { return s.path, s.err }

type stubFS struct{ files map[string]bool }

func (s *stubFS) ExistsFile(path string) bool { return s.files[path] }

type stubLauncher struct{ calls int }

func (s *stubLauncher) Open(path string) error {
	s.calls++
	return nil
}

type stubOracle struct {
	visibleOnCall int // 0 = never
	calls         int
}

func (s *stubOracle) IsKeyboardVisible() bool {
	s.calls++
	return s.visibleOnCall > 0 && s.calls >= s.visibleOnCall
}

func (s *stubOracle) Name() string { return "stub" }

type stubRuntime struct {
	initCalls    int
	releaseCalls int
}

func (s *stubRuntime) Initialize() error {
	s.initCalls++
	return nil
}

func (s *stubRuntime) Release() { s.releaseCalls++ }

type stubKeyboard struct {
	err     error
	toggles int
}

func (s *stubKeyboard) Toggle(target uintptr) error {
	s.toggles++
	return s.err
}

type stubDesktop struct{}

func (stubDesktop) DesktopWindow() uintptr { return 0x10010 }

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time        { return c.now }
func (c *stubClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

const exePath = `C:\Program Files\Common Files\Microsoft Shared\ink\TabTip.exe`

var _ = Describe("Keyboard activation", func() {
	var (
		f         *fixtures
		activator *usecase.Activator
	)

	BeforeEach(func() {
		f = &fixtures{
			probe:    &stubProbe{running: map[string]bool{}},
			waiter:   &stubWaiter{result: true},
			resolver: &stubResolver{path: exePath},
			fs:       &stubFS{files: map[string]bool{exePath: true}},
			launcher: &stubLauncher{},
			oracle:   &stubOracle{},
			runtime:  &stubRuntime{},
			keyboard: &stubKeyboard{},
			clock:    &stubClock{now: time.Unix(1_700_000_000, 0)},
		}
		activator = usecase.NewActivator(
			usecase.DefaultActivatorConfig(),
			f.probe, f.waiter, f.resolver, f.fs, f.launcher,
			f.oracle, f.runtime, f.keyboard, stubDesktop{}, f.clock,
			zap.NewNop(),
		)
	})

	Context("when the keyboard process is already running", func() {
		BeforeEach(func() {
			f.probe.running["TabTip.exe"] = true
		})

		It("succeeds immediately with zero side effects", func() {
			outcome, err := activator.Activate()
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(domain.OutcomeAlreadyRunning))
			Expect(f.launcher.calls).To(BeZero())
			Expect(f.oracle.calls).To(BeZero())
			Expect(f.keyboard.toggles).To(BeZero())
		})
	})

	Context("when the keyboard becomes visible on poll tick 3", func() {
		BeforeEach(func() {
			f.oracle.visibleOnCall = 3
		})

		It("hides it with exactly one toggle and releases the runtime once", func() {
			outcome, err := activator.Activate()
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(domain.OutcomeHidden))
			Expect(f.launcher.calls).To(Equal(1))
			Expect(f.keyboard.toggles).To(Equal(1))
			Expect(f.runtime.initCalls).To(Equal(1))
			Expect(f.runtime.releaseCalls).To(Equal(1))
		})
	})

	Context("when the keyboard never becomes visible within the budget", func() {
		It("reports success without toggling or initializing the runtime", func() {
			outcome, err := activator.Activate()
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(domain.OutcomeLeftOpen))
			Expect(f.keyboard.toggles).To(BeZero())
			Expect(f.runtime.initCalls).To(BeZero())
			// 10s budget at 250ms cadence, deadline inclusive.
			Expect(f.oracle.calls).To(Equal(41))
		})
	})

	Context("when the executable is missing at the resolved path", func() {
		BeforeEach(func() {
			f.fs.files = map[string]bool{}
		})

		It("fails with ComponentNotFound before any wait or launch", func() {
			_, err := activator.Activate()
			var notFound *domain.ComponentNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(f.waiter.calls).To(BeZero())
			Expect(f.launcher.calls).To(BeZero())
		})
	})

	Context("when the keyboard is visible but the service never connects", func() {
		BeforeEach(func() {
			f.oracle.visibleOnCall = 1
			f.keyboard.err = errors.New("keyboard service unreachable after 10s")
		})

		It("fails with ActivationFailed and still releases the runtime", func() {
			_, err := activator.Activate()
			var activation *domain.ActivationError
			Expect(errors.As(err, &activation)).To(BeTrue())
			Expect(f.runtime.initCalls).To(Equal(1))
			Expect(f.runtime.releaseCalls).To(Equal(1))
		})
	})
})
