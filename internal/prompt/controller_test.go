package prompt

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/install-prompt/internal/config"
	"github.com/ytget/install-prompt/internal/model"
)

const (
	testShowDelay = 10 * time.Millisecond
	testWait      = 2 * time.Second
	testPoll      = 2 * time.Millisecond
)

// fakeSignal is a recordable install capability for tests
type fakeSignal struct {
	outcome model.Outcome
	err     error

	mu       sync.Mutex
	prompted int
}

func (s *fakeSignal) Prompt(ctx context.Context) (model.Outcome, error) {
	s.mu.Lock()
	s.prompted++
	s.mu.Unlock()
	return s.outcome, s.err
}

func (s *fakeSignal) promptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompted
}

// visibilityRecorder captures visibility callback invocations
type visibilityRecorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *visibilityRecorder) callback(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, visible)
}

func (r *visibilityRecorder) sawVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.events {
		if v {
			return true
		}
	}
	return false
}

// newTestController builds a controller over in-memory preferences with a
// short show delay and a settable clock
func newTestController(t *testing.T) (*Controller, *config.Flags, *visibilityRecorder) {
	t.Helper()

	app := test.NewApp()
	flags := config.NewFlags(app)

	c := NewController(flags, "manual install instructions")
	c.showDelay = testShowDelay
	t.Cleanup(c.Close)

	recorder := &visibilityRecorder{}
	c.SetVisibilityCallback(recorder.callback)

	return c, flags, recorder
}

// waitFor polls until the condition holds or the test deadline passes
func waitFor(t *testing.T, what string, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(testWait)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(testPoll)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

func TestSignalSchedulesAndShows(t *testing.T) {
	c, _, recorder := newTestController(t)

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})

	if state := c.State(); !state.IsPending() {
		t.Errorf("Expected state %s after signal, got %s", model.StateScheduled, state)
	}

	waitFor(t, "banner to become visible", func() bool {
		return c.State().IsVisible()
	})

	if !recorder.sawVisible() {
		t.Error("Visibility callback should have reported the banner shown")
	}
	if !c.HasSignal() {
		t.Error("Signal should still be held while the banner is visible")
	}
}

func TestInstalledNeverShows(t *testing.T) {
	c, flags, recorder := newTestController(t)

	flags.SetInstalled(true)
	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})

	if state := c.State(); !state.IsHidden() {
		t.Errorf("Expected state %s while installed, got %s", model.StateHidden, state)
	}

	// Give a pending timer every chance to misfire
	time.Sleep(5 * testShowDelay)
	if c.State().IsVisible() || recorder.sawVisible() {
		t.Error("Banner must never show once installed")
	}
}

func TestOnInstalledCancelsPendingShow(t *testing.T) {
	c, flags, recorder := newTestController(t)
	c.showDelay = 100 * time.Millisecond

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})
	c.OnInstalled()

	if !flags.Installed() {
		t.Error("OnInstalled should persist the installed flag")
	}

	time.Sleep(300 * time.Millisecond)
	if c.State().IsVisible() || recorder.sawVisible() {
		t.Error("OnInstalled should cancel a pending scheduled show")
	}
}

func TestDismissSuppressesWithinCooldown(t *testing.T) {
	c, _, recorder := newTestController(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Dismiss()

	// Fresh signal one day later stays suppressed
	c.now = func() time.Time { return base.Add(24 * time.Hour) }
	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})

	if state := c.State(); !state.IsHidden() {
		t.Errorf("Expected state %s during cooldown, got %s", model.StateHidden, state)
	}

	time.Sleep(5 * testShowDelay)
	if recorder.sawVisible() {
		t.Error("Banner must not show while the dismissal cooldown holds")
	}
}

func TestDismissCooldownElapses(t *testing.T) {
	c, _, _ := newTestController(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Dismiss()

	// A signal after the 7 day window shows again
	c.now = func() time.Time { return base.Add(config.DismissCooldown + time.Minute) }
	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})

	waitFor(t, "banner to become visible after cooldown", func() bool {
		return c.State().IsVisible()
	})
}

func TestRequestInstallWithoutSignal(t *testing.T) {
	c, flags, _ := newTestController(t)

	var fallbackText string
	var fallbackCalls int
	var mu sync.Mutex
	c.SetFallbackCallback(func(instructions string) {
		mu.Lock()
		defer mu.Unlock()
		fallbackCalls++
		fallbackText = instructions
	})

	c.RequestInstall()

	mu.Lock()
	defer mu.Unlock()
	if fallbackCalls != 1 {
		t.Fatalf("Expected 1 fallback invocation, got %d", fallbackCalls)
	}
	if fallbackText != "manual install instructions" {
		t.Errorf("Unexpected fallback instructions: %s", fallbackText)
	}
	if flags.Installed() {
		t.Error("Fallback path must not set the installed flag")
	}
	if flags.Dismissed(time.Now()) {
		t.Error("Fallback path must not set the dismissed flag")
	}
}

func TestRequestInstallAccepted(t *testing.T) {
	c, flags, _ := newTestController(t)

	sig := &fakeSignal{outcome: model.OutcomeAccepted}
	c.OnInstallabilitySignal(sig)
	waitFor(t, "banner to become visible", func() bool {
		return c.State().IsVisible()
	})

	c.RequestInstall()

	waitFor(t, "installed flag after accepted outcome", flags.Installed)
	waitFor(t, "banner to hide", func() bool {
		return c.State().IsHidden()
	})

	if sig.promptCount() != 1 {
		t.Errorf("Expected signal prompted once, got %d", sig.promptCount())
	}
	if c.HasSignal() {
		t.Error("Consumed signal should have been discarded")
	}
}

func TestRequestInstallDismissedOutcome(t *testing.T) {
	c, flags, _ := newTestController(t)

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeDismissed})
	waitFor(t, "banner to become visible", func() bool {
		return c.State().IsVisible()
	})

	c.RequestInstall()

	waitFor(t, "banner to hide", func() bool {
		return c.State().IsHidden()
	})
	if flags.Installed() {
		t.Error("Dismissed outcome must not set the installed flag")
	}
	if c.HasSignal() {
		t.Error("Consumed signal should have been discarded regardless of outcome")
	}
}

func TestRequestInstallPromptError(t *testing.T) {
	c, flags, _ := newTestController(t)

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted, err: context.Canceled})
	waitFor(t, "banner to become visible", func() bool {
		return c.State().IsVisible()
	})

	c.RequestInstall()

	// A failed native flow behaves like a dismissed outcome
	waitFor(t, "banner to hide", func() bool {
		return c.State().IsHidden()
	})
	if flags.Installed() {
		t.Error("Failed install flow must not set the installed flag")
	}
}

func TestNewerSignalReplacesOlder(t *testing.T) {
	c, _, _ := newTestController(t)

	older := &fakeSignal{outcome: model.OutcomeAccepted}
	newer := &fakeSignal{outcome: model.OutcomeAccepted}

	c.OnInstallabilitySignal(older)
	c.OnInstallabilitySignal(newer)

	c.RequestInstall()

	waitFor(t, "newer signal to be prompted", func() bool {
		return newer.promptCount() == 1
	})
	if older.promptCount() != 0 {
		t.Error("Replaced signal must never be prompted")
	}
}

func TestDismissAlwaysHidesAndPersists(t *testing.T) {
	c, flags, _ := newTestController(t)

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})
	waitFor(t, "banner to become visible", func() bool {
		return c.State().IsVisible()
	})

	c.Dismiss()

	if state := c.State(); !state.IsHidden() {
		t.Errorf("Expected state %s after dismiss, got %s", model.StateHidden, state)
	}
	if !flags.Dismissed(time.Now()) {
		t.Error("Dismiss should persist the dismissed flag")
	}
	if _, ok := flags.DismissalExpiry(); !ok {
		t.Error("Dismiss should record the cooldown expiry")
	}
}

func TestDisplayModeCheck(t *testing.T) {
	c, flags, recorder := newTestController(t)

	c.OnDisplayModeCheck(false)
	if flags.Installed() {
		t.Error("Non-standalone display mode must not set the installed flag")
	}

	c.OnDisplayModeCheck(true)
	if !flags.Installed() {
		t.Error("Standalone display mode should persist the installed flag")
	}

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})
	time.Sleep(5 * testShowDelay)
	if recorder.sawVisible() {
		t.Error("Banner must not show after a standalone display-mode check")
	}
}

func TestCloseCancelsPendingShow(t *testing.T) {
	c, _, recorder := newTestController(t)
	c.showDelay = 100 * time.Millisecond

	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})
	c.Close()

	time.Sleep(300 * time.Millisecond)
	if recorder.sawVisible() {
		t.Error("A closed controller must not show the banner")
	}

	// Events after Close are ignored
	c.OnInstallabilitySignal(&fakeSignal{outcome: model.OutcomeAccepted})
	if c.HasSignal() {
		t.Error("A closed controller must not capture signals")
	}
}
