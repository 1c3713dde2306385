package platform

import (
	"context"
	"testing"

	"github.com/ytget/install-prompt/internal/model"
)

func TestWatcherDeliversToSubscriber(t *testing.T) {
	w := NewWatcher()

	var received *InstallSignal
	w.Subscribe(func(sig *InstallSignal) {
		received = sig
	})

	sig := NewInstallSignal(func(ctx context.Context) (model.Outcome, error) {
		return model.OutcomeAccepted, nil
	})
	w.Emit(sig)

	if received != sig {
		t.Error("Subscriber should have received the emitted signal")
	}
}

func TestWatcherDropsWithoutSubscriber(t *testing.T) {
	w := NewWatcher()

	// Must not panic
	w.Emit(NewInstallSignal(func(ctx context.Context) (model.Outcome, error) {
		return model.OutcomeAccepted, nil
	}))
}

func TestWatcherCloseDetaches(t *testing.T) {
	w := NewWatcher()

	delivered := 0
	w.Subscribe(func(sig *InstallSignal) {
		delivered++
	})
	w.Close()

	w.Emit(NewInstallSignal(func(ctx context.Context) (model.Outcome, error) {
		return model.OutcomeAccepted, nil
	}))
	if delivered != 0 {
		t.Error("A closed watcher must not deliver signals")
	}

	// Re-subscribing after Close stays detached
	w.Subscribe(func(sig *InstallSignal) {
		delivered++
	})
	w.Emit(NewInstallSignal(func(ctx context.Context) (model.Outcome, error) {
		return model.OutcomeAccepted, nil
	}))
	if delivered != 0 {
		t.Error("Subscribing after Close must have no effect")
	}
}

func TestInstallSignalIsOneShot(t *testing.T) {
	runs := 0
	sig := NewInstallSignal(func(ctx context.Context) (model.Outcome, error) {
		runs++
		return model.OutcomeAccepted, nil
	})

	outcome, err := sig.Prompt(context.Background())
	if err != nil {
		t.Fatalf("Unexpected prompt error: %v", err)
	}
	if !outcome.Accepted() {
		t.Errorf("Expected outcome %s, got %s", model.OutcomeAccepted, outcome)
	}

	// Second prompt must not run the flow again
	outcome, err = sig.Prompt(context.Background())
	if err != nil {
		t.Fatalf("Unexpected prompt error on reuse: %v", err)
	}
	if outcome.Accepted() {
		t.Error("A reused signal should report a dismissed outcome")
	}
	if runs != 1 {
		t.Errorf("Install flow should run exactly once, ran %d times", runs)
	}
}
