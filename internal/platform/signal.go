package platform

import (
	"context"
	"sync"

	"github.com/ytget/install-prompt/internal/model"
)

// InstallFunc runs the native install flow and reports the user's decision.
// It blocks until the user decides or the context is cancelled.
type InstallFunc func(ctx context.Context) (model.Outcome, error)

// InstallSignal is a one-shot capability to trigger the native install flow.
// Prompting it more than once reports a dismissed outcome without running
// the flow again.
type InstallSignal struct {
	once    sync.Once
	install InstallFunc
}

// NewInstallSignal wraps an install flow into a one-shot signal
func NewInstallSignal(install InstallFunc) *InstallSignal {
	return &InstallSignal{install: install}
}

// Prompt runs the wrapped install flow exactly once
func (s *InstallSignal) Prompt(ctx context.Context) (model.Outcome, error) {
	outcome := model.OutcomeDismissed
	var err error
	s.once.Do(func() {
		outcome, err = s.install(ctx)
	})
	return outcome, err
}
