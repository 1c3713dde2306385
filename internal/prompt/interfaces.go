package prompt

import (
	"context"
	"time"

	"github.com/ytget/install-prompt/internal/model"
)

// FlagStore persists the two banner flags across application restarts.
// Reads are snapshot-at-call-time; the two flags are independent and no
// transactional guarantee is assumed across them.
type FlagStore interface {
	Installed() bool
	SetInstalled(installed bool)

	// Dismissed reports whether a dismissal is still in effect at the given
	// time, clearing an expired one as a side effect.
	Dismissed(now time.Time) bool
	SetDismissed(now time.Time)
	ClearDismissed()
	DismissalExpiry() (time.Time, bool)
}

// Signal is a one-shot, platform-supplied capability to run the native
// install flow. Prompt blocks until the user decides; the controller always
// invokes it off the caller's goroutine. A signal must not be prompted more
// than once.
type Signal interface {
	Prompt(ctx context.Context) (model.Outcome, error)
}
