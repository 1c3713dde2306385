package prompt

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/install-prompt/internal/model"
)

// Timing constants
const (
	// ShowDelay is the pause between capturing an installability signal and
	// making the banner visible.
	ShowDelay = 1 * time.Second
)

// ID constants
const (
	SignalIDPrefix = "signal-"
)

// Controller owns the install banner state machine. It holds at most one
// unconsumed installability signal, schedules display after ShowDelay, and
// persists the user's decision through the injected FlagStore.
//
// All transitions are serialized by an internal mutex, so events observe
// arrival order: an OnInstalled that arrives before the show timer fires
// always cancels the pending show.
type Controller struct {
	mu    sync.Mutex
	flags FlagStore
	state model.PromptState

	signal   Signal
	signalID string

	showDelay     time.Duration
	showTimer     *time.Timer
	cooldownTimer *time.Timer

	instructions string

	onVisibility func(visible bool)        // callback for banner show/hide
	onFallback   func(instructions string) // callback for the manual install path

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	now func() time.Time
}

// NewController creates a new install prompt controller. The instructions
// text is surfaced through the fallback callback when no installability
// signal is held.
func NewController(flags FlagStore, instructions string) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		flags:        flags,
		state:        model.StateHidden,
		showDelay:    ShowDelay,
		instructions: instructions,
		ctx:          ctx,
		cancel:       cancel,
		now:          time.Now,
	}

	// Resume the cooldown clearing schedule from a previous run
	c.mu.Lock()
	if c.flags.Dismissed(c.now()) {
		c.scheduleCooldownClearLocked()
	}
	c.mu.Unlock()

	return c
}

// SetVisibilityCallback sets the callback invoked when the banner must be
// shown or hidden
func (c *Controller) SetVisibilityCallback(callback func(visible bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onVisibility = callback
}

// SetFallbackCallback sets the callback invoked with manual install
// instructions when no installability signal is available
func (c *Controller) SetFallbackCallback(callback func(instructions string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onFallback = callback
}

// State returns the current state of the banner state machine
func (c *Controller) State() model.PromptState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HasSignal returns whether an unconsumed installability signal is held
func (c *Controller) HasSignal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.signal != nil
}

// OnDisplayModeCheck records the startup display-mode query. When the app is
// already running in an installed/standalone presentation the installed flag
// is persisted so the banner never becomes eligible; visibility is not
// touched since nothing has been shown yet.
func (c *Controller) OnDisplayModeCheck(standalone bool) {
	if !standalone {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	log.Printf("Running in installed display mode, suppressing install banner")
	c.flags.SetInstalled(true)
}

// OnInstallabilitySignal captures a platform installability signal. Any
// previously held unconsumed signal is discarded. When the persisted flags
// allow it, the banner is scheduled to show after ShowDelay.
func (c *Controller) OnInstallabilitySignal(sig Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.signal != nil {
		log.Printf("Replacing unconsumed install signal %s", c.signalID)
	}
	c.signal = sig
	c.signalID = generateSignalID()
	log.Printf("Captured install signal %s", c.signalID)

	if c.flags.Installed() {
		log.Printf("App already installed, not scheduling banner")
		return
	}
	if c.flags.Dismissed(c.now()) {
		if expiry, ok := c.flags.DismissalExpiry(); ok {
			log.Printf("Banner dismissed, suppressed until %s", expiry.Format(time.RFC3339))
		}
		return
	}

	c.scheduleShowLocked()
}

// OnInstalled records a completed installation. A pending scheduled show is
// cancelled and the banner is forced hidden immediately.
func (c *Controller) OnInstalled() {
	c.mu.Lock()
	c.flags.SetInstalled(true)
	c.cancelShowLocked()
	c.state = model.StateHidden
	callback := c.onVisibility
	c.mu.Unlock()

	log.Printf("Installation completed, hiding install banner")
	if callback != nil {
		callback(false)
	}
}

// RequestInstall handles the primary call-to-action. With no signal held the
// fallback callback receives the manual install instructions and no state
// changes. With a signal held, its prompt action runs asynchronously; an
// accepted outcome persists the installed flag. The signal is discarded in
// both outcome branches.
func (c *Controller) RequestInstall() {
	c.mu.Lock()
	sig := c.signal
	signalID := c.signalID
	c.signal = nil
	c.signalID = ""
	callback := c.onFallback
	instructions := c.instructions
	c.mu.Unlock()

	if sig == nil {
		log.Printf("No install signal held, showing manual install instructions")
		if callback != nil {
			callback(instructions)
		}
		return
	}

	log.Printf("Invoking native install flow for signal %s", signalID)
	go func() {
		outcome, err := sig.Prompt(c.ctx)
		if err != nil {
			log.Printf("Install flow for signal %s failed: %v", signalID, err)
			outcome = model.OutcomeDismissed
		}
		c.finishInstall(signalID, outcome)
	}()
}

// Dismiss handles the close control and the secondary "maybe later" action.
// The banner hides immediately and the dismissal is persisted with a
// cooldown expiry, after which it is cleared automatically.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	c.flags.SetDismissed(c.now())
	c.cancelShowLocked()
	c.state = model.StateHidden
	c.scheduleCooldownClearLocked()
	callback := c.onVisibility
	c.mu.Unlock()

	log.Printf("Install banner dismissed by user")
	if callback != nil {
		callback(false)
	}
}

// Close tears down the controller, cancelling the show and cooldown timers
// so they cannot act on a stale instance. Held signals are discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.showTimer != nil {
		c.showTimer.Stop()
		c.showTimer = nil
	}
	if c.cooldownTimer != nil {
		c.cooldownTimer.Stop()
		c.cooldownTimer = nil
	}
	c.signal = nil
	c.signalID = ""
	c.state = model.StateHidden
	c.mu.Unlock()

	c.cancel()
	log.Printf("Install prompt controller closed")
}

// finishInstall applies the outcome of a consumed signal
func (c *Controller) finishInstall(signalID string, outcome model.Outcome) {
	c.mu.Lock()
	if outcome.Accepted() {
		c.flags.SetInstalled(true)
	}
	c.cancelShowLocked()
	c.state = model.StateHidden
	callback := c.onVisibility
	c.mu.Unlock()

	log.Printf("Install signal %s consumed with outcome: %s", signalID, outcome)
	if callback != nil {
		callback(false)
	}
}

// scheduleShowLocked arms the show timer. A visible banner stays visible; a
// pending schedule restarts with a fresh delay. Callers must hold c.mu.
func (c *Controller) scheduleShowLocked() {
	if c.state == model.StateVisible {
		return
	}

	if c.showTimer != nil {
		c.showTimer.Stop()
	}
	c.state = model.StateScheduled
	c.showTimer = time.AfterFunc(c.showDelay, c.showNow)
	log.Printf("Install banner scheduled to show in %s", c.showDelay)
}

// cancelShowLocked disarms a pending show timer. Callers must hold c.mu.
func (c *Controller) cancelShowLocked() {
	if c.showTimer != nil {
		c.showTimer.Stop()
		c.showTimer = nil
	}
	if c.state == model.StateScheduled {
		c.state = model.StateHidden
	}
}

// showNow fires when the show delay elapses
func (c *Controller) showNow() {
	c.mu.Lock()
	if c.closed || c.state != model.StateScheduled {
		c.mu.Unlock()
		return
	}

	// Flags may have changed while the timer was pending
	if c.flags.Installed() || c.flags.Dismissed(c.now()) {
		c.state = model.StateHidden
		c.mu.Unlock()
		return
	}

	c.state = model.StateVisible
	callback := c.onVisibility
	c.mu.Unlock()

	log.Printf("Showing install banner")
	if callback != nil {
		callback(true)
	}
}

// scheduleCooldownClearLocked arms the timer clearing an expired dismissal
// while the app keeps running. Callers must hold c.mu.
func (c *Controller) scheduleCooldownClearLocked() {
	expiry, ok := c.flags.DismissalExpiry()
	if !ok {
		return
	}

	delay := expiry.Sub(c.now())
	if delay < 0 {
		delay = 0
	}

	if c.cooldownTimer != nil {
		c.cooldownTimer.Stop()
	}
	c.cooldownTimer = time.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		c.flags.ClearDismissed()
		log.Printf("Dismiss cooldown elapsed, banner eligible again")
	})
}

// generateSignalID generates a unique capture ID using UUID v7 for better
// uniqueness and time ordering
func generateSignalID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SignalIDPrefix+"%d", time.Now().UnixNano())
	}
	return SignalIDPrefix + id.String()
}
