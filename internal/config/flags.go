package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Flag keys for Fyne preferences
const (
	KeyInstalled   = "installed"
	KeyDismissed   = "dismissed"
	KeyDismissedAt = "dismissed_at"
	KeyLanguage    = "app_language"
)

// Default values
const (
	// DismissCooldown is how long a dismissal keeps the banner suppressed.
	DismissCooldown = 7 * 24 * time.Hour

	DefaultLanguage = "system"
)

// Flags manages the persisted banner flags. Writes are best effort: a store
// that loses data degrades to the banner showing more often, never to a
// crash.
type Flags struct {
	app fyne.App
}

// NewFlags creates a new flags manager backed by the app's preferences
func NewFlags(app fyne.App) *Flags {
	return &Flags{app: app}
}

// Installed returns whether the application has been installed
func (f *Flags) Installed() bool {
	return f.app.Preferences().BoolWithFallback(KeyInstalled, false)
}

// SetInstalled records whether the application has been installed
func (f *Flags) SetInstalled(installed bool) {
	f.app.Preferences().SetBool(KeyInstalled, installed)
}

// Dismissed reports whether a dismissal is still in effect at the given
// time. An expired or timestamp-less dismissal is cleared on read so the
// banner becomes eligible again.
func (f *Flags) Dismissed(now time.Time) bool {
	if !f.app.Preferences().BoolWithFallback(KeyDismissed, false) {
		return false
	}

	expiry, ok := f.DismissalExpiry()
	if !ok || !now.Before(expiry) {
		f.ClearDismissed()
		return false
	}
	return true
}

// SetDismissed records a dismissal at the given time, starting the cooldown
func (f *Flags) SetDismissed(now time.Time) {
	f.app.Preferences().SetBool(KeyDismissed, true)
	f.app.Preferences().SetString(KeyDismissedAt, now.Format(time.RFC3339))
}

// ClearDismissed removes a recorded dismissal
func (f *Flags) ClearDismissed() {
	f.app.Preferences().SetBool(KeyDismissed, false)
	f.app.Preferences().SetString(KeyDismissedAt, "")
}

// Language returns the configured UI language
func (f *Flags) Language() string {
	lang := f.app.Preferences().String(KeyLanguage)
	if lang == "" {
		f.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (f *Flags) SetLanguage(lang string) {
	f.app.Preferences().SetString(KeyLanguage, lang)
}

// DismissalExpiry returns when the current dismissal cooldown ends. The
// second return value is false when no parsable dismissal time is recorded.
func (f *Flags) DismissalExpiry() (time.Time, bool) {
	raw := f.app.Preferences().String(KeyDismissedAt)
	if raw == "" {
		return time.Time{}, false
	}

	dismissedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return dismissedAt.Add(DismissCooldown), true
}
