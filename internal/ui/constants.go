package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconClose    = "×"
	IconSettings = "⚙"
)

// Layout sizing (Banner)
const (
	BannerMinWidth  float32 = 360
	BannerMinHeight float32 = 96
	BannerIconSize  float32 = 40
)

// Dialog sizing
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 320
)

// Date formatting
const (
	DismissedUntilFormat = "Jan 2, 15:04"
)
