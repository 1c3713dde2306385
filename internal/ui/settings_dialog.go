package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/install-prompt/internal/config"
)

// SettingsDialog shows the banner maintenance settings: the current install
// and snooze state, and checkboxes to forget either of them.
type SettingsDialog struct {
	flags        *config.Flags
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	installedLabel     *widget.Label
	snoozeLabel        *widget.Label
	resetSnoozeCheck   *widget.Check
	resetInstalledChck *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(flags *config.Flags, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		flags:        flags,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentState()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.installedLabel = widget.NewLabel("")
	sd.snoozeLabel = widget.NewLabel("")

	sd.resetSnoozeCheck = widget.NewCheck(sd.localization.GetText(KeyResetSnooze), nil)
	sd.resetInstalledChck = widget.NewCheck(sd.localization.GetText(KeyResetInstalled), nil)

	form := container.NewVBox(
		sd.installedLabel,
		sd.snoozeLabel,
		widget.NewSeparator(),
		sd.resetSnoozeCheck,
		sd.resetInstalledChck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentState loads the current flag state into the UI
func (sd *SettingsDialog) loadCurrentState() {
	if sd.flags.Installed() {
		sd.installedLabel.SetText(sd.localization.GetText(KeyInstalledState))
	} else {
		sd.installedLabel.SetText(sd.localization.GetText(KeyNotInstalledState))
	}

	if sd.flags.Dismissed(time.Now()) {
		if expiry, ok := sd.flags.DismissalExpiry(); ok {
			sd.snoozeLabel.SetText(sd.localization.GetText(KeySnoozedUntil) + " " +
				expiry.Local().Format(DismissedUntilFormat))
		}
	} else {
		sd.snoozeLabel.SetText(sd.localization.GetText(KeyNotSnoozed))
	}

	sd.resetSnoozeCheck.SetChecked(false)
	sd.resetInstalledChck.SetChecked(false)
}

// onSave applies the selected maintenance actions
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.resetSnoozeCheck.Checked {
		sd.flags.ClearDismissed()
	}
	if sd.resetInstalledChck.Checked {
		sd.flags.SetInstalled(false)
	}
}
