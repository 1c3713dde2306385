package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/install-prompt/internal/config"
	"github.com/ytget/install-prompt/internal/model"
	"github.com/ytget/install-prompt/internal/platform"
	"github.com/ytget/install-prompt/internal/prompt"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	flags        *config.Flags
	controller   *prompt.Controller
	localization *Localization

	banner         *Banner
	settingsDialog *SettingsDialog
	statusLabel    *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, controller *prompt.Controller, flags *config.Flags) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(flags.Language())

	ui := &RootUI{
		window:       window,
		flags:        flags,
		controller:   controller,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter
	ui.refreshStatus()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	titleLabel := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	topPanel := container.NewBorder(nil, nil, titleLabel, settingsBtn)

	// The banner docks to the bottom edge and manages its own visibility
	ui.banner = NewBanner(ui.window, ui.controller, ui.localization)
	ui.settingsDialog = NewSettingsDialog(ui.flags, ui.localization, ui.window)

	// Top panel, banner at the bottom edge, host application body in the center
	content := container.NewBorder(
		topPanel,
		ui.banner,
		nil,
		nil,
		ui.statusLabel,
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.flags.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.banner.RefreshTexts()
	ui.refreshStatus()
}

// refreshStatus reflects the persisted install state in the host body
func (ui *RootUI) refreshStatus() {
	if ui.flags.Installed() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyInstalledState))
	} else {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNotInstalledState))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// ConfirmInstall runs the in-app stand-in for the native install flow: a
// confirmation dialog followed by launcher-entry installation. It blocks
// until the user decides, so the controller invokes it off the UI goroutine.
func (ui *RootUI) ConfirmInstall(ctx context.Context) (model.Outcome, error) {
	decision := make(chan bool, 1)
	fyne.Do(func() {
		dialog.ShowConfirm(
			ui.localization.GetText(KeyBannerTitle),
			ui.localization.GetText(KeyBannerMessage),
			func(ok bool) { decision <- ok },
			ui.window,
		)
	})

	select {
	case ok := <-decision:
		if !ok {
			return model.OutcomeDismissed, nil
		}
	case <-ctx.Done():
		return model.OutcomeDismissed, ctx.Err()
	}

	entryPath, err := platform.InstallLauncher(
		ui.localization.GetText(KeyAppTitle),
		ui.localization.GetText(KeyBannerMessage),
	)
	if err != nil {
		return model.OutcomeDismissed, err
	}
	log.Printf("Installed launcher entry: %s", entryPath)

	// Report the platform installed event and notify the user
	ui.controller.OnInstalled()
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyAppTitle),
		Content: ui.localization.GetText(KeyInstallDone),
	})
	fyne.Do(ui.refreshStatus)

	return model.OutcomeAccepted, nil
}
