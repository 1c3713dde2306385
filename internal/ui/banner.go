package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/install-prompt/internal/prompt"
)

// Banner is the dismissible install call-to-action widget. It stays hidden
// until the controller reports visibility, and routes the primary and
// secondary actions back into the controller.
type Banner struct {
	widget.BaseWidget

	controller   *prompt.Controller
	localization *Localization
	window       fyne.Window

	// UI components
	icon         fyne.CanvasObject
	titleLabel   *widget.Label
	messageLabel *widget.Label
	installBtn   *widget.Button
	laterBtn     *widget.Button
	closeBtn     *widget.Button
}

// NewBanner creates the install banner and attaches it to the controller
func NewBanner(window fyne.Window, controller *prompt.Controller, localization *Localization) *Banner {
	b := &Banner{
		controller:   controller,
		localization: localization,
		window:       window,
	}
	b.ExtendBaseWidget(b)
	b.createUI()
	b.Hide()

	controller.SetVisibilityCallback(b.onVisibilityChange)
	controller.SetFallbackCallback(b.onFallbackInstructions)

	return b
}

// createUI creates the UI components
func (b *Banner) createUI() {
	// App logo with a theme icon fallback
	if logo, err := LoadLogoResource(); err == nil {
		img := canvas.NewImageFromResource(logo)
		img.SetMinSize(fyne.NewSize(BannerIconSize, BannerIconSize))
		img.FillMode = canvas.ImageFillContain
		b.icon = img
	} else {
		b.icon = widget.NewIcon(theme.DownloadIcon())
	}

	b.titleLabel = widget.NewLabel(b.localization.GetText(KeyBannerTitle))
	b.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	b.messageLabel = widget.NewLabel(b.localization.GetText(KeyBannerMessage))
	b.messageLabel.Wrapping = fyne.TextWrapWord
	b.messageLabel.Truncation = fyne.TextTruncateEllipsis

	b.installBtn = widget.NewButton(b.localization.GetText(KeyInstall), func() {
		log.Printf("Install button clicked")
		b.controller.RequestInstall()
	})
	b.installBtn.Importance = widget.HighImportance

	b.laterBtn = widget.NewButton(b.localization.GetText(KeyMaybeLater), func() {
		log.Printf("Maybe later clicked")
		b.controller.Dismiss()
	})
	b.laterBtn.Importance = widget.LowImportance

	b.closeBtn = widget.NewButton(IconClose, func() {
		log.Printf("Banner close clicked")
		b.controller.Dismiss()
	})
	b.closeBtn.Importance = widget.LowImportance
}

// RefreshTexts updates the banner strings after a language change
func (b *Banner) RefreshTexts() {
	b.titleLabel.SetText(b.localization.GetText(KeyBannerTitle))
	b.messageLabel.SetText(b.localization.GetText(KeyBannerMessage))
	b.installBtn.SetText(b.localization.GetText(KeyInstall))
	b.laterBtn.SetText(b.localization.GetText(KeyMaybeLater))
	b.Refresh()
}

// onVisibilityChange shows or hides the banner on controller transitions
func (b *Banner) onVisibilityChange(visible bool) {
	fyne.Do(func() {
		if visible {
			b.Show()
		} else {
			b.Hide()
		}
		b.Refresh()
	})
}

// onFallbackInstructions surfaces the manual install text when no native
// install capability is available
func (b *Banner) onFallbackInstructions(instructions string) {
	fyne.Do(func() {
		dialog.ShowInformation(b.localization.GetText(KeyManualInstall), instructions, b.window)
	})
}

// CreateRenderer creates the widget renderer
func (b *Banner) CreateRenderer() fyne.WidgetRenderer {
	return &bannerRenderer{banner: b}
}

// bannerRenderer renders the banner widget
type bannerRenderer struct {
	banner *Banner
	layout *fyne.Container
}

// Layout arranges the components
func (r *bannerRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < BannerMinWidth {
		size.Width = BannerMinWidth
	}
	if size.Height < BannerMinHeight {
		size.Height = BannerMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *bannerRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		min := r.layout.MinSize()
		if min.Width < BannerMinWidth {
			min.Width = BannerMinWidth
		}
		return min
	}
	return fyne.NewSize(BannerMinWidth, BannerMinHeight)
}

// Refresh refreshes the renderer
func (r *bannerRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *bannerRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *bannerRenderer) Destroy() {}

// createLayout creates the main layout
func (r *bannerRenderer) createLayout() {
	b := r.banner

	header := container.NewBorder(nil, nil, b.icon, b.closeBtn, b.titleLabel)
	actions := container.NewHBox(b.installBtn, b.laterBtn)

	r.layout = container.NewVBox(
		widget.NewSeparator(),
		header,
		b.messageLabel,
		actions,
	)
}
