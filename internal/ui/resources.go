package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "install-prompt.png"
)

// LoadLogoResource loads the application logo from the file path. Callers
// fall back to a theme icon when the file is missing.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
