package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/install-prompt/internal/config"
	"github.com/ytget/install-prompt/internal/platform"
	"github.com/ytget/install-prompt/internal/prompt"
	"github.com/ytget/install-prompt/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.install-prompt")
	myWindow := myApp.NewWindow("Install Prompt")
	myWindow.Resize(fyne.NewSize(480, 360))

	flags := config.NewFlags(myApp)
	controller := prompt.NewController(flags, platform.ManualInstallInstructions())
	defer controller.Close()

	controller.OnDisplayModeCheck(platform.IsStandaloneDisplayMode())

	// Create and setup UI
	ui.NewRootUI(myWindow, controller, flags)

	// Show and run
	myWindow.ShowAndRun()
}
