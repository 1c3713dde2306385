package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/install-prompt/internal/config"
	"github.com/ytget/install-prompt/internal/model"
	"github.com/ytget/install-prompt/internal/platform"
	"github.com/ytget/install-prompt/internal/prompt"
	"github.com/ytget/install-prompt/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.install-prompt"
	AppName = "Install Prompt"

	WindowWidth  = 480
	WindowHeight = 360
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBannerTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize persisted flags and the prompt controller
	flags := config.NewFlags(myApp)
	controller := prompt.NewController(flags, platform.ManualInstallInstructions())
	defer controller.Close()

	// One-time startup query for the installed display mode
	controller.OnDisplayModeCheck(platform.IsStandaloneDisplayMode())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, controller, flags)

	// Subscribe for installability signals; detach on shutdown
	watcher := platform.NewWatcher()
	defer watcher.Close()
	watcher.Subscribe(func(sig *platform.InstallSignal) {
		controller.OnInstallabilitySignal(sig)
	})

	// Install criteria are met when a native launcher flow exists here
	if platform.CanAutoInstall() {
		watcher.Emit(platform.NewInstallSignal(
			func(ctx context.Context) (model.Outcome, error) {
				return rootUI.ConfirmInstall(ctx)
			}))
	}

	// Show and run
	myWindow.ShowAndRun()
}
