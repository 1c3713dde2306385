package platform

import "runtime"

// Manual install instructions shown when no native install capability is
// available on the current platform. This is the designed fallback path, not
// an error.
const (
	instructionsDarwin = "Automatic installation is not available.\n" +
		"Drag the application into your Applications folder, then launch it from there."

	instructionsWindows = "Automatic installation is not available.\n" +
		"Move the application into a permanent folder and pin it to the Start menu or taskbar."

	instructionsLinux = "Automatic installation is not available.\n" +
		"Copy the binary to ~/.local/bin and add a desktop entry, or install the distribution package."

	instructionsGeneric = "Automatic installation is not available on this platform.\n" +
		"Keep the application in a permanent location and launch it from there."
)

// ManualInstallInstructions returns the per-OS manual install text
func ManualInstallInstructions() string {
	switch runtime.GOOS {
	case OSDarwin:
		return instructionsDarwin
	case OSWindows:
		return instructionsWindows
	case OSLinux:
		return instructionsLinux
	default:
		return instructionsGeneric
	}
}
