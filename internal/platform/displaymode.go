package platform

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Environment variables
const (
	// EnvStandalone overrides installed display-mode detection, mainly for
	// launcher entries that want to mark their own launches.
	EnvStandalone = "INSTALL_PROMPT_STANDALONE"
)

// Installed location markers per OS
const (
	MacOSBundleMarker = ".app/Contents/MacOS/"

	WindowsProgramFiles    = "\\Program Files"
	WindowsLocalAppDataDir = "\\AppData\\Local\\Programs\\"
)

var (
	// LinuxInstalledPrefixes are executable locations that indicate a
	// system or user installation rather than an ad hoc launch.
	LinuxInstalledPrefixes = []string{"/usr/bin/", "/usr/local/bin/", "/opt/"}
)

// IsStandaloneDisplayMode reports whether the application is currently
// presented as an installed app rather than launched ad hoc. The environment
// override wins; otherwise the executable location is inspected.
func IsStandaloneDisplayMode() bool {
	if value := os.Getenv(EnvStandalone); value != "" {
		if standalone, err := strconv.ParseBool(value); err == nil {
			return standalone
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return false
	}
	return launchedFromInstalledLocation(exe, runtime.GOOS)
}

// launchedFromInstalledLocation checks whether the executable path is an
// installed location for the given OS
func launchedFromInstalledLocation(exe, goos string) bool {
	switch goos {
	case OSDarwin:
		return strings.Contains(exe, MacOSBundleMarker)
	case OSWindows:
		return strings.Contains(exe, WindowsProgramFiles) ||
			strings.Contains(exe, WindowsLocalAppDataDir)
	case OSLinux:
		for _, prefix := range LinuxInstalledPrefixes {
			if strings.HasPrefix(exe, prefix) {
				return true
			}
		}
		if home, err := os.UserHomeDir(); err == nil {
			return strings.HasPrefix(exe, home+"/.local/bin/")
		}
		return false
	default:
		return false
	}
}
