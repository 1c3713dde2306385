package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DesktopFilePermissions = 0644
)

// Desktop entry constants
const (
	DesktopEntryDir       = ".local/share/applications"
	DesktopEntryExtension = ".desktop"
	MacOSApplicationsDir  = "Applications"
	MacOSBundleExtension  = ".app"
)

// CanAutoInstall reports whether a native launcher install flow exists for
// the current platform. Where it does not, the manual instructions fallback
// is the expected behavior.
func CanAutoInstall() bool {
	switch runtime.GOOS {
	case OSLinux, OSDarwin:
		return true
	default:
		return false
	}
}

// InstallLauncher installs a launcher entry for the running executable so
// the application can be started like an installed app. It returns the path
// of the created entry.
func InstallLauncher(appName, comment string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	switch runtime.GOOS {
	case OSLinux:
		return installDesktopEntryLinux(exe, appName, comment)
	case OSDarwin:
		return installApplicationLinkMacOS(exe, appName)
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// installDesktopEntryLinux writes an XDG desktop entry under the user's
// applications directory
func installDesktopEntryLinux(exe, appName, comment string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, DesktopEntryDir)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create applications directory: %w", err)
	}

	entryPath := filepath.Join(dir, slugify(appName)+DesktopEntryExtension)
	entry := desktopEntry(exe, appName, comment)
	if err := os.WriteFile(entryPath, []byte(entry), DesktopFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write desktop entry: %w", err)
	}
	return entryPath, nil
}

// desktopEntry renders the XDG desktop entry contents. The standalone
// environment override marks launches through the entry as installed runs.
func desktopEntry(exe, appName, comment string) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + appName + "\n")
	if comment != "" {
		b.WriteString("Comment=" + comment + "\n")
	}
	b.WriteString("Exec=env " + EnvStandalone + "=1 " + exe + "\n")
	b.WriteString("Terminal=false\n")
	return b.String()
}

// installApplicationLinkMacOS links the app bundle (or bare executable) into
// the user's Applications folder
func installApplicationLinkMacOS(exe, appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, MacOSApplicationsDir)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create Applications directory: %w", err)
	}

	target := exe
	linkName := appName + MacOSBundleExtension
	// Prefer linking the whole bundle when running from one
	if idx := strings.Index(exe, MacOSBundleMarker); idx > 0 {
		bundle := exe[:idx+len(MacOSBundleExtension)]
		target = bundle
		linkName = filepath.Base(bundle)
	}

	linkPath := filepath.Join(dir, linkName)
	if err := os.Remove(linkPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to replace existing link: %w", err)
	}
	if err := os.Symlink(target, linkPath); err != nil {
		return "", fmt.Errorf("failed to link into Applications: %w", err)
	}
	return linkPath, nil
}

// slugify converts an application name into a file-name friendly slug
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}
