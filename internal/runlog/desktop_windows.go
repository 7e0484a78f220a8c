//go:build windows

package runlog

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// desktopDir resolves the user's Desktop folder. OneDrive and folder
// redirection move it away from %USERPROFILE%\Desktop, so the shell's
// registry entry is consulted first.
func desktopDir() string {
	if dir := desktopFromRegistry(); dirExists(dir) {
		return dir
	}
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		dir := filepath.Join(profile, "Desktop")
		if dirExists(dir) {
			return dir
		}
	}
	return ""
}

// desktopFromRegistry reads the Desktop location from the User Shell
// Folders key. The value is REG_EXPAND_SZ and typically contains
// %USERPROFILE%.
func desktopFromRegistry() string {
	key, err := registry.OpenKey(registry.CURRENT_USER,
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`,
		registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	raw, _, err := key.GetStringValue("Desktop")
	if err != nil {
		return ""
	}
	expanded, err := registry.ExpandString(raw)
	if err != nil {
		return raw
	}
	return expanded
}
