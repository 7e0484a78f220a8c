//go:build !windows

package runlog

import (
	"os"
	"path/filepath"
)

// desktopDir returns ~/Desktop when it exists, otherwise "" so the log
// falls back to the working directory.
func desktopDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, "Desktop")
	if dirExists(dir) {
		return dir
	}
	return ""
}
