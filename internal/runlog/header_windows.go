//go:build windows

package runlog

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// OSVersion returns a human-readable Windows version for the log
// header. RtlGetNtVersionNumbers works on all Windows versions without
// manifest requirements.
func OSVersion() string {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	// RtlGetNtVersionNumbers returns build with high bits set; mask them off
	build &= 0xFFFF

	var name string
	switch {
	case major == 10 && build >= 22000:
		name = "Windows 11"
	case major == 10:
		name = "Windows 10"
	case major == 6 && minor == 1:
		name = "Windows 7"
	default:
		name = fmt.Sprintf("Windows %d.%d", major, minor)
	}

	return fmt.Sprintf("%s (Build %d)", name, build)
}
