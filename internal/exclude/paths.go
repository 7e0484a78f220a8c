package exclude

import (
	"os"
	"runtime"
)

// Environment supplies the platform values the exclusion builder reads.
// Tests construct it directly; production code uses HostEnvironment.
type Environment struct {
	// Home is the invoking user's profile directory.
	Home string

	// Windows selects the Windows-specific exclusions.
	Windows bool

	// WinDir is the OS installation directory.
	WinDir string

	// ProgramFiles and ProgramFilesX86 are the program directories.
	// They may resolve to the same path on 32-bit installs.
	ProgramFiles    string
	ProgramFilesX86 string
}

// HostEnvironment reads the real process environment.
func HostEnvironment() Environment {
	return Environment{
		Home:            userProfile(),
		Windows:         runtime.GOOS == "windows",
		WinDir:          winDir(),
		ProgramFiles:    programFiles(),
		ProgramFilesX86: programFilesX86(),
	}
}

// userProfile returns the user's home directory, preferring %USERPROFILE%
// on Windows.
func userProfile() string {
	if runtime.GOOS == "windows" {
		if h := os.Getenv("USERPROFILE"); h != "" {
			return h
		}
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// programFiles returns the Program Files directory.
func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

// programFilesX86 returns the Program Files (x86) directory.
func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}
