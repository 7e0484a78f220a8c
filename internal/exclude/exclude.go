package exclude

import (
	"os"
	"path/filepath"
	"strings"
)

// recycleBinName is the system trash directory found at each volume root.
const recycleBinName = "$Recycle.Bin"

// Logger is the subset of the run log the builder reports through.
type Logger interface {
	Info(format string, v ...any)
	Debug(format string, v ...any)
}

// Set holds normalized directory prefixes that traversal must never enter.
// Built once per run, immutable afterwards.
type Set struct {
	prefixes []string
	foldCase bool
}

// NewSet builds a set from directory paths. foldCase makes membership
// tests case-insensitive, matching Windows filesystem semantics.
func NewSet(dirs []string, foldCase bool) *Set {
	s := &Set{foldCase: foldCase}
	for _, d := range dirs {
		s.prefixes = append(s.prefixes, s.normalize(d))
	}
	return s
}

// Build computes the exclusion set for a run. Baseline: the user's AppData
// tree. On Windows additionally: Program Files (and the x86 variant when
// distinct), the OS directory, and the recycle bin at each volume root.
// Candidates that do not currently exist as directories are dropped.
func Build(env Environment, volumeRoots []string, log Logger) *Set {
	if log == nil {
		log = nopLogger{}
	}

	var candidates []string
	if env.Home != "" {
		candidates = append(candidates, filepath.Join(env.Home, "AppData"))
	}

	if env.Windows {
		candidates = append(candidates, env.ProgramFiles)
		if env.ProgramFilesX86 != "" && !strings.EqualFold(env.ProgramFilesX86, env.ProgramFiles) {
			candidates = append(candidates, env.ProgramFilesX86)
		}
		candidates = append(candidates, env.WinDir)
		for _, root := range volumeRoots {
			candidates = append(candidates, filepath.Join(root, recycleBinName))
		}
	}

	var kept []string
	for _, c := range candidates {
		if c == "" {
			continue
		}
		info, err := os.Stat(c)
		if err != nil || !info.IsDir() {
			log.Debug("exclusion candidate skipped (not a directory): %s", c)
			continue
		}
		kept = append(kept, c)
		log.Info("excluding: %s", c)
	}

	return NewSet(kept, env.Windows)
}

// Contains reports whether path equals or descends from any excluded prefix.
func (s *Set) Contains(path string) bool {
	p := s.normalize(path)
	for _, prefix := range s.prefixes {
		if underPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Paths returns the normalized members, for logging.
func (s *Set) Paths() []string {
	return append([]string(nil), s.prefixes...)
}

// Len returns the number of excluded prefixes.
func (s *Set) Len() int {
	return len(s.prefixes)
}

// normalize resolves a path to absolute, cleaned form so prefix comparison
// is reliable, folding case when the host filesystem ignores it.
func (s *Set) normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if s.foldCase {
		abs = strings.ToLower(abs)
	}
	return abs
}

// underPrefix reports whether path is prefix itself or a descendant of it.
// The separator check prevents /a/b from matching /a/bc.
func underPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
