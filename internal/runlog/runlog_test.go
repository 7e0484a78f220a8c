package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var namePattern = regexp.MustCompile(`^\d{8}_\d{6}_baksweep\.log$`)

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestNewInCreatesTimestampedFile(t *testing.T) {
	dir := t.TempDir()

	l, err := NewIn(dir, false)
	if err != nil {
		t.Fatalf("NewIn() error = %v", err)
	}
	if got := filepath.Dir(l.Path()); got != dir {
		t.Errorf("log dir = %q, want %q", got, dir)
	}
	if base := filepath.Base(l.Path()); !namePattern.MatchString(base) {
		t.Errorf("log name = %q, want YYYYMMDD_HHMMSS_baksweep.log", base)
	}

	l.Info("scan started on %d volumes", 2)
	content := readLog(t, l)
	if !strings.Contains(content, "INFO - scan started on 2 volumes") {
		t.Errorf("log content = %q, want INFO line", content)
	}
}

func TestLevelTags(t *testing.T) {
	l, err := NewIn(t.TempDir(), true)
	if err != nil {
		t.Fatalf("NewIn() error = %v", err)
	}
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	l.Debug("d")

	content := readLog(t, l)
	for _, want := range []string{"INFO - i", "WARNING - w", "ERROR - e", "DEBUG - d"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q:\n%s", want, content)
		}
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	l, err := NewIn(t.TempDir(), false)
	if err != nil {
		t.Fatalf("NewIn() error = %v", err)
	}
	l.Debug("hidden")
	l.Info("shown")

	content := readLog(t, l)
	if strings.Contains(content, "hidden") {
		t.Errorf("debug line written without debug mode:\n%s", content)
	}
	if !strings.Contains(content, "shown") {
		t.Errorf("info line missing:\n%s", content)
	}
}

func TestNewInNeverSharesAFile(t *testing.T) {
	dir := t.TempDir()

	// Back-to-back runs land within the same second; each must still
	// get its own file.
	var paths []string
	for i := 1; i <= 3; i++ {
		l, err := NewIn(dir, false)
		if err != nil {
			t.Fatalf("NewIn() #%d error = %v", i, err)
		}
		l.Info("run %d", i)
		if err := l.Close(); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, l.Path())
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		if seen[p] {
			t.Fatalf("two runs share the log file %q", p)
		}
		seen[p] = true
	}

	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("run %d", i+1)
		if got := string(data); !strings.Contains(got, want) || strings.Count(got, "run ") != 1 {
			t.Errorf("log %q = %q, want exactly one line for %q", p, got, want)
		}
	}
}

func TestNewInUnwritableDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	if _, err := NewIn(missing, false); err == nil {
		t.Error("NewIn() in a missing directory succeeded, want error")
	}
}

func TestNopLogger(t *testing.T) {
	l := Nop()
	l.Info("goes nowhere")
	l.Debug("also nowhere")
	if l.Path() != "" {
		t.Errorf("Path() = %q, want empty", l.Path())
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
