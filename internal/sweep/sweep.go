// Package sweep orchestrates a run: enumerate volumes, walk them for
// backup files, ask once, move the confirmed batch to the trash, and
// summarize. The interactive TUI and the plain console path share the
// same engine underneath.
package sweep

import (
	"io"
	"os"

	"github.com/lakshaymaurya-felt/baksweep/internal/exclude"
	"github.com/lakshaymaurya-felt/baksweep/internal/prompt"
	"github.com/lakshaymaurya-felt/baksweep/internal/trash"
	"github.com/lakshaymaurya-felt/baksweep/internal/volume"
)

// Logger is the run log surface the sweep writes through.
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Debug(format string, v ...any)
}

// Result summarizes a finished run.
type Result struct {
	Volumes    int // writable volumes scanned
	Candidates int // backup files offered for deletion
	Moved      int // files moved to the trash
	Failed     int // files that could not be moved
	Warnings   int // directories skipped during the scan
	Declined   bool
	Cancelled  bool
}

// Runner owns one sweep run. Zero-value fields fall back to the real
// environment; tests swap in fakes.
type Runner struct {
	Log       Logger
	Mover     trash.Mover
	Confirmer prompt.Confirmer
	Out       io.Writer
	Env       exclude.Environment

	// Enumerate lists the volumes to scan. Defaults to volume.Enumerate.
	Enumerate func() ([]volume.Volume, error)
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

func (r *Runner) log() Logger {
	if r.Log != nil {
		return r.Log
	}
	return nopLogger{}
}

func (r *Runner) enumerate() ([]volume.Volume, error) {
	if r.Enumerate != nil {
		return r.Enumerate()
	}
	return volume.Enumerate()
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
