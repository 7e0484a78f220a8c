// Package runlog writes the per-run log file. Each run creates one
// timestamped file on the user's Desktop so the transcript is easy to
// find after the console window closes; without a Desktop the file
// lands in the working directory.
package runlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger is the run log. Every line carries a level tag so the file
// reads as a transcript of what the run did and why.
type Logger struct {
	logger *log.Logger
	file   *os.File
	path   string
	debug  bool
}

// New creates the log file for this run, preferring the user's Desktop
// and falling back to the working directory.
func New(debug bool) (*Logger, error) {
	if dir := desktopDir(); dir != "" {
		if l, err := NewIn(dir, debug); err == nil {
			return l, nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve log directory: %w", err)
	}
	return NewIn(wd, debug)
}

// NewIn creates the run log inside dir. Runs never share a file: a
// second run starting within the same second gets a counter suffix.
func NewIn(dir string, debug bool) (*Logger, error) {
	stamp := time.Now().Format("20060102_150405")
	name := stamp + "_baksweep.log"
	for i := 1; ; i++ {
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return &Logger{
				logger: log.New(f, "", log.LstdFlags|log.Lmicroseconds),
				file:   f,
				path:   path,
				debug:  debug,
			}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		name = fmt.Sprintf("%s_baksweep.%d.log", stamp, i)
	}
}

// Nop returns a Logger that discards everything, for when no log file
// could be created anywhere.
func Nop() *Logger {
	return &Logger{logger: log.New(io.Discard, "", 0)}
}

// Path reports where the log file lives, empty for a Nop logger.
func (l *Logger) Path() string {
	return l.path
}

func (l *Logger) Info(format string, v ...any) {
	l.logger.Printf("INFO - "+format, v...)
}

func (l *Logger) Warn(format string, v ...any) {
	l.logger.Printf("WARNING - "+format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.logger.Printf("ERROR - "+format, v...)
}

// Debug writes only when the logger was created with debug enabled.
func (l *Logger) Debug(format string, v ...any) {
	if !l.debug {
		return
	}
	l.logger.Printf("DEBUG - "+format, v...)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
