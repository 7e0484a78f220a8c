package scan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// maxWarnings caps the traversal warnings kept in memory. Further
// failures are still counted in the run log but not retained.
const maxWarnings = 500

// Candidate is a backup file whose original still exists beside it.
type Candidate struct {
	Path     string // backup file
	Original string // sibling original that justified the match
	Size     int64  // backup size in bytes; 0 when the size could not be read
}

// Logger is the subset of the run log the walker reports through.
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Debug(format string, v ...any)
}

// Excluder prunes whole subtrees from the walk.
type Excluder interface {
	Contains(path string) bool
}

// Walker walks volume roots top-down, pruning excluded subtrees and
// collecting backup files whose originals are still present. It never
// mutates the filesystem.
type Walker struct {
	// OnDir is called for every directory entered, after exclusion
	// pruning. Optional; used for progress display.
	OnDir func(path string)

	// OnFound is called for every candidate as it is discovered.
	// Optional.
	OnFound func(c Candidate)

	// Stop aborts the walk early when closed. Optional.
	Stop <-chan struct{}

	pairs    []Pair
	excluded Excluder
	log      Logger

	visited  int64
	warnings []string
}

// NewWalker returns a walker using the default pair table. Both the
// excluder and the logger may be nil.
func NewWalker(excluded Excluder, log Logger) *Walker {
	return &Walker{
		pairs:    DefaultPairs,
		excluded: excluded,
		log:      log,
	}
}

// Walk scans a single volume root and returns its candidates in
// discovery order. Directories that cannot be read are logged and
// skipped; an unreadable root yields zero candidates without error.
func (w *Walker) Walk(root string) []Candidate {
	var found []Candidate
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-w.Stop:
			return fs.SkipAll
		default:
		}
		if err != nil {
			// d is nil when the root itself could not be statted.
			w.warn(path, err)
			return nil
		}
		if d.IsDir() {
			if w.excluded != nil && w.excluded.Contains(path) {
				w.debug("pruned: %s", path)
				return fs.SkipDir
			}
			w.visited++
			if w.OnDir != nil {
				w.OnDir(path)
			}
			return nil
		}
		if c, ok := w.match(path, d); ok {
			found = append(found, c)
			w.info("candidate: %s (original: %s)", c.Path, c.Original)
			if w.OnFound != nil {
				w.OnFound(c)
			}
		}
		return nil
	})
	return found
}

// match pairs a file with its original. A backup whose original is gone
// is an orphan and is left alone.
func (w *Walker) match(path string, d fs.DirEntry) (Candidate, bool) {
	p, ok := Match(w.pairs, d.Name())
	if !ok {
		return Candidate{}, false
	}
	original := p.OriginalPath(path)
	if _, err := os.Stat(original); err != nil {
		return Candidate{}, false
	}
	c := Candidate{Path: path, Original: original}
	if info, err := d.Info(); err == nil {
		c.Size = info.Size()
	}
	return c, true
}

// Visited reports how many directories have been entered across all
// Walk calls.
func (w *Walker) Visited() int64 {
	return w.visited
}

// Warnings returns a copy of the traversal warnings accumulated so far.
func (w *Walker) Warnings() []string {
	return append([]string(nil), w.warnings...)
}

func (w *Walker) warn(path string, err error) {
	if len(w.warnings) < maxWarnings {
		w.warnings = append(w.warnings, path+": "+err.Error())
	}
	if w.log != nil {
		w.log.Warn("cannot read %s: %s", path, err)
	}
}

func (w *Walker) info(format string, v ...any) {
	if w.log != nil {
		w.log.Info(format, v...)
	}
}

func (w *Walker) debug(format string, v ...any) {
	if w.log != nil {
		w.log.Debug(format, v...)
	}
}
