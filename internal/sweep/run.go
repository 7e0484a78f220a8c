package sweep

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lakshaymaurya-felt/baksweep/internal/exclude"
	"github.com/lakshaymaurya-felt/baksweep/internal/prompt"
	"github.com/lakshaymaurya-felt/baksweep/internal/scan"
	"github.com/lakshaymaurya-felt/baksweep/internal/trash"
	"github.com/lakshaymaurya-felt/baksweep/internal/ui"
)

// Run executes a sweep in plain console mode: progress lines on the
// writer, one y/N prompt on stdin, then the batch. Every outcome that
// is not an internal failure returns a nil error; the Result tells the
// caller what happened.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result

	vols, err := r.enumerate()
	if err != nil {
		r.log().Error("volume enumeration failed: %s", err)
		fmt.Fprintf(r.out(), "  %s could not enumerate volumes: %s\n", ui.IconWarning, err)
	}
	if len(vols) == 0 {
		r.log().Info("no writable volumes found, nothing to scan")
		fmt.Fprintln(r.out(), "No writable volumes found. Nothing to scan.")
		return res, nil
	}
	res.Volumes = len(vols)

	roots := make([]string, len(vols))
	for i, v := range vols {
		roots[i] = v.Root
	}
	excl := exclude.Build(r.Env, roots, r.log())

	w := scan.NewWalker(excl, r.log())
	w.Stop = ctx.Done()

	fmt.Fprintf(r.out(), "Scanning %d writable volume(s):\n", len(vols))
	var candidates []scan.Candidate
	for _, v := range vols {
		fmt.Fprintf(r.out(), "  %s %s\n", ui.IconChevron, v.Describe())
		r.log().Info("scanning volume: %s", v.Root)
		candidates = append(candidates, w.Walk(v.Root)...)
	}
	res.Candidates = len(candidates)
	res.Warnings = len(w.Warnings())
	r.log().Info("scan finished: %d directories visited, %d candidate(s), %d warning(s)",
		w.Visited(), len(candidates), res.Warnings)

	if ctx.Err() != nil {
		res.Cancelled = true
		r.log().Info("run cancelled during scan")
		fmt.Fprintln(r.out(), "Cancelled. Nothing was moved.")
		return res, nil
	}
	if len(candidates) == 0 {
		// The summary is reported even when there was nothing to move.
		r.log().Info("summary: moved 0 file(s) to trash, 0 failure(s)")
		fmt.Fprintln(r.out(), "No backup files with matching originals were found.")
		return res, nil
	}

	r.printCandidates(candidates)

	ok, err := r.confirmer().Confirm(fmt.Sprintf("Move %d file(s) to the trash?", len(candidates)))
	if err != nil {
		return res, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok || ctx.Err() != nil {
		res.Declined = true
		res.Cancelled = ctx.Err() != nil
		r.log().Info("user declined, nothing deleted")
		fmt.Fprintln(r.out(), "Nothing was moved.")
		return res, nil
	}
	r.log().Info("user confirmed deletion of %d file(s)", len(candidates))

	total := len(candidates)
	res.Moved, res.Failed = ExecuteBatch(r.mover(), candidates, r.log(), func(i int, c scan.Candidate, itemErr error) {
		name := filepath.Base(c.Path)
		if itemErr != nil {
			fmt.Fprintf(r.out(), "  [%d/%d] %s %s  %s\n", i+1, total, ui.IconCross, name, itemErr)
		} else {
			fmt.Fprintf(r.out(), "  [%d/%d] %s %s\n", i+1, total, ui.IconCheck, name)
		}
	})

	r.log().Info("summary: moved %d file(s) to trash, %d failure(s)", res.Moved, res.Failed)
	if res.Failed > 0 {
		fmt.Fprintf(r.out(), "\nMoved %d file(s) to the trash, %d failed.\n", res.Moved, res.Failed)
	} else {
		fmt.Fprintf(r.out(), "\nMoved %d file(s) to the trash.\n", res.Moved)
	}
	return res, nil
}

// printCandidates writes the numbered review list along with the total
// size the move would reclaim.
func (r *Runner) printCandidates(candidates []scan.Candidate) {
	fmt.Fprintf(r.out(), "\nFound %d backup file(s) with live originals:\n\n", len(candidates))
	var total int64
	for i, c := range candidates {
		fmt.Fprintf(r.out(), "  %3d. %s (%s)\n", i+1, c.Path, ui.FormatSize(c.Size))
		total += c.Size
	}
	fmt.Fprintf(r.out(), "\n  Total: %s\n\n", ui.FormatSize(total))
}

func (r *Runner) confirmer() prompt.Confirmer {
	if r.Confirmer != nil {
		return r.Confirmer
	}
	return &prompt.TerminalConfirmer{}
}

func (r *Runner) mover() trash.Mover {
	if r.Mover != nil {
		return r.Mover
	}
	return trash.New()
}
