package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/baksweep/internal/exclude"
	"github.com/lakshaymaurya-felt/baksweep/internal/prompt"
	"github.com/lakshaymaurya-felt/baksweep/internal/runlog"
	"github.com/lakshaymaurya-felt/baksweep/internal/sweep"
	"github.com/lakshaymaurya-felt/baksweep/internal/trash"
	"github.com/lakshaymaurya-felt/baksweep/internal/ui"
	"github.com/lakshaymaurya-felt/baksweep/internal/volume"
)

var (
	// Global flags
	debug bool
	yes   bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "baksweep",
	Short: "Sweep stale CAD backup files into the trash",
	Long: `baksweep - sweep stale CAD backup files into the trash.

Scans every writable volume for AutoCAD .bak and SketchUp .skb backups
whose original drawing or model still exists next to them, shows the
whole list, and after one confirmation moves the batch to the
recoverable trash. Windows system directories and the user's AppData
are never entered. Each run writes a log file to the Desktop.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweep()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug detail to the run log")
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(volumesCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runSweep is the default action: interactive when stdout is a
// terminal, plain line output otherwise. Every outcome short of an
// internal failure exits zero.
func runSweep() error {
	log, err := runlog.New(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: running without a log file: %v\n", err)
		log = runlog.Nop()
	}
	defer log.Close()
	log.Info("baksweep %s (%s) starting on %s", appVersion, appCommit, runlog.OSVersion())

	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stopSignals()

	if isatty.IsTerminal(os.Stdout.Fd()) {
		err = runInteractive(ctx, log)
	} else {
		_, err = runPlain(ctx, log)
	}
	if err != nil {
		log.Error("run failed: %s", err)
		return err
	}

	if path := log.Path(); path != "" {
		fmt.Printf("Log file: %s\n", path)
	}
	return nil
}

func runPlain(ctx context.Context, log *runlog.Logger) (sweep.Result, error) {
	r := &sweep.Runner{
		Log: log,
		Env: exclude.HostEnvironment(),
	}
	if yes {
		r.Confirmer = prompt.AutoConfirmer{}
	}
	return r.Run(ctx)
}

// runInteractive drives the full-screen TUI. If the terminal cannot
// host it, the run falls back to plain output instead of failing.
func runInteractive(ctx context.Context, log *runlog.Logger) error {
	vols, err := volume.Enumerate()
	if err != nil {
		log.Error("volume enumeration failed: %s", err)
		fmt.Printf("  %s could not enumerate volumes: %v\n", ui.IconWarning, err)
	}
	if len(vols) == 0 {
		log.Info("no writable volumes found, nothing to scan")
		fmt.Println("No writable volumes found. Nothing to scan.")
		return nil
	}

	model := sweep.NewModel(vols, exclude.HostEnvironment(), trash.New(), log, yes)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		log.Warn("interactive mode unavailable, using plain output: %s", err)
		_, err = runPlain(ctx, log)
		return err
	}

	m, ok := final.(sweep.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	printSummary(m.Result())
	return nil
}

// printSummary restates the outcome on the normal screen after the
// alternate-screen TUI has closed.
func printSummary(res sweep.Result) {
	switch {
	case res.Cancelled:
		fmt.Println("Cancelled. Nothing was moved.")
	case res.Declined:
		fmt.Println("Nothing was moved.")
	case res.Candidates == 0:
		fmt.Println("No backup files with matching originals were found.")
	case res.Failed > 0:
		fmt.Printf("Moved %d file(s) to the trash, %d failed.\n", res.Moved, res.Failed)
	default:
		fmt.Printf("Moved %d file(s) to the trash.\n", res.Moved)
	}
	if res.Warnings > 0 {
		fmt.Printf("%d unreadable directories were skipped; see the log for details.\n", res.Warnings)
	}
}
