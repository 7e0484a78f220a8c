package sweep

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/baksweep/internal/ui"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

// Short aliases for readability in render functions.
var (
	clrDim     = ui.ColorMuted
	clrText    = ui.ColorText
	clrHead    = ui.ColorCoral
	clrGood    = ui.ColorSuccess
	clrBad     = ui.ColorError
	clrCursor  = ui.ColorPrimary
	clrTextDim = ui.ColorTextDim
)

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	switch m.phase {
	case phaseScanning:
		s.WriteString(m.renderScanning(w))
	case phaseReview:
		s.WriteString(m.renderReview(w))
	case phaseMoving:
		s.WriteString(m.renderMoving(w))
	case phaseDone:
		s.WriteString(m.renderDone(w))
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(clrHead).
		Render("  " + ui.IconDiamond + " Backup Sweep")

	sub := fmt.Sprintf("  CAD backup files %s %d volume(s)", ui.IconBullet, len(m.vols))
	subtitle := lipgloss.NewStyle().
		Foreground(clrTextDim).
		Render(sub)

	inner := lipgloss.JoinVertical(lipgloss.Left, title, subtitle)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(clrHead).
		Width(w - 2).
		Render(inner)
}

// ─── Scanning ────────────────────────────────────────────────────────────────

func (m Model) renderScanning(w int) string {
	elapsed := time.Since(m.scanStart).Truncate(100 * time.Millisecond)

	status := fmt.Sprintf("  %s Scanning %s", m.spinner.View(), m.currentVolume)
	counts := lipgloss.NewStyle().Foreground(clrTextDim).Render(
		fmt.Sprintf("  visited %d %s found %d %s %s",
			m.visited, ui.IconBullet, len(m.candidates), ui.IconBullet, elapsed))

	dir := ""
	if m.currentDir != "" {
		dir = lipgloss.NewStyle().Foreground(clrDim).Render(
			"  " + ui.TruncatePath(m.currentDir, 60))
	}

	return lipgloss.JoinVertical(lipgloss.Left, status, counts, dir)
}

// ─── Review ──────────────────────────────────────────────────────────────────

func (m Model) renderReview(w int) string {
	head := lipgloss.NewStyle().Foreground(clrText).Bold(true).Render(
		fmt.Sprintf("  Found %d backup file(s) with live originals %s Total %s",
			len(m.candidates), ui.IconBullet, ui.FormatSize(m.totalSize)))

	vh := m.viewportHeight()
	maxPath := w - 24
	if maxPath < 20 {
		maxPath = 20
	}

	var lines []string
	lines = append(lines, head, "")
	for i := m.offset; i < len(m.candidates) && i < m.offset+vh; i++ {
		lines = append(lines, m.renderCandidate(i, maxPath, i == m.cursor))
	}

	if len(m.candidates) > vh {
		pct := float64(m.offset) / float64(len(m.candidates)-vh) * 100
		hint := lipgloss.NewStyle().Foreground(clrDim).Italic(true).Render(
			fmt.Sprintf("  ── %d/%d files  (%.0f%%) ──",
				min(m.offset+vh, len(m.candidates)), len(m.candidates), pct))
		lines = append(lines, hint)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderCandidate(i, maxPath int, selected bool) string {
	c := m.candidates[i]

	numStr := lipgloss.NewStyle().Foreground(clrDim).Render(fmt.Sprintf("%3d.", i+1))
	pathStr := lipgloss.NewStyle().Foreground(clrText).Render(ui.TruncatePath(c.Path, maxPath))
	sizeStr := lipgloss.NewStyle().Foreground(clrTextDim).Render(ui.FormatSize(c.Size))

	line := fmt.Sprintf("  %s %s  %s", numStr, pathStr, sizeStr)

	if selected {
		cursor := lipgloss.NewStyle().Foreground(clrCursor).Bold(true).Render(ui.IconBlock)
		original := lipgloss.NewStyle().Foreground(clrDim).Render(
			fmt.Sprintf("%s %s", ui.IconArrow, filepath.Base(c.Original)))
		line = " " + cursor + line[2:] + "  " + original
	}
	return line
}

// ─── Moving ──────────────────────────────────────────────────────────────────

func (m Model) renderMoving(w int) string {
	done := m.moveDone + m.moveFailed

	status := lipgloss.NewStyle().Foreground(clrText).Render(
		fmt.Sprintf("  Moving to trash %d/%d", done, len(m.candidates)))
	bar := "  " + m.bar.View()

	lines := []string{status, bar, ""}

	// Tail of recent outcomes.
	const tail = 5
	start := max(done-tail, 0)
	for i := start; i < len(m.items) && m.items[i].done; i++ {
		it := m.items[i]
		if it.err != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(clrBad).Render(
				fmt.Sprintf("  %s %s  %s", ui.IconCross, it.name, it.err)))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(clrGood).Render(
				fmt.Sprintf("  %s %s", ui.IconCheck, it.name)))
		}
	}

	return strings.Join(lines, "\n")
}

// ─── Done ────────────────────────────────────────────────────────────────────

func (m Model) renderDone(w int) string {
	var lines []string

	switch {
	case len(m.candidates) == 0:
		lines = append(lines, lipgloss.NewStyle().Foreground(clrGood).Render(
			"  "+ui.IconCheck+" No backup files with matching originals were found."))
	default:
		summary := fmt.Sprintf("  %s Moved %d file(s) to the trash", ui.IconCheck, m.moveDone)
		lines = append(lines, lipgloss.NewStyle().Foreground(clrGood).Bold(true).Render(summary))
		if m.moveFailed > 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(clrBad).Render(
				fmt.Sprintf("  %s %d file(s) could not be moved", ui.IconCross, m.moveFailed)))
		}
	}

	if m.warnings > 0 {
		lines = append(lines, "  "+ui.TagWarningStyle().Render(
			fmt.Sprintf(" %d unreadable director%s skipped ", m.warnings, plural(m.warnings, "y", "ies"))))
	}

	lines = append(lines, "", lipgloss.NewStyle().Foreground(clrDim).Italic(true).Render(
		"  press any key to exit"))

	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	var hints []string
	switch m.phase {
	case phaseScanning:
		hints = []string{"q cancel"}
	case phaseReview:
		hints = []string{"y move to trash", "n cancel", "↑↓ scroll"}
	case phaseMoving:
		hints = []string{"moving files, please wait"}
	case phaseDone:
		hints = []string{"any key exit"}
	}
	hintStr := strings.Join(hints, " "+ui.IconPipe+" ")
	return ui.HintBarStyle().Render("  " + hintStr)
}
