package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormatSize renders a byte count with binary units ("1.5 MB", "823 B").
func FormatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(size)
	for _, unit := range units {
		value /= 1024
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
	}
	return fmt.Sprintf("%.1f %s", value, units[len(units)-1])
}

// TruncatePath shortens a path to at most max runes by keeping the tail,
// which is the informative end of a deep directory path.
func TruncatePath(path string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(path)
	if len(runes) <= max {
		return path
	}
	return "..." + string(runes[len(runes)-(max-3):])
}

// GradientBar renders a fixed-width usage bar whose fill color shifts from
// green through yellow to red as pct approaches 100.
func GradientBar(pct float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	color := ColorSuccess
	switch {
	case pct >= 90:
		color = ColorError
	case pct >= 70:
		color = ColorWarning
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("░", width-filled))
	return bar + rest
}
