package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

// Adaptive colors render sensibly on both light and dark terminals.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}
	ColorCoral   = lipgloss.AdaptiveColor{Light: "#e11d48", Dark: "#fb7185"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

// Plain Unicode shapes, no emoji. These render in every Windows console font.
const (
	IconDiamond = "◆"
	IconChevron = "›"
	IconBullet  = "·"
	IconBlock   = "▐"
	IconArrow   = "→"
	IconCheck   = "✓"
	IconCross   = "✗"
	IconWarning = "!"
	IconPipe    = "│"
)

// ─── Shared styles ───────────────────────────────────────────────────────────

// TagWarningStyle renders a small inverted warning badge.
func TagWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1f2937"}).
		Background(ColorWarning).
		Bold(true)
}

// HintBarStyle renders the muted keybinding hint bar at the bottom of a view.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorMuted)
}
