// Package ui renders the loader snapshots in the terminal: bubbletea
// views with exactly three branches (loading / error / populated),
// tables with live search, the finance dashboard, and the profile and
// password forms. No code here performs network I/O; everything async
// is delegated to a loader.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles shared by every view.
type Theme struct {
	NoColor bool

	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Err    lipgloss.Style
	Hint   lipgloss.Style
	Empty  lipgloss.Style

	BarStart string
	BarEnd   string
}

// NewTheme creates the default theme. With noColor every style is a
// no-op passthrough.
func NewTheme(noColor bool) *Theme {
	t := &Theme{NoColor: noColor, BarStart: "#3B82F6", BarEnd: "#22C55E"}
	if noColor {
		return t
	}
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	t.Header = lipgloss.NewStyle().Bold(true)
	t.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	t.Value = lipgloss.NewStyle()
	t.Err = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	t.Hint = lipgloss.NewStyle().Faint(true)
	t.Empty = lipgloss.NewStyle().Faint(true).Italic(true)
	return t
}
