package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether views run interactively or fall back
// to plain text output (pipes, CI, redirects).
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless
// mode from the TTY state of os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when views should print plain text instead of
// running a bubbletea program. ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force plain
// output, false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
