package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fetchResultMsg reports that a loader call finished. The views read
// the loader snapshot rather than the error itself, so a stale result
// can never paint over newer state.
type fetchResultMsg struct {
	err error
}

// fetchCmd runs one loader call off the UI loop.
func fetchCmd(ctx context.Context, run func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return fetchResultMsg{err: run(ctx)}
	}
}

// newViewSpinner creates the loading spinner all views share.
func newViewSpinner(theme *Theme) spinner.Model {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	}
	return s
}

// renderLoading renders the loading branch.
func renderLoading(theme *Theme, s spinner.Model, title string) string {
	return s.View() + " " + theme.Hint.Render("Loading "+title+"…") + "\n"
}

// renderError renders the error branch: the classified message plus a
// retry hint only for retryable categories. Session expiry tells the
// user to sign in again instead.
func renderError(theme *Theme, errMsg string, retryable, sessionExpired bool) string {
	out := theme.Err.Render("✗ "+errMsg) + "\n"
	switch {
	case sessionExpired:
		out += theme.Hint.Render("Run `garagectl login` to sign in again.") + "\n"
	case retryable:
		out += theme.Hint.Render("Press r to retry, q to quit.") + "\n"
	default:
		out += theme.Hint.Render("Press q to quit.") + "\n"
	}
	return out
}
