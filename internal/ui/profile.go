package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/format"
	"github.com/garagehub/garagectl/internal/loader"
)

// ProfileView shows the current user's profile. The cached profile (if
// any) renders immediately while the one-shot load refreshes it; a
// failed refresh keeps the stale copy visible under the error.
type ProfileView struct {
	theme  *Theme
	loader *loader.ProfileLoader
	ctx    context.Context

	spin     spinner.Model
	state    loader.State[domain.Profile]
	fetching bool
}

// NewProfileView creates the profile view.
func NewProfileView(ctx context.Context, theme *Theme, l *loader.ProfileLoader) *ProfileView {
	return &ProfileView{
		theme:    theme,
		loader:   l,
		ctx:      ctx,
		spin:     newViewSpinner(theme),
		state:    l.Snapshot(),
		fetching: true,
	}
}

// Init starts the spinner and the one-shot load.
func (v *ProfileView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, fetchCmd(v.ctx, v.loader.Load))
}

// Update handles fetch completion and the retry/quit keys.
func (v *ProfileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		v.fetching = false
		v.state = v.loader.Snapshot()
		return v, nil

	case spinner.TickMsg:
		if !v.fetching {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "r":
			if v.state.Err != "" && v.state.Retryable && !v.fetching {
				v.fetching = true
				return v, tea.Batch(v.spin.Tick, fetchCmd(v.ctx, v.loader.Retry))
			}
		}
	}
	return v, nil
}

// View renders one of the three branches.
func (v *ProfileView) View() string {
	out := v.theme.Title.Render("Profile") + "\n\n"

	if v.fetching && !v.state.HasData {
		return out + renderLoading(v.theme, v.spin, "profile")
	}

	if v.state.Err != "" {
		out += renderError(v.theme, v.state.Err, v.state.Retryable, v.state.SessionExpired)
		if !v.state.HasData {
			return out
		}
		out += "\n"
	}

	out += RenderProfile(v.theme, v.state.Data)
	out += "\n" + v.theme.Hint.Render("q quit · `garagectl profile edit` to edit") + "\n"
	return out
}

// RenderProfile renders a profile record as labeled lines. Shared with
// the headless path.
func RenderProfile(theme *Theme, p domain.Profile) string {
	line := func(label, value string) string {
		if value == "" {
			value = format.Placeholder
		}
		return theme.Label.Render(pad(label, 10)) + theme.Value.Render(value) + "\n"
	}
	out := line("Name", p.FullName)
	out += line("Email", p.Email)
	out += line("Phone", p.Phone)
	out += line("Address", p.Address)
	out += line("Role", p.Role)
	for _, veh := range p.Vehicles {
		desc := veh.Model
		if veh.Plate != "" {
			desc += " (" + veh.Plate + ")"
		}
		out += line("Vehicle", desc)
	}
	return out
}
