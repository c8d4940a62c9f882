package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/format"
	"github.com/garagehub/garagectl/internal/loader"
)

// StaffView is the staff directory table with local search.
type StaffView struct {
	theme  *Theme
	loader *loader.StaffLoader
	ctx    context.Context

	spin      spinner.Model
	search    textinput.Model
	table     table.Model
	state     loader.State[[]domain.StaffMember]
	fetching  bool
	searching bool
}

// NewStaffView creates the staff directory view.
func NewStaffView(ctx context.Context, theme *Theme, l *loader.StaffLoader) *StaffView {
	search := textinput.New()
	search.Placeholder = "search staff"
	search.CharLimit = 64

	cols := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Role", Width: 14},
		{Title: "Center", Width: 18},
		{Title: "Email", Width: 24},
		{Title: "Hired", Width: 14},
	}
	tbl := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(12))

	return &StaffView{
		theme:    theme,
		loader:   l,
		ctx:      ctx,
		spin:     newViewSpinner(theme),
		search:   search,
		table:    tbl,
		fetching: true,
	}
}

// Init starts the spinner and the initial fetch.
func (v *StaffView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, fetchCmd(v.ctx, v.loader.Load))
}

// Update handles fetch completion, search input and table navigation.
func (v *StaffView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		v.fetching = false
		v.state = v.loader.Snapshot()
		v.refill()
		return v, nil

	case spinner.TickMsg:
		if !v.fetching {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.searching {
			switch msg.String() {
			case "esc", "enter":
				v.searching = false
				v.search.Blur()
				return v, nil
			default:
				var cmd tea.Cmd
				v.search, cmd = v.search.Update(msg)
				v.refill()
				return v, cmd
			}
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return v, tea.Quit
		case "/":
			v.searching = true
			v.search.Focus()
			return v, textinput.Blink
		case "r":
			if v.state.Err != "" && v.state.Retryable && !v.fetching {
				v.fetching = true
				return v, tea.Batch(v.spin.Tick, fetchCmd(v.ctx, v.loader.Retry))
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// refill rebuilds the table rows from the current filter.
func (v *StaffView) refill() {
	filtered := v.loader.Filter(v.search.Value())
	rows := make([]table.Row, 0, len(filtered))
	for _, m := range filtered {
		rows = append(rows, table.Row{
			m.FullName, m.Role, m.Center, m.Email, format.DisplayDate(m.HiredAt),
		})
	}
	v.table.SetRows(rows)
}

// View renders one of the three branches.
func (v *StaffView) View() string {
	out := v.theme.Title.Render("Staff directory") + "\n\n"

	if v.fetching && !v.state.HasData {
		return out + renderLoading(v.theme, v.spin, "staff")
	}

	if v.state.Err != "" {
		out += renderError(v.theme, v.state.Err, v.state.Retryable, v.state.SessionExpired)
		if !v.state.HasData {
			return out
		}
		out += "\n"
	}

	if len(v.state.Data) == 0 {
		return out + v.theme.Empty.Render("No staff records.") + "\n"
	}

	out += v.search.View() + "\n"
	out += v.table.View() + "\n"
	out += v.theme.Hint.Render(fmt.Sprintf("%d of %d staff · / search · q quit", len(v.table.Rows()), len(v.state.Data))) + "\n"
	return out
}
