package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/loader"
)

// BookingsView is the booking-history table: loading spinner, error
// block with retry, or a searchable table. Search re-filters locally
// and never triggers a fetch.
type BookingsView struct {
	theme  *Theme
	loader *loader.BookingsLoader
	ctx    context.Context

	spin      spinner.Model
	search    textinput.Model
	table     table.Model
	state     loader.State[[]domain.Booking]
	fetching  bool
	searching bool
}

// NewBookingsView creates the booking-history view.
func NewBookingsView(ctx context.Context, theme *Theme, l *loader.BookingsLoader) *BookingsView {
	search := textinput.New()
	search.Placeholder = "search bookings"
	search.CharLimit = 64

	cols := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Service", Width: 20},
		{Title: "Center", Width: 18},
		{Title: "Vehicle", Width: 16},
		{Title: "Status", Width: 12},
		{Title: "Price", Width: 12},
	}
	tbl := table.New(table.WithColumns(cols), table.WithFocused(true), table.WithHeight(12))

	return &BookingsView{
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
func (v *BookingsView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, fetchCmd(v.ctx, v.loader.Load))
}

// Update handles fetch completion, search input and table navigation.
func (v *BookingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (v *BookingsView) refill() {
	filtered := v.loader.Filter(v.search.Value())
	rows := make([]table.Row, 0, len(filtered))
	for _, b := range filtered {
		rows = append(rows, table.Row{
			b.DisplayDate, b.Service, b.ServiceCenterName,
			b.VehicleModel, b.DisplayStatus, b.DisplayPrice,
		})
	}
	v.table.SetRows(rows)
}

// View renders one of the three branches.
func (v *BookingsView) View() string {
	out := v.theme.Title.Render("Booking history") + "\n\n"

	if v.fetching && !v.state.HasData {
		return out + renderLoading(v.theme, v.spin, "bookings")
	}

	if v.state.Err != "" {
		out += renderError(v.theme, v.state.Err, v.state.Retryable, v.state.SessionExpired)
		if !v.state.HasData {
			return out
		}
		// Stale data stays visible below the error.
		out += "\n"
	}

	if len(v.state.Data) == 0 {
		return out + v.theme.Empty.Render("No bookings yet.") + "\n"
	}

	out += v.search.View() + "\n"
	out += v.table.View() + "\n"
	out += v.theme.Hint.Render(fmt.Sprintf("%d of %d bookings · / search · q quit", len(v.table.Rows()), len(v.state.Data))) + "\n"
	return out
}
