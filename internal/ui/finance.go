package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/format"
	"github.com/garagehub/garagectl/internal/loader"
)

// FinanceView is the current-month finance dashboard: revenue, expense
// and net, plus percentage bars for revenue-by-service and payment
// methods.
type FinanceView struct {
	theme  *Theme
	loader *loader.FinanceLoader
	ctx    context.Context
	locale string

	spin     spinner.Model
	bar      progress.Model
	state    loader.State[domain.FinanceSummary]
	fetching bool
}

// NewFinanceView creates the finance dashboard view.
func NewFinanceView(ctx context.Context, theme *Theme, l *loader.FinanceLoader, locale string) *FinanceView {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	if !theme.NoColor {
		bar = progress.New(progress.WithGradient(theme.BarStart, theme.BarEnd), progress.WithWidth(30))
	}
	return &FinanceView{
		theme:    theme,
		loader:   l,
		ctx:      ctx,
		locale:   locale,
		spin:     newViewSpinner(theme),
		bar:      bar,
		fetching: true,
	}
}

// Init starts the spinner and the initial fetch.
func (v *FinanceView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, fetchCmd(v.ctx, v.loader.Load))
}

// Update handles fetch completion and the retry/quit keys.
func (v *FinanceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (v *FinanceView) View() string {
	out := v.theme.Title.Render("Finance (current month)") + "\n\n"

	if v.fetching && !v.state.HasData {
		return out + renderLoading(v.theme, v.spin, "finance")
	}

	if v.state.Err != "" {
		out += renderError(v.theme, v.state.Err, v.state.Retryable, v.state.SessionExpired)
		if !v.state.HasData {
			return out
		}
		out += "\n"
	}

	sum := v.state.Data
	money := func(amount float64) string {
		return format.Money(amount, sum.Currency, v.locale)
	}

	out += v.theme.Label.Render("Revenue ") + v.theme.Value.Render(money(sum.MonthRevenue)) + "\n"
	out += v.theme.Label.Render("Expense ") + v.theme.Value.Render(money(sum.MonthExpense)) + "\n"
	out += v.theme.Label.Render("Net     ") + v.theme.Value.Render(money(sum.Net())) + "\n"

	out += "\n" + v.theme.Header.Render("Revenue by service") + "\n"
	if len(sum.Services) == 0 {
		out += v.theme.Empty.Render("No service revenue this month.") + "\n"
	} else {
		shares := sum.ServiceShares()
		for i, s := range sum.Services {
			out += v.renderBarRow(s.Service, shares[i], money(s.Amount))
		}
	}

	out += "\n" + v.theme.Header.Render("Payment methods") + "\n"
	if len(sum.Payments) == 0 {
		out += v.theme.Empty.Render("No payments this month.") + "\n"
	} else {
		shares := sum.PaymentShares()
		for i, p := range sum.Payments {
			out += v.renderBarRow(p.Method, shares[i], money(p.Amount))
		}
	}

	out += "\n" + v.theme.Hint.Render("q quit") + "\n"
	return out
}

// renderBarRow renders one labeled percentage bar line.
func (v *FinanceView) renderBarRow(label string, share float64, amount string) string {
	name := label
	if name == "" {
		name = format.Placeholder
	}
	return v.theme.Label.Render(pad(name, 16)) + " " +
		v.bar.ViewAs(share) + " " +
		v.theme.Value.Render(format.Percent(share)+" · "+amount) + "\n"
}

// pad right-pads or truncates a label to the given width.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}
