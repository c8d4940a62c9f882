package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/format"
)

// FinanceReportMarkdown builds the monthly finance report as markdown.
func FinanceReportMarkdown(sum domain.FinanceSummary, locale string, now time.Time) string {
	money := func(amount float64) string {
		return format.Money(amount, sum.Currency, locale)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Finance report: %s\n\n", now.Format("January 2006"))
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Revenue | %s |\n", money(sum.MonthRevenue))
	fmt.Fprintf(&b, "| Expense | %s |\n", money(sum.MonthExpense))
	fmt.Fprintf(&b, "| Net | %s |\n\n", money(sum.Net()))

	b.WriteString("## Revenue by service\n\n")
	if len(sum.Services) == 0 {
		b.WriteString("_No service revenue this month._\n\n")
	} else {
		b.WriteString("| Service | Amount | Share |\n|---|---|---|\n")
		shares := sum.ServiceShares()
		for i, s := range sum.Services {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Service, money(s.Amount), format.Percent(shares[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Payment methods\n\n")
	if len(sum.Payments) == 0 {
		b.WriteString("_No payments this month._\n")
	} else {
		b.WriteString("| Method | Amount | Share |\n|---|---|---|\n")
		shares := sum.PaymentShares()
		for i, p := range sum.Payments {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", p.Method, money(p.Amount), format.Percent(shares[i]))
		}
	}

	return b.String()
}

// RenderFinanceReport renders the markdown report for the terminal.
// When styling fails, or noColor is set, the raw markdown is returned
// as-is; it is readable on its own.
func RenderFinanceReport(markdown string, noColor bool) string {
	if noColor {
		return markdown
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
