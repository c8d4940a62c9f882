package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/format"
)

// Plain renderers for the headless path (pipes, CI). Same data, no
// bubbletea program.

// WriteBookingsPlain writes the booking history as a text table.
func WriteBookingsPlain(w io.Writer, bookings []domain.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No bookings yet.")
		return
	}
	writeRow(w, []string{"DATE", "SERVICE", "CENTER", "VEHICLE", "STATUS", "PRICE"})
	for _, b := range bookings {
		writeRow(w, []string{
			b.DisplayDate, b.Service, b.ServiceCenterName,
			b.VehicleModel, b.DisplayStatus, b.DisplayPrice,
		})
	}
}

// WriteStaffPlain writes the staff directory as a text table.
func WriteStaffPlain(w io.Writer, members []domain.StaffMember) {
	if len(members) == 0 {
		fmt.Fprintln(w, "No staff records.")
		return
	}
	writeRow(w, []string{"NAME", "ROLE", "CENTER", "EMAIL", "HIRED"})
	for _, m := range members {
		writeRow(w, []string{
			m.FullName, m.Role, m.Center, m.Email, format.DisplayDate(m.HiredAt),
		})
	}
}

// WriteWorkLogPlain writes bookings grouped by status, the staff
// work-log layout. Statuses in order print first; any remaining groups
// (payment states, pass-through codes) follow in sorted order so no
// booking is dropped.
func WriteWorkLogPlain(w io.Writer, groups map[string][]domain.Booking, order []string) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No work log entries.")
		return
	}
	listed := make(map[string]bool, len(order))
	for _, status := range order {
		listed[status] = true
		if entries, ok := groups[status]; ok {
			writeWorkLogGroup(w, status, entries)
		}
	}
	var rest []string
	for status := range groups {
		if !listed[status] {
			rest = append(rest, status)
		}
	}
	sort.Strings(rest)
	for _, status := range rest {
		writeWorkLogGroup(w, status, groups[status])
	}
}

func writeWorkLogGroup(w io.Writer, status string, entries []domain.Booking) {
	fmt.Fprintf(w, "%s (%d)\n", status, len(entries))
	for _, b := range entries {
		fmt.Fprintf(w, "  %s  %-20s  %s\n", b.DisplayDate, b.Service, b.DisplayPrice)
	}
	fmt.Fprintln(w)
}

// WriteFinancePlain writes the finance summary as labeled lines.
func WriteFinancePlain(w io.Writer, sum domain.FinanceSummary, locale string) {
	money := func(amount float64) string {
		return format.Money(amount, sum.Currency, locale)
	}
	fmt.Fprintf(w, "Revenue: %s\n", money(sum.MonthRevenue))
	fmt.Fprintf(w, "Expense: %s\n", money(sum.MonthExpense))
	fmt.Fprintf(w, "Net:     %s\n", money(sum.Net()))

	fmt.Fprintln(w, "\nRevenue by service:")
	shares := sum.ServiceShares()
	for i, s := range sum.Services {
		fmt.Fprintf(w, "  %-20s %8s  %s\n", s.Service, money(s.Amount), format.Percent(shares[i]))
	}

	fmt.Fprintln(w, "\nPayment methods:")
	shares = sum.PaymentShares()
	for i, p := range sum.Payments {
		fmt.Fprintf(w, "  %-20s %8s  %s\n", p.Method, money(p.Amount), format.Percent(shares[i]))
	}
}

// writeRow writes one tab-separated row, flattening embedded newlines.
func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		cells[i] = strings.ReplaceAll(c, "\n", " ")
	}
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}
