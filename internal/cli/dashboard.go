package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/loader"
	"github.com/garagehub/garagectl/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard for your role",
	Long: `Shows the role-specific dashboard: managers and admins get the
finance summary and staff headcount, staff get their work log grouped
by status, customers get their recent bookings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		ctx := cmd.Context()

		profile := loader.NewProfileLoader(deps.Client, deps.Store, deps.Toast)
		if err := api.Retry(ctx, api.DefaultRetryPolicy, func() error {
			return profile.Load(ctx)
		}); err != nil && !profile.Snapshot().HasData {
			return fmt.Errorf("%s", profile.Snapshot().Err)
		}
		me := profile.Snapshot().Data

		fmt.Printf("Signed in as %s (%s)\n\n", me.FullName, strings.ToLower(me.Role))

		switch strings.ToLower(me.Role) {
		case "admin", "manager":
			return managerDashboard(cmd)
		case "staff", "technician":
			return staffDashboard(cmd)
		default:
			return customerDashboard(cmd)
		}
	},
}

// managerDashboard prints the finance summary plus the staff headcount.
func managerDashboard(cmd *cobra.Command) error {
	ctx := cmd.Context()

	finance := loader.NewFinanceLoader(deps.Client, deps.Config.Currency)
	if err := api.Retry(ctx, api.DefaultRetryPolicy, func() error {
		return finance.Load(ctx)
	}); err != nil {
		return fmt.Errorf("%s", finance.Snapshot().Err)
	}
	ui.WriteFinancePlain(os.Stdout, finance.Snapshot().Data, deps.Config.Locale)

	staff := loader.NewStaffLoader(deps.Client)
	if err := api.Retry(ctx, api.DefaultRetryPolicy, func() error {
		return staff.Load(ctx)
	}); err != nil {
		// Finance already rendered; the staff slice is additive.
		deps.Toast.Warning(staff.Snapshot().Err)
		return nil
	}
	active := 0
	for _, m := range staff.Snapshot().Data {
		if m.Active {
			active++
		}
	}
	fmt.Printf("\nStaff: %d (%d active)\n", len(staff.Snapshot().Data), active)
	return nil
}

// staffDashboard prints the work log grouped by status.
func staffDashboard(cmd *cobra.Command) error {
	ctx := cmd.Context()
	bookings := loader.NewBookingsLoader(deps.Client, deps.Config.Locale, deps.Config.Currency)
	if err := api.Retry(ctx, api.DefaultRetryPolicy, func() error {
		return bookings.Load(ctx)
	}); err != nil {
		return fmt.Errorf("%s", bookings.Snapshot().Err)
	}
	ui.WriteWorkLogPlain(os.Stdout, bookings.GroupByStatus(), workLogOrder)
	return nil
}

// customerDashboard prints the five most recent bookings.
func customerDashboard(cmd *cobra.Command) error {
	ctx := cmd.Context()
	bookings := loader.NewBookingsLoader(deps.Client, deps.Config.Locale, deps.Config.Currency)
	if err := api.Retry(ctx, api.DefaultRetryPolicy, func() error {
		return bookings.Load(ctx)
	}); err != nil {
		return fmt.Errorf("%s", bookings.Snapshot().Err)
	}
	recent := bookings.Snapshot().Data
	if len(recent) > 5 {
		recent = recent[:5]
	}
	ui.WriteBookingsPlain(os.Stdout, recent)
	return nil
}
