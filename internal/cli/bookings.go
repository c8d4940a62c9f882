package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/loader"
	"github.com/garagehub/garagectl/internal/ui"
)

// workLogOrder fixes the group order for the by-status work log.
var workLogOrder = []string{"In progress", "Scheduled", "Confirmed", "Pending", "Completed", "Cancelled", "No-show"}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Show the booking history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		l := loader.NewBookingsLoader(deps.Client, deps.Config.Locale, deps.Config.Currency)

		if plainMode(cmd) {
			if err := api.Retry(cmd.Context(), api.DefaultRetryPolicy, func() error {
				return l.Load(cmd.Context())
			}); err != nil {
				return fmt.Errorf("%s", l.Snapshot().Err)
			}
			if byStatus, _ := cmd.Flags().GetBool("by-status"); byStatus {
				ui.WriteWorkLogPlain(os.Stdout, l.GroupByStatus(), workLogOrder)
				return nil
			}
			search, _ := cmd.Flags().GetString("search")
			ui.WriteBookingsPlain(os.Stdout, l.Filter(search))
			return nil
		}

		_, err := tea.NewProgram(ui.NewBookingsView(cmd.Context(), deps.Theme, l)).Run()
		return err
	},
}

func init() {
	bookingsCmd.Flags().String("search", "", "filter bookings locally")
	bookingsCmd.Flags().Bool("by-status", false, "group bookings by status (work log layout)")
}
