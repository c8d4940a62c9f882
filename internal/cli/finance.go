package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/loader"
	"github.com/garagehub/garagectl/internal/ui"
)

var financeCmd = &cobra.Command{
	Use:   "finance",
	Short: "Show the current-month finance dashboard (manager/admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		l := loader.NewFinanceLoader(deps.Client, deps.Config.Currency)
		report, _ := cmd.Flags().GetBool("report")

		if report || plainMode(cmd) {
			if err := api.Retry(cmd.Context(), api.DefaultRetryPolicy, func() error {
				return l.Load(cmd.Context())
			}); err != nil {
				return fmt.Errorf("%s", l.Snapshot().Err)
			}
			sum := l.Snapshot().Data
			if report {
				md := ui.FinanceReportMarkdown(sum, deps.Config.Locale, time.Now())
				fmt.Print(ui.RenderFinanceReport(md, deps.Config.NoColor || plainMode(cmd)))
				return nil
			}
			ui.WriteFinancePlain(os.Stdout, sum, deps.Config.Locale)
			return nil
		}

		_, err := tea.NewProgram(ui.NewFinanceView(cmd.Context(), deps.Theme, l, deps.Config.Locale)).Run()
		return err
	},
}

func init() {
	financeCmd.Flags().Bool("report", false, "print the monthly report instead of the dashboard")
}
