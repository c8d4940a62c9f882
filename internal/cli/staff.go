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

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Show the staff directory (manager/admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		l := loader.NewStaffLoader(deps.Client)

		if plainMode(cmd) {
			if err := api.Retry(cmd.Context(), api.DefaultRetryPolicy, func() error {
				return l.Load(cmd.Context())
			}); err != nil {
				return fmt.Errorf("%s", l.Snapshot().Err)
			}
			search, _ := cmd.Flags().GetString("search")
			ui.WriteStaffPlain(os.Stdout, l.Filter(search))
			return nil
		}

		_, err := tea.NewProgram(ui.NewStaffView(cmd.Context(), deps.Theme, l)).Run()
		return err
	},
}

func init() {
	staffCmd.Flags().String("search", "", "filter staff locally")
}
