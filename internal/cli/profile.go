package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/loader"
	"github.com/garagehub/garagectl/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		l := loader.NewProfileLoader(deps.Client, deps.Store, deps.Toast)

		if plainMode(cmd) {
			err := api.Retry(cmd.Context(), api.DefaultRetryPolicy, func() error {
				return l.Load(cmd.Context())
			})
			st := l.Snapshot()
			if st.Err != "" && !st.HasData {
				return fmt.Errorf("%s", st.Err)
			}
			if st.Err != "" {
				// Stale copy from the cache, flagged as such.
				deps.Toast.Warning(st.Err + " Showing last known profile.")
			}
			fmt.Print(ui.RenderProfile(deps.Theme, st.Data))
			return err
		}

		_, err := tea.NewProgram(ui.NewProfileView(cmd.Context(), deps.Theme, l)).Run()
		return err
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit and save profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if plainMode(cmd) {
			return fmt.Errorf("profile edit is interactive; run it in a terminal")
		}

		l := loader.NewProfileLoader(deps.Client, deps.Store, deps.Toast)
		if err := l.Load(cmd.Context()); err != nil {
			st := l.Snapshot()
			if !st.HasData {
				return fmt.Errorf("%s", st.Err)
			}
			// Editing the cached copy is allowed; the save will hit the
			// backend anyway.
			deps.Toast.Warning(st.Err + " Editing last known profile.")
		}

		edited, err := ui.RunProfileForm(l.Snapshot().Data)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		// Save notifies on success and on failure.
		return l.Save(cmd.Context(), edited)
	},
}

func init() {
	profileCmd.AddCommand(profileEditCmd)
}
