package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/session"
	"github.com/garagehub/garagectl/internal/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if plainMode(cmd) {
				return fmt.Errorf("plain mode needs --email and --password")
			}
			var err error
			email, password, err = ui.RunLoginForm()
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
		}

		result, err := deps.Client.Login(cmd.Context(), email, password)
		if err != nil {
			deps.Toast.Error("Sign-in failed. Check your email and password.")
			return err
		}

		profile := domain.NormalizeProfile(result.User)
		if err := deps.Store.Save(&session.Snapshot{Profile: profile, Token: result.Token}); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		name := profile.FullName
		if name == "" {
			name = email
		}
		deps.Toast.Success("Signed in as " + name + ".")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.Store.Clear(); err != nil {
			return err
		}
		deps.Toast.Info("Signed out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
}
