package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/loader"
	"github.com/garagehub/garagectl/internal/ui"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if plainMode(cmd) {
			return fmt.Errorf("passwd is interactive; run it in a terminal")
		}

		form, err := ui.RunPasswordForm()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		changer := loader.NewPasswordChanger(deps.Client, deps.Toast)
		changer.SetForm(form)

		// Submit notifies on every outcome; validation failures never
		// reach the network.
		return changer.Submit(cmd.Context())
	},
}
