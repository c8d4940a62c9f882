// Package cli wires the command tree. Commands build their loaders from
// the shared dependencies and hand rendering to internal/ui.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "garagectl",
	Short: "garagectl: terminal client for the AutoCare service platform",
	Long: `garagectl is the terminal client for the AutoCare vehicle-maintenance
platform: profile management, booking history, staff directory and the
finance dashboard, straight from your shell.

All data lives on the platform backend; garagectl fetches, renders and
edits it. Sign in once with "garagectl login" and the session is kept
under ~/.garagectl.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	if err := InitDependencies(); err != nil {
		return err
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("garagectl %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().Bool("plain", false, "force plain output (no TUI)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(staffCmd)
	rootCmd.AddCommand(financeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("garagectl %s\n", version.GetFullVersion())
	},
}
