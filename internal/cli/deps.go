package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/config"
	"github.com/garagehub/garagectl/internal/notify"
	"github.com/garagehub/garagectl/internal/session"
	"github.com/garagehub/garagectl/internal/ui"
)

// Dependencies holds everything the commands share.
type Dependencies struct {
	Config   *config.Config
	Store    session.Repository
	Client   *api.Client
	Toast    notify.Notifier
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
}

var deps *Dependencies

// InitDependencies builds the shared dependency set: config, session
// store, API client (with its token sourced live from the store) and
// the UI plumbing.
func InitDependencies() error {
	configDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg := config.Load(configDir)

	store, err := session.NewFileStore(configDir)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout(), func() string {
		snap, err := store.Current()
		if err != nil {
			return ""
		}
		return snap.Token
	})

	deps = &Dependencies{
		Config:   cfg,
		Store:    store,
		Client:   client,
		Toast:    notify.NewTerminal(cfg.NoColor),
		Theme:    ui.NewTheme(cfg.NoColor),
		Headless: ui.NewHeadlessManager(),
	}
	return nil
}

// plainMode reports whether the command should print plain text instead
// of running a TUI. The --plain flag overrides TTY detection.
func plainMode(cmd *cobra.Command) bool {
	if forced, err := cmd.Flags().GetBool("plain"); err == nil && forced {
		deps.Headless.ForceHeadless(true)
	}
	return deps.Headless.IsHeadless()
}

// requireSession checks that a user is signed in and the token has not
// already expired. The expiry preflight avoids a doomed round trip; the
// backend still has the final say.
func requireSession() error {
	snap, err := deps.Store.Current()
	if err != nil {
		return fmt.Errorf("not signed in: run `garagectl login` first")
	}
	if session.TokenExpired(snap.Token, time.Now()) {
		slog.Debug("session token past exp claim", "saved_at", snap.SavedAt)
		deps.Toast.Warning(api.MsgSessionExpired)
		return fmt.Errorf("session expired: run `garagectl login` to sign in again")
	}
	return nil
}
