package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/loader"
)

// RunProfileForm collects profile edits interactively, prefilled from
// the current record. Returns the edited record; huh.ErrUserAborted
// when the user backs out.
func RunProfileForm(current domain.Profile) (domain.Profile, error) {
	edited := current

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&edited.FullName),
			huh.NewInput().
				Title("Email").
				Value(&edited.Email),
			huh.NewInput().
				Title("Phone").
				Value(&edited.Phone),
			huh.NewInput().
				Title("Address").
				Value(&edited.Address),
		),
	)

	if err := form.Run(); err != nil {
		return current, err
	}
	return edited, nil
}

// RunPasswordForm collects a password change. Validation happens in the
// loader, not here, so the headless path enforces the same rules.
func RunPasswordForm() (loader.PasswordForm, error) {
	var form loader.PasswordForm

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current password").
				EchoMode(huh.EchoModePassword).
				Value(&form.Current),
			huh.NewInput().
				Title("New password").
				EchoMode(huh.EchoModePassword).
				Value(&form.New),
			huh.NewInput().
				Title("Confirm new password").
				EchoMode(huh.EchoModePassword).
				Value(&form.Confirm),
		),
	)

	if err := f.Run(); err != nil {
		return loader.PasswordForm{}, err
	}
	return form, nil
}

// RunLoginForm collects sign-in credentials.
func RunLoginForm() (email, password string, err error) {
	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	)
	if err := f.Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}
