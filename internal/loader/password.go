package loader

import (
	"context"
	"sync"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/notify"
)

// MinPasswordLength is the shortest password the backend accepts; the
// client enforces it before submitting.
const MinPasswordLength = 6

// PasswordAPI is the slice of the API client the password change needs.
type PasswordAPI interface {
	ChangePassword(ctx context.Context, current, next string) error
}

// PasswordForm is the transient form state for a password change. It
// exists only until a successful submission, which resets it.
type PasswordForm struct {
	Current string
	New     string
	Confirm string
}

// PasswordChanger validates and submits password changes.
type PasswordChanger struct {
	mu     sync.Mutex
	form   PasswordForm
	client PasswordAPI
	toast  notify.Notifier
}

// NewPasswordChanger creates a PasswordChanger.
func NewPasswordChanger(client PasswordAPI, toast notify.Notifier) *PasswordChanger {
	return &PasswordChanger{client: client, toast: toast}
}

// SetForm replaces the form state.
func (c *PasswordChanger) SetForm(form PasswordForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
}

// Form returns the current form state.
func (c *PasswordChanger) Form() PasswordForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Submit validates the form and submits the change. Validation failures
// are surfaced and returned without any network call. A successful
// submission resets the form to empty; a server failure keeps it so the
// user can correct and resubmit.
func (c *PasswordChanger) Submit(ctx context.Context) error {
	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	if msg := validatePasswordForm(form); msg != "" {
		c.toast.Error(msg)
		return &ValidationError{Message: msg}
	}

	if err := c.client.ChangePassword(ctx, form.Current, form.New); err != nil {
		c.toast.Error(api.Classify(err).Message)
		return err
	}

	c.mu.Lock()
	c.form = PasswordForm{}
	c.mu.Unlock()

	c.toast.Success("Password changed.")
	return nil
}

// validatePasswordForm returns the first validation failure, or "".
func validatePasswordForm(form PasswordForm) string {
	if len(form.New) < MinPasswordLength {
		return MsgPasswordTooShort
	}
	if form.New != form.Confirm {
		return MsgPasswordMismatch
	}
	if form.Current == "" {
		return MsgCurrentRequired
	}
	return ""
}
