package loader

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/notify"
)

// fakePasswordAPI implements PasswordAPI with call counting.
type fakePasswordAPI struct {
	calls atomic.Int32
	err   error
}

func (f *fakePasswordAPI) ChangePassword(ctx context.Context, current, next string) error {
	f.calls.Add(1)
	return f.err
}

func TestPasswordTooShortRejectedLocally(t *testing.T) {
	t.Parallel()

	client := &fakePasswordAPI{}
	toast := notify.NewRecorder()
	c := NewPasswordChanger(client, toast)
	c.SetForm(PasswordForm{Current: "old-pass", New: "abc", Confirm: "abc"})

	err := c.Submit(context.Background())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgPasswordTooShort, vErr.Message)
	assert.Equal(t, int32(0), client.calls.Load(), "no network call on validation failure")
	assert.Equal(t, []string{MsgPasswordTooShort}, toast.BySeverity("error"))
}

func TestPasswordMismatchRejectedLocally(t *testing.T) {
	t.Parallel()

	client := &fakePasswordAPI{}
	toast := notify.NewRecorder()
	c := NewPasswordChanger(client, toast)
	c.SetForm(PasswordForm{Current: "old-pass", New: "abcdef", Confirm: "abcdeg"})

	err := c.Submit(context.Background())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgPasswordMismatch, vErr.Message)
	assert.Equal(t, int32(0), client.calls.Load(), "no network call on validation failure")
}

func TestPasswordSubmitSuccessResetsForm(t *testing.T) {
	t.Parallel()

	client := &fakePasswordAPI{}
	toast := notify.NewRecorder()
	c := NewPasswordChanger(client, toast)
	c.SetForm(PasswordForm{Current: "old-pass", New: "abcdef", Confirm: "abcdef"})

	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, int32(1), client.calls.Load())
	assert.Equal(t, PasswordForm{}, c.Form(), "form resets after success")
	assert.Equal(t, []string{"Password changed."}, toast.BySeverity("success"))
}

func TestPasswordSubmitServerFailureKeepsForm(t *testing.T) {
	t.Parallel()

	client := &fakePasswordAPI{err: &api.APIError{Status: 400, Message: "current password incorrect"}}
	toast := notify.NewRecorder()
	c := NewPasswordChanger(client, toast)
	form := PasswordForm{Current: "wrong", New: "abcdef", Confirm: "abcdef"}
	c.SetForm(form)

	require.Error(t, c.Submit(context.Background()))

	assert.Equal(t, form, c.Form(), "form survives a server failure for correction")
	assert.Equal(t, []string{"current password incorrect"}, toast.BySeverity("error"))
}
