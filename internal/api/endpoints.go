package api

import (
	"context"
	"net/http"

	"github.com/garagehub/garagectl/internal/domain"
)

// LoginResult is the payload of a successful sign-in.
type LoginResult struct {
	Token string
	User  map[string]any
}

// Login exchanges credentials for a session token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &resp); err != nil {
		return nil, err
	}
	return &LoginResult{Token: resp.Token, User: resp.User}, nil
}

// Profile fetches the current user's profile. The raw map is returned
// so normalization stays in one place (domain.NormalizeProfile).
func (c *Client) Profile(ctx context.Context) (map[string]any, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UpdateProfile submits edited profile fields and returns the server's
// updated record.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) (map[string]any, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodPut, "/api/profile", fields, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ChangePassword submits a password change for the current user.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	payload := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{CurrentPassword: current, NewPassword: next}
	return c.do(ctx, http.MethodPut, "/api/profile/password", payload, nil)
}

// Appointments lists the current user's appointments, raw.
func (c *Client) Appointments(ctx context.Context) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Staff lists the staff directory, raw. Requires a manager or admin
// session; the backend answers 403 otherwise.
func (c *Client) Staff(ctx context.Context) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/staff", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// MonthRevenue returns the current-month revenue total. The endpoint
// answers either a bare number or {"amount": n} depending on version.
func (c *Client) MonthRevenue(ctx context.Context) (float64, error) {
	var raw any
	if err := c.do(ctx, http.MethodGet, "/api/finance/revenue/month", nil, &raw); err != nil {
		return 0, err
	}
	return domain.AmountOf(raw), nil
}

// MonthExpense returns the current-month expense total.
func (c *Client) MonthExpense(ctx context.Context) (float64, error) {
	var raw any
	if err := c.do(ctx, http.MethodGet, "/api/finance/expense/month", nil, &raw); err != nil {
		return 0, err
	}
	return domain.AmountOf(raw), nil
}

// RevenueByService lists current-month revenue split by service type.
func (c *Client) RevenueByService(ctx context.Context) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/finance/revenue/services", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// PaymentMethods lists the current-month payment-method breakdown.
func (c *Client) PaymentMethods(ctx context.Context) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, http.MethodGet, "/api/finance/payments", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
