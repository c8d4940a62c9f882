package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request unless the config overrides it.
const DefaultTimeout = 15 * time.Second

// UserAgent identifies this client to the backend.
const UserAgent = "garagectl"

// TokenSource supplies the current bearer token, or "" when signed out.
type TokenSource func() string

// Client talks to the AutoCare platform REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   TokenSource
}

// New creates a Client for the given base URL. A nil token source means
// unauthenticated requests. A zero timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		token:   token,
	}
}

// errorBody is the shape the backend uses for failure responses. Some
// endpoints use "message", older ones use "error".
type errorBody struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

// do performs one JSON request. A non-2xx response becomes an *APIError
// carrying the server's message when it sent one. When out is non-nil
// the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, RequestID: requestID}
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
			if eb.Message != "" {
				apiErr.Message = eb.Message
			} else {
				apiErr.Message = eb.ErrMsg
			}
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}
