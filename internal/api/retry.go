package api

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryPolicy defines the retry behavior for requests.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts (not including initial call).
	MaxRetries int

	// BaseDelay is the initial delay before the first retry.
	BaseDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// UseJitter adds randomness to delays to prevent thundering herd.
	UseJitter bool
}

// DefaultRetryPolicy suits interactive use: quick, few attempts.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries: 2,
	BaseDelay:  200 * time.Millisecond,
	MaxDelay:   2 * time.Second,
	UseJitter:  true,
}

// isClientError matches errors that represent a 4xx response.
type isClientError interface {
	IsClientError() bool
}

// Retry executes fn under the policy. Client errors (4xx) and context
// errors are returned immediately; transport and 5xx failures are
// retried with exponential backoff. Returns the last attempt's error
// when all retries are exhausted.
func Retry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error

	maxAttempts := policy.MaxRetries + 1

	for attempt := range maxAttempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !retryable(err) {
			return err
		}

		// Don't delay after the last attempt
		if attempt < maxAttempts-1 {
			delay := backoff(attempt, policy)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}

// backoff calculates the delay for a given attempt: BaseDelay * 2^attempt,
// capped at MaxDelay, with optional jitter in [0.5, 1.5].
func backoff(attempt int, policy RetryPolicy) time.Duration {
	base := policy.BaseDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	maxDelay := policy.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}

	delay := base
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if policy.UseJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}

	if delay > maxDelay {
		delay = maxDelay
	}

	return delay
}

// retryable reports whether an error is worth another attempt.
func retryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var clientErr isClientError
	if errors.As(err, &clientErr) && clientErr.IsClientError() {
		return false
	}

	return true
}
