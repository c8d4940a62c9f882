package api

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  5 * time.Millisecond,
		MaxDelay:   50 * time.Millisecond,
	}
}

func TestRetrySuccess(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	err := Retry(context.Background(), testPolicy(), func() error {
		callCount.Add(1)
		return nil
	})

	if err != nil {
		t.Errorf("Retry() error = %v, want nil", err)
	}
	if callCount.Load() != 1 {
		t.Errorf("call count = %d, want 1", callCount.Load())
	}
}

func TestRetryEventualSuccess(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	err := Retry(context.Background(), testPolicy(), func() error {
		if callCount.Add(1) < 3 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Errorf("Retry() error = %v, want nil", err)
	}
	if callCount.Load() != 3 {
		t.Errorf("call count = %d, want 3", callCount.Load())
	}
}

func TestRetryExhausted(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	persistent := errors.New("persistent")
	err := Retry(context.Background(), testPolicy(), func() error {
		callCount.Add(1)
		return persistent
	})

	if !errors.Is(err, persistent) {
		t.Errorf("Retry() error = %v, want %v", err, persistent)
	}
	// Initial call + MaxRetries retries = 4 total calls
	if callCount.Load() != 4 {
		t.Errorf("call count = %d, want 4", callCount.Load())
	}
}

func TestRetryClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	clientErr := &APIError{Status: 403}
	err := Retry(context.Background(), testPolicy(), func() error {
		callCount.Add(1)
		return clientErr
	})

	if !errors.Is(err, clientErr) {
		t.Errorf("Retry() error = %v, want the 403", err)
	}
	if callCount.Load() != 1 {
		t.Errorf("call count = %d, want 1 (4xx never retried)", callCount.Load())
	}
}

func TestRetryServerErrorRetried(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32
	_ = Retry(context.Background(), testPolicy(), func() error {
		callCount.Add(1)
		return &APIError{Status: 503}
	})

	if callCount.Load() != 4 {
		t.Errorf("call count = %d, want 4 (5xx retried)", callCount.Load())
	}
}

func TestRetryContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := Retry(ctx, RetryPolicy{MaxRetries: 10, BaseDelay: 50 * time.Millisecond, MaxDelay: time.Second}, func() error {
		return errors.New("fail")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}

func TestBackoffGrowth(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{BaseDelay: 10 * time.Millisecond, MaxDelay: 45 * time.Millisecond}

	if d := backoff(0, policy); d != 10*time.Millisecond {
		t.Errorf("backoff(0) = %v, want 10ms", d)
	}
	if d := backoff(1, policy); d != 20*time.Millisecond {
		t.Errorf("backoff(1) = %v, want 20ms", d)
	}
	if d := backoff(5, policy); d != 45*time.Millisecond {
		t.Errorf("backoff(5) = %v, want capped at 45ms", d)
	}
}
