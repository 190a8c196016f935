package errors

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxRetries: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}
}

func TestRetryEventuallySucceeds(t *testing.T) {
	calls := 0
	var waits []int
	cfg := fastRetry()
	cfg.OnRetry = func(attempt int, _ time.Duration, _ error) { waits = append(waits, attempt) }

	err := Retry(context.Background(), cfg, func(context.Context) error {
		calls++
		if calls < 3 {
			return New(ErrCodeConnectionFailed, "connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, waits)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(), func(context.Context) error {
		calls++
		return New(ErrCodeAuthenticationFailed, "access denied")
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, ErrCodeAuthenticationFailed, GetErrorCode(err))
}

func TestRetryExhausted(t *testing.T) {
	calls := 0
	last := New(ErrCodeConnectionFailed, "connection refused")
	err := Retry(context.Background(), fastRetry(), func(context.Context) error {
		calls++
		return last
	})

	assert.Equal(t, 4, calls)
	assert.Same(t, last, err)
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastRetry()
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour
	cfg.OnRetry = func(int, time.Duration, error) { cancel() }

	err := Retry(ctx, cfg, func(context.Context) error {
		return New(ErrCodeConnectionFailed, "connection refused")
	})

	assert.Equal(t, ErrCodeCancelled, GetErrorCode(err))
	assert.True(t, stderrors.Is(err, context.Canceled))
}

func TestBackoffCapped(t *testing.T) {
	cfg := RetryConfig{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, backoff(0, cfg))
	assert.Equal(t, 200*time.Millisecond, backoff(1, cfg))
	assert.Equal(t, 300*time.Millisecond, backoff(2, cfg))
}
