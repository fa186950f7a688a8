package batch

import (
	"context"
	"time"

	"github.com/fwojciec/doctext"
)

// AcquireFunc is the signature for acquiring page markup.
type AcquireFunc func(ctx context.Context, req doctext.Request) (string, error)

// DefaultRetryDelays returns the backoff delays for retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// AcquireWithRetry calls acquire until it succeeds, waiting delays[i]
// before retry i+1. Missing pages and invalid requests fail immediately
// since repeating them cannot succeed.
func AcquireWithRetry(ctx context.Context, req doctext.Request, acquire AcquireFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := acquire(ctx, req)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	switch doctext.ErrorCode(err) {
	case doctext.ENOTFOUND, doctext.EINVALID:
		return false
	}
	return true
}
