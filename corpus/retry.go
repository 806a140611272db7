package corpus

import (
	"context"
	"time"

	"github.com/docserve/docserve"
)

// DefaultRetryDelays returns the fixed delay schedule for fetch retries:
// three retries, one second apart.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, time.Second, time.Second}
}

// fetchWithRetry attempts a fetch with a fixed delay schedule: one initial
// attempt plus one retry per delay. It returns the last error once the
// schedule is exhausted.
func fetchWithRetry(ctx context.Context, fetcher docserve.Fetcher, url string, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
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
