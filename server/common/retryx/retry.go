// Package retryx wraps the retry policy used for background refreshes so the
// attempt count and delay are data, not call structure.
package retryx

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Policy is a bounded constant-delay schedule. Retries is the number of
// attempts after the first one, so Retries=2 means at most 3 calls.
type Policy struct {
	Retries uint64
	Delay   time.Duration
}

// DefaultProfileRefresh matches the historical profile-fetch behavior:
// one attempt plus two retries, a fixed second apart.
var DefaultProfileRefresh = Policy{Retries: 2, Delay: time.Second}

// Do runs op under the policy, stopping early when op succeeds or ctx is
// done. The returned error is the last attempt's error.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(p.Retries, retry.NewConstant(nonZeroDelay(p.Delay)))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := op(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// go-retry rejects non-positive constant backoff.
func nonZeroDelay(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Nanosecond
	}
	return d
}
