// Package retry runs operations under an explicit, injectable retry policy
// so callers can bound attempts and tests can observe backoff without real
// delays.
package retry

import (
	"context"
	"strings"
	"time"
)

// SleepFunc suspends the caller for d, honoring context cancellation.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the production SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Policy bounds a retried operation.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// Backoff returns the wait before retrying after the given zero-based
	// failed attempt.
	Backoff func(attempt int) time.Duration

	// Retryable reports whether the error is worth retrying. A nil
	// predicate retries everything.
	Retryable func(err error) bool
}

// ExponentialBackoff doubles the base delay per attempt: base, 2*base, ...
func ExponentialBackoff(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}

// TransientProviderError matches upstream overload/unavailable failures,
// the only class worth retrying against the generative backend.
func TransientProviderError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "503") || strings.Contains(strings.ToLower(msg), "overloaded")
}

// Do runs op until it succeeds, the policy is exhausted, or a non-retryable
// error occurs. The last error is returned. Sleep errors (cancellation)
// abort immediately.
func (p Policy) Do(ctx context.Context, sleep SleepFunc, op func() error) error {
	if sleep == nil {
		sleep = Sleep
	}
	var err error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt == p.MaxAttempts-1 {
			break
		}
		if serr := sleep(ctx, p.Backoff(attempt)); serr != nil {
			return serr
		}
	}
	return err
}
