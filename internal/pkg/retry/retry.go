// Package retry provides a bounded exponential-backoff retry policy for
// remote calls. The policy never retries indefinitely: after the initial
// attempt plus MaxRetries retries the last error is surfaced, wrapped with a
// retries-exhausted message so callers can tell exhaustion from a first-call
// failure.
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes a bounded retry loop with exponential backoff.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries uint64

	// InitialInterval is the delay before the first retry; subsequent
	// delays grow exponentially.
	InitialInterval time.Duration
}

// NewPolicy creates a retry policy with the given bounds.
func NewPolicy(maxRetries uint64, initialInterval time.Duration) Policy {
	return Policy{MaxRetries: maxRetries, InitialInterval: initialInterval}
}

// Do runs op until it succeeds, the retry budget is exhausted, or ctx is
// canceled. Delays between attempts start at InitialInterval and double each
// time, without jitter. On exhaustion the last error is wrapped with an
// attempts count; on cancellation the context error is returned as-is.
func (p Policy) Do(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxElapsedTime = 0

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx))
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return err
	}
	return fmt.Errorf("retries exhausted after %d attempts: %w", p.MaxRetries+1, err)
}
