package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/casaflow/property-service/internal/utils"
)

// ErrAttemptTimeout marks an attempt whose time box elapsed before the
// primary operation resolved.
var ErrAttemptTimeout = errors.New("attempt_timeout")

// ErrRemoteUnavailable is returned by primaries that refuse to dial a
// backend already known to be down.
var ErrRemoteUnavailable = errors.New("remote_unavailable")

const defaultBackoffUnit = time.Second

/*
Policy bounds a remote read with a per-attempt time box and a retry
budget, and substitutes a caller-supplied fallback once the budget is
spent. Callers never observe an error from Execute: they get either a
live result or the fallback result.

MaxRetries = 0 means exactly one attempt before falling back. The wait
between attempt n and n+1 is BackoffUnit * (n+1), i.e. linear backoff.
*/
type Policy struct {
	MaxRetries     int
	AttemptTimeout time.Duration
	BackoffUnit    time.Duration
}

// NewPolicy returns a Policy with the production backoff unit of 1s.
func NewPolicy(maxRetries int, attemptTimeout time.Duration) *Policy {
	return &Policy{
		MaxRetries:     maxRetries,
		AttemptTimeout: attemptTimeout,
		BackoffUnit:    defaultBackoffUnit,
	}
}

type attemptResult[T any] struct {
	value T
	err   error
}

// Execute runs primary under p's retry/timeout budget and returns the
// fallback value once the budget is exhausted. Cancellation of ctx
// short-circuits the backoff wait straight to the fallback; an attempt
// already in flight is abandoned, not interrupted.
func Execute[T any](ctx context.Context, p *Policy, primary func(context.Context) (T, error), fallback func() T) T {
	for attempt := 0; ; attempt++ {
		value, err := runAttempt(ctx, p.AttemptTimeout, primary)
		if err == nil {
			return value
		}

		utils.Logger.WithError(err).Warnf(
			"remote attempt %d/%d failed (%s)",
			attempt+1, p.MaxRetries+1, Classify(err),
		)

		if attempt >= p.MaxRetries {
			return fallback()
		}

		backoff := p.BackoffUnit * time.Duration(attempt+1)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return fallback()
		}
	}
}

// runAttempt races primary against the time box. The result channel is
// buffered so an abandoned attempt never leaks its goroutine.
func runAttempt[T any](ctx context.Context, timeout time.Duration, primary func(context.Context) (T, error)) (T, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan attemptResult[T], 1)
	go func() {
		v, err := primary(attemptCtx)
		ch <- attemptResult[T]{value: v, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil && errors.Is(res.err, context.DeadlineExceeded) {
			var zero T
			return zero, ErrAttemptTimeout
		}
		return res.value, res.err
	case <-attemptCtx.Done():
		var zero T
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return zero, ErrAttemptTimeout
		}
		return zero, attemptCtx.Err()
	}
}
