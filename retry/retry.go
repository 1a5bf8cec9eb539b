package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// ─────────────────────────────────────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────────────────────────────────────

// DefaultMaxAttempts is the attempt budget used by [DefaultOptions].
const DefaultMaxAttempts = 3

// Options configures [Do] and [Wrap].
type Options struct {
	// MaxAttempts is the total number of calls, including the first one.
	// Minimum: 1.  Default: [DefaultMaxAttempts].
	MaxAttempts int

	// Backoff yields the delay before each retry. It is reset at the start
	// of every [Do] call. Nil means an exponential policy with the
	// backoff package defaults (500 ms initial, x1.5, jittered).
	// Returning [backoff.Stop] ends retrying early.
	Backoff backoff.BackOff

	// MaxElapsed caps the total time spent retrying. Zero keeps the backoff
	// package default of 15 minutes.
	MaxElapsed time.Duration

	// OnRetry, when set, is called after a failed attempt that will be
	// retried, with the 1-based number of that attempt, its error, and the
	// delay before the next one.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultOptions returns three attempts with exponential backoff.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     backoff.NewExponentialBackOff(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delay policies
// ─────────────────────────────────────────────────────────────────────────────

// delayFunc adapts a function of the retry number to [backoff.BackOff].
type delayFunc struct {
	f       func(attempt int) time.Duration
	attempt int
}

func (d *delayFunc) NextBackOff() time.Duration {
	d.attempt++
	return d.f(d.attempt)
}

func (d *delayFunc) Reset() { d.attempt = 0 }

// Delay returns a policy that waits f(n) before the n-th retry, n starting
// at 1. f may return [backoff.Stop] to give up.
func Delay(f func(attempt int) time.Duration) backoff.BackOff {
	return &delayFunc{f: f}
}

// NoDelay returns a policy that retries immediately.
func NoDelay() backoff.BackOff { return &backoff.ZeroBackOff{} }

// Constant returns a policy that waits d before every retry.
func Constant(d time.Duration) backoff.BackOff { return backoff.NewConstantBackOff(d) }

// ─────────────────────────────────────────────────────────────────────────────
// Running
// ─────────────────────────────────────────────────────────────────────────────

// Do calls op until it succeeds, returns a permanent error, ctx is done,
// or opts.MaxAttempts calls have been made. It returns the result of the
// last call. Errors from op are returned as-is; a [backoff.Permanent]
// wrapper is removed.
func Do[T any](ctx context.Context, op func(context.Context) (T, error), opts Options) (T, error) {
	if opts.MaxAttempts < 1 {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrInvalidAttempts, opts.MaxAttempts)
	}

	b := opts.Backoff
	if b == nil {
		b = backoff.NewExponentialBackOff()
	}
	b.Reset()

	attempt := 0
	retryOpts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(opts.MaxAttempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			if opts.OnRetry != nil {
				opts.OnRetry(attempt, err, next)
			}
		}),
	}
	if opts.MaxElapsed > 0 {
		retryOpts = append(retryOpts, backoff.WithMaxElapsedTime(opts.MaxElapsed))
	}

	res, err := backoff.Retry(ctx, func() (T, error) {
		attempt++
		return op(ctx)
	}, retryOpts...)

	// The final attempt may itself have been marked permanent.
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Unwrap()
	}
	return res, err
}

// Wrap returns a decorator that runs any operation through [Do] with opts.
// The returned function validates opts on every call.
func Wrap[T any](opts Options) func(op func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(op func(context.Context) (T, error)) func(context.Context) (T, error) {
		return func(ctx context.Context) (T, error) {
			return Do(ctx, op, opts)
		}
	}
}
