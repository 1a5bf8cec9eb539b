package retry_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/faustbrian/fp-sub001/retry"
)

var errFlaky = errors.New("flaky")

// failing returns an operation that fails n times before returning "ok".
func failing(n int, calls *int) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		*calls++
		if *calls <= n {
			return "", errFlaky
		}
		return "ok", nil
	}
}

func fast(attempts int) retry.Options {
	return retry.Options{MaxAttempts: attempts, Backoff: retry.NoDelay()}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := retry.Do(context.Background(), failing(0, &calls), fast(3))
	if err != nil || got != "ok" || calls != 1 {
		t.Fatalf("Do = %q, %v after %d calls", got, err, calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	got, err := retry.Do(context.Background(), failing(2, &calls), fast(3))
	if err != nil || got != "ok" {
		t.Fatalf("Do = %q, %v", got, err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d; want 3", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), failing(10, &calls), fast(4))
	if !errors.Is(err, errFlaky) {
		t.Fatalf("err = %v; want %v", err, errFlaky)
	}
	if calls != 4 {
		t.Fatalf("calls = %d; want 4", calls)
	}
}

func TestDoSingleAttempt(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), failing(1, &calls), fast(1))
	if !errors.Is(err, errFlaky) || calls != 1 {
		t.Fatalf("err = %v after %d calls", err, calls)
	}
}

func TestDoInvalidAttempts(t *testing.T) {
	for _, n := range []int{0, -1} {
		calls := 0
		_, err := retry.Do(context.Background(), failing(0, &calls), fast(n))
		if !errors.Is(err, retry.ErrInvalidAttempts) {
			t.Errorf("MaxAttempts=%d: err = %v", n, err)
		}
		if calls != 0 {
			t.Errorf("MaxAttempts=%d: op called %d times", n, calls)
		}
	}
}

func TestDoPermanentStops(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0
	_, err := retry.Do(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, backoff.Permanent(fatal)
	}, fast(5))
	if err != fatal {
		t.Fatalf("err = %#v; want the unwrapped permanent error", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d; want 1", calls)
	}
}

func TestDoPermanentOnLastAttemptIsUnwrapped(t *testing.T) {
	fatal := errors.New("fatal")
	_, err := retry.Do(context.Background(), func(context.Context) (int, error) {
		return 0, backoff.Permanent(fatal)
	}, fast(1))
	if err != fatal {
		t.Fatalf("err = %#v; want %v", err, fatal)
	}
}

func TestDoStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	_, err := retry.Do(ctx, func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, errFlaky
	}, retry.Options{MaxAttempts: 5, Backoff: retry.Constant(time.Hour)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v; want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d; want 1", calls)
	}
}

func TestOnRetryReportsAttempts(t *testing.T) {
	var attempts []int
	var delays []time.Duration
	opts := retry.Options{
		MaxAttempts: 3,
		Backoff: retry.Delay(func(n int) time.Duration {
			return time.Duration(n) * time.Microsecond
		}),
		OnRetry: func(attempt int, err error, delay time.Duration) {
			if !errors.Is(err, errFlaky) {
				t.Errorf("OnRetry err = %v", err)
			}
			attempts = append(attempts, attempt)
			delays = append(delays, delay)
		},
	}

	calls := 0
	if _, err := retry.Do(context.Background(), failing(5, &calls), opts); !errors.Is(err, errFlaky) {
		t.Fatalf("err = %v", err)
	}
	// No hook after the final attempt: nothing follows it.
	if !slices.Equal(attempts, []int{1, 2}) {
		t.Fatalf("attempts = %v; want [1 2]", attempts)
	}
	if !slices.Equal(delays, []time.Duration{time.Microsecond, 2 * time.Microsecond}) {
		t.Fatalf("delays = %v", delays)
	}
}

func TestDelayStopGivesUp(t *testing.T) {
	calls := 0
	opts := retry.Options{
		MaxAttempts: 10,
		Backoff: retry.Delay(func(n int) time.Duration {
			if n >= 2 {
				return backoff.Stop
			}
			return 0
		}),
	}
	if _, err := retry.Do(context.Background(), failing(10, &calls), opts); !errors.Is(err, errFlaky) {
		t.Fatalf("err = %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d; want 2", calls)
	}
}

func TestDelayResetsBetweenRuns(t *testing.T) {
	var seen []int
	opts := retry.Options{
		MaxAttempts: 2,
		Backoff:     retry.Delay(func(n int) time.Duration { seen = append(seen, n); return 0 }),
	}
	for range 2 {
		calls := 0
		_, _ = retry.Do(context.Background(), failing(5, &calls), opts)
	}
	if !slices.Equal(seen, []int{1, 1}) {
		t.Fatalf("delay attempts = %v; want [1 1]", seen)
	}
}

func TestWrap(t *testing.T) {
	calls := 0
	op := retry.Wrap[string](fast(3))(failing(1, &calls))
	got, err := op(context.Background())
	if err != nil || got != "ok" || calls != 2 {
		t.Fatalf("wrapped = %q, %v after %d calls", got, err, calls)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := retry.DefaultOptions()
	if opts.MaxAttempts != retry.DefaultMaxAttempts || opts.Backoff == nil {
		t.Fatalf("DefaultOptions = %+v", opts)
	}
}
