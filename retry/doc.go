// Package retry re-runs a failing operation with a pluggable delay between
// attempts.
//
// The loop itself is [backoff.Retry] from github.com/cenkalti/backoff/v5;
// this package adds a fixed attempt budget, an attempt-numbered hook, and
// delay policies expressed as plain functions so retries compose with the
// rest of the module:
//
//	fetch := retry.Wrap[[]byte](retry.DefaultOptions())(download)
//	body, err := fetch(ctx)
//
// Returning [backoff.Permanent](err) from the operation stops immediately;
// the caller receives err itself. Cancelling ctx stops between attempts and
// returns the context's cause.
package retry
