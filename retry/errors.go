package retry

import "errors"

// ErrInvalidAttempts is returned by [Do] when Options.MaxAttempts is below 1.
// The operation is never called in that case.
var ErrInvalidAttempts = errors.New("retry: max attempts must be at least 1")
