package seq

import "errors"

// Sentinel errors returned by sequence constructors. They are returned before
// any element of the input is consumed.
var (
	// ErrInvalidChunkSize is returned by [Chunk] when size < 1.
	ErrInvalidChunkSize = errors.New("seq: chunk size must be at least 1")

	// ErrInvalidPosition is returned by [Nth] when n < 1.
	ErrInvalidPosition = errors.New("seq: position must be at least 1")
)
