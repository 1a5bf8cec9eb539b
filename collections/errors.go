package collections

import (
	"errors"

	"github.com/faustbrian/fp-sub001/seq"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// value satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrInvalidChunkSize is returned by [Collection.Chunk] when size < 1.
	ErrInvalidChunkSize = seq.ErrInvalidChunkSize
)
