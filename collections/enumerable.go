package collections

import "iter"

// Enumerable is the read-side interface satisfied by [Collection][K, V].
//
// Accept Enumerable in your own functions so that callers can pass any
// ordered, re-iterable source without depending on the concrete
// *Collection type.
type Enumerable[K comparable, V any] interface {
	// All returns the entries in order; it may be called repeatedly.
	All() iter.Seq2[K, V]

	// Count returns the number of entries.
	Count() int

	// Get returns the value under key and whether it was present.
	Get(key K) (V, bool)

	// First returns the first value, optionally matching fns[0].
	First(fns ...func(V) bool) (V, bool)

	// Last returns the last value, optionally matching fns[0].
	Last(fns ...func(V) bool) (V, bool)

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool
}

var _ Enumerable[int, int] = (*Collection[int, int])(nil)
