package seq

import (
	"fmt"
	"iter"
)

// Iterable is any re-iterable collection. Each call to All starts a new
// traversal from the first entry.
type Iterable[K, V any] interface {
	All() iter.Seq2[K, V]
}

// Cursor is a forward-only, pull-based producer of key/value pairs.
// Next returns ok == false once the cursor is exhausted.
type Cursor[K, V any] interface {
	Next() (key K, value V, ok bool)
}

// CursorFunc adapts a plain function to the [Cursor] interface.
type CursorFunc[K, V any] func() (K, V, bool)

// Next calls f.
func (f CursorFunc[K, V]) Next() (K, V, bool) { return f() }

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

// From returns the sequence of a re-iterable collection.
func From[K, V any](it Iterable[K, V]) iter.Seq2[K, V] {
	return it.All()
}

// FromSlice returns a sequence over items keyed by index.
func FromSlice[V any](items []V) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Of returns a sequence over the given values keyed by position.
func Of[V any](values ...V) iter.Seq2[int, V] {
	return FromSlice(values)
}

// FromCursor drains c as a sequence. The cursor is shared, not copied: a
// second range continues where the first one stopped.
func FromCursor[K, V any](c Cursor[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Once wraps s so that it can be ranged over a single time. Later ranges
// yield nothing, which is how generator-backed sources behave.
func Once[K, V any](s iter.Seq2[K, V]) iter.Seq2[K, V] {
	used := false
	return func(yield func(K, V) bool) {
		if used {
			return
		}
		used = true
		for k, v := range s {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Pull converts s into a [Cursor]. The returned stop function must be
// called when the caller is done with the cursor, to release s.
func Pull[K, V any](s iter.Seq2[K, V]) (Cursor[K, V], func()) {
	next, stop := iter.Pull2(s)
	return CursorFunc[K, V](next), stop
}

// ─────────────────────────────────────────────────────────────────────────────
// Generators
// ─────────────────────────────────────────────────────────────────────────────

// Iterate returns the infinite sequence seed, transform(seed),
// transform(transform(seed)), … keyed 0, 1, 2, ….
//
// Every range starts again at seed. transform runs only when the next value
// is pulled.
func Iterate[T any](seed T, transform func(T) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		x := seed
		for i := 0; ; i++ {
			if !yield(i, x) {
				return
			}
			x = transform(x)
		}
	}
}

// Nth returns the n-th value of [Iterate](seed, transform), counting from 1:
// Nth(1, …) is seed itself. It keeps only the current value in memory.
func Nth[T any](n int, seed T, transform func(T) T) (T, error) {
	if n < 1 {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrInvalidPosition, n)
	}
	x := seed
	for i := 1; i < n; i++ {
		x = transform(x)
	}
	return x, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & renumbering
// ─────────────────────────────────────────────────────────────────────────────

// Take yields at most the first n entries of s, keys preserved. It stops
// pulling from s as soon as n entries have been yielded.
func Take[K, V any](s iter.Seq2[K, V], n int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for k, v := range s {
			if !yield(k, v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Values discards the keys of s and renumbers the values from 0.
func Values[K, V any](s iter.Seq2[K, V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for _, v := range s {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Keys yields the keys of s in order.
func Keys[K, V any](s iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s {
			if !yield(k) {
				return
			}
		}
	}
}

// Concat yields the values of every sequence in turn, renumbered from 0.
func Concat[K, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for _, s := range seqs {
			for _, v := range s {
				if !yield(i, v) {
					return
				}
				i++
			}
		}
	}
}
