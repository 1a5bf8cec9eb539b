package collections

import (
	"iter"
	"strings"

	"github.com/faustbrian/fp-sub001/arr"
	"github.com/faustbrian/fp-sub001/ordered"
	"github.com/faustbrian/fp-sub001/seq"
)

// Collection is an immutable, insertion-ordered set of key/value entries.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, and keeps the keys of the entries it
// retains. Collections built from slices are keyed 0, 1, ….
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.FromSeq(someMap.All())
//	c := collections.Empty[string, int]()
//
// # Method chaining
//
//	result := collections.New(5, 1, 6, 2, 4, 3).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    SortWith(cmp.Compare[int]).
//	    Take(2) // [3:2 4:4]
//
// # Type-transforming operations
//
// Methods cannot introduce type parameters, so operations that change the
// key or value type are package-level functions: [Map], [FlatMap], [Fold],
// [Pluck], [IndexBy], [GroupBy], [Sum], [Average].
type Collection[K comparable, V any] struct {
	entries *ordered.Map[K, V]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection keyed 0, 1, … from items.
func New[V any](items ...V) *Collection[int, V] {
	return &Collection[int, V]{entries: ordered.FromSlice(items)}
}

// From creates a Collection keyed 0, 1, … from a slice. The slice is
// copied.
func From[V any](items []V) *Collection[int, V] {
	return New(items...)
}

// FromSeq drains s into a new Collection, keys preserved.
func FromSeq[K comparable, V any](s iter.Seq2[K, V]) *Collection[K, V] {
	return &Collection[K, V]{entries: ordered.Collect(s)}
}

// Empty creates a Collection with no entries.
func Empty[K comparable, V any]() *Collection[K, V] {
	return &Collection[K, V]{entries: ordered.New[K, V]()}
}

func wrap[K comparable, V any](m *ordered.Map[K, V]) *Collection[K, V] {
	return &Collection[K, V]{entries: m}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the entries in order. The collection can be ranged over any
// number of times, so it satisfies [seq.Iterable].
func (c *Collection[K, V]) All() iter.Seq2[K, V] { return c.entries.All() }

// ToMap returns a copy of the entries as an ordered map.
func (c *Collection[K, V]) ToMap() *ordered.Map[K, V] { return c.entries.Clone() }

// Count returns the number of entries.
func (c *Collection[K, V]) Count() int { return c.entries.Len() }

// IsEmpty reports whether the collection has no entries.
func (c *Collection[K, V]) IsEmpty() bool { return c.entries.Len() == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection[K, V]) IsNotEmpty() bool { return c.entries.Len() > 0 }

// Get returns the value stored under key together with a presence flag.
func (c *Collection[K, V]) Get(key K) (V, bool) { return c.entries.Get(key) }

// Has reports whether key is present.
func (c *Collection[K, V]) Has(key K) bool { return c.entries.Has(key) }

// Keys returns the keys in order.
func (c *Collection[K, V]) Keys() []K { return c.entries.Keys() }

// Values returns the values in order.
func (c *Collection[K, V]) Values() []V { return c.entries.Values() }

// String renders the entries as "[k:v k:v]".
// It implements [fmt.Stringer].
func (c *Collection[K, V]) String() string { return c.entries.String() }

// Implode joins fn(value) for every entry with sep.
func (c *Collection[K, V]) Implode(sep string, fn func(V) string) string {
	parts := make([]string, 0, c.entries.Len())
	for _, v := range c.entries.All() {
		parts = append(parts, fn(v))
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry.
func (c *Collection[K, V]) Each(fn func(V, K)) {
	for k, v := range c.entries.All() {
		fn(v, k)
	}
}

// Tap calls fn(c) for side-effects (e.g. debugging) and returns c unchanged
// for further chaining.
func (c *Collection[K, V]) Tap(fn func(*Collection[K, V])) *Collection[K, V] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value, optionally the first matching fns[0].
// Returns the zero value and false when the collection is empty or no value
// satisfies the predicate.
func (c *Collection[K, V]) First(fns ...func(V) bool) (V, bool) {
	s := c.entries.All()
	if len(fns) > 0 {
		s = seq.Filter(s, fns[0])
	}
	return arr.First(s)
}

// FirstOrFail returns the first value matching fn, or [ErrNoMatchingItems].
func (c *Collection[K, V]) FirstOrFail(fn func(V) bool) (V, error) {
	v, ok := c.First(fn)
	if !ok {
		return v, ErrNoMatchingItems
	}
	return v, nil
}

// Last returns the last value, optionally the last matching fns[0].
func (c *Collection[K, V]) Last(fns ...func(V) bool) (V, bool) {
	s := c.entries.Backward()
	if len(fns) > 0 {
		s = seq.Filter(s, fns[0])
	}
	return arr.First(s)
}

// LastOrFail returns the last value matching fn, or [ErrNoMatchingItems].
func (c *Collection[K, V]) LastOrFail(fn func(V) bool) (V, error) {
	v, ok := c.Last(fn)
	if !ok {
		return v, ErrNoMatchingItems
	}
	return v, nil
}

// Every reports whether fn holds for every value; true when empty.
func (c *Collection[K, V]) Every(fn func(V) bool) bool { return arr.Every(c.entries.All(), fn) }

// Some reports whether fn holds for at least one value.
func (c *Collection[K, V]) Some(fn func(V) bool) bool { return arr.Some(c.entries.All(), fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & ordering
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the entries whose value satisfies fn. A nil fn keeps the
// truthy values.
func (c *Collection[K, V]) Filter(fn func(V) bool) *Collection[K, V] {
	return wrap(arr.Filter(c.entries.All(), fn))
}

// Reject removes the entries whose value satisfies fn.
func (c *Collection[K, V]) Reject(fn func(V) bool) *Collection[K, V] {
	return wrap(arr.Reject(c.entries.All(), fn))
}

// Partition splits the collection into the entries satisfying fn and the
// rest.
func (c *Collection[K, V]) Partition(fn func(V) bool) (*Collection[K, V], *Collection[K, V]) {
	pass, fail := arr.Partition(c.entries.All(), fn)
	return wrap(pass), wrap(fail)
}

// SortWith returns the entries stably ordered by cmp.
func (c *Collection[K, V]) SortWith(cmp func(a, b V) int) *Collection[K, V] {
	return wrap(arr.SortWith(c.entries.All(), cmp))
}

// Reverse returns the entries in reverse order.
func (c *Collection[K, V]) Reverse() *Collection[K, V] {
	return wrap(ordered.Collect(c.entries.Backward()))
}

// Take returns the first n entries.
func (c *Collection[K, V]) Take(n int) *Collection[K, V] {
	return wrap(ordered.Collect(seq.Take(c.entries.All(), n)))
}

// TakeWhile returns the leading entries for which fn holds.
func (c *Collection[K, V]) TakeWhile(fn func(V) bool) *Collection[K, V] {
	return wrap(arr.TakeWhile(c.entries.All(), fn))
}

// DropWhile drops the leading entries for which fn holds.
func (c *Collection[K, V]) DropWhile(fn func(V) bool) *Collection[K, V] {
	return wrap(arr.DropWhile(c.entries.All(), fn))
}

// Chunk splits the collection into collections of at most size entries,
// keys preserved. Returns [ErrInvalidChunkSize] when size < 1.
func (c *Collection[K, V]) Chunk(size int) ([]*Collection[K, V], error) {
	chunks, err := arr.Chunk(c.entries.All(), size)
	if err != nil {
		return nil, err
	}
	out := make([]*Collection[K, V], len(chunks))
	for i, m := range chunks {
		out[i] = wrap(m)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional chaining
// ─────────────────────────────────────────────────────────────────────────────

// When returns fn(c) when condition is true, c otherwise.
func (c *Collection[K, V]) When(condition bool, fn func(*Collection[K, V]) *Collection[K, V]) *Collection[K, V] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless is the inverse of [Collection.When].
func (c *Collection[K, V]) Unless(condition bool, fn func(*Collection[K, V]) *Collection[K, V]) *Collection[K, V] {
	return c.When(!condition, fn)
}

// WhenEmpty returns fn(c) when the collection has no entries.
func (c *Collection[K, V]) WhenEmpty(fn func(*Collection[K, V]) *Collection[K, V]) *Collection[K, V] {
	return c.When(c.IsEmpty(), fn)
}
