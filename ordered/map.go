// Package ordered provides an insertion-ordered mapping, the materialized
// form of a key/value sequence.
//
// Go maps iterate in random order, so every eager combinator in this module
// that preserves keys returns a [Map] instead: keys stay associated with the
// values they were derived from and iteration follows the order in which the
// keys were first inserted.
//
//	m := ordered.New[string, int]()
//	m.Set("b", 2)
//	m.Set("a", 1)
//	m.Set("b", 20)   // overwrite keeps the original position
//	m.Keys()         // → [b a]
//
// A Map is itself re-iterable: [Map.All] returns a fresh [iter.Seq2] on every
// call.
package ordered

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Map is an insertion-ordered mapping from K to V.
//
// The zero value is not ready for use; create maps with [New], [Collect],
// [FromSlice] or [FromPairs]. A Map is not safe for concurrent mutation.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Map with room for size entries.
func New[K comparable, V any](size ...int) *Map[K, V] {
	n := 0
	if len(size) > 0 && size[0] > 0 {
		n = size[0]
	}
	return &Map[K, V]{
		keys:   make([]K, 0, n),
		values: make(map[K]V, n),
	}
}

// Collect drains seq into a new Map. A key seen twice keeps its first
// position and takes the later value.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.Set(k, v)
	}
	return m
}

// FromSlice creates a Map keyed by slice index (0 … len-1).
func FromSlice[V any](items []V) *Map[int, V] {
	m := New[int, V](len(items))
	for i, v := range items {
		m.Set(i, v)
	}
	return m
}

// Pair is a single key/value entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// FromPairs creates a Map from entries in the given order.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := New[K, V](len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns a copy of the keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns the values in iteration order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// All returns a sequence over the entries in insertion order. Each call
// starts a new traversal.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Backward returns a sequence over the entries from last to first.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.keys) - 1; i >= 0; i-- {
			k := m.keys[i]
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key. New keys are appended; existing keys keep
// their position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k K) bool { return k == key })
	return true
}

// Clone returns a shallow copy of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{
		keys:   slices.Clone(m.keys),
		values: make(map[K]V, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// String renders the entries in order as "[k:v k:v]", matching fmt's
// rendering of built-in maps.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, m.values[k])
	}
	b.WriteByte(']')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b hold the same entries in the same order.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like [Equal] but compares values with eq.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k {
			return false
		}
		if !eq(a.values[k], b.values[k]) {
			return false
		}
	}
	return true
}
