package arr

import (
	"iter"

	"github.com/faustbrian/fp-sub001/ordered"
)

// Functions in this file compute new keys with a caller-supplied function.

// IndexBy keys every value by keyFn(value). A later value with the same key
// replaces the earlier one but keeps its position.
func IndexBy[K any, V any, NK comparable](s iter.Seq2[K, V], keyFn func(V) NK) *ordered.Map[NK, V] {
	out := ordered.New[NK, V]()
	for _, v := range s {
		out.Set(keyFn(v), v)
	}
	return out
}

// KeyedMap maps every entry to valueFn(key, value) under keyFn(key, value).
// A nil keyFn keeps the input key.
func KeyedMap[K comparable, V, R any](s iter.Seq2[K, V], valueFn func(K, V) R, keyFn func(K, V) K) *ordered.Map[K, R] {
	out := ordered.New[K, R]()
	for k, v := range s {
		nk := k
		if keyFn != nil {
			nk = keyFn(k, v)
		}
		out.Set(nk, valueFn(k, v))
	}
	return out
}

// GroupBy collects the entries of s into groups keyed by keyFn(value).
// Groups appear in order of first occurrence and keep the input keys of
// their members.
func GroupBy[K comparable, V any, G comparable](s iter.Seq2[K, V], keyFn func(V) G) *ordered.Map[G, *ordered.Map[K, V]] {
	out := ordered.New[G, *ordered.Map[K, V]]()
	for k, v := range s {
		g := keyFn(v)
		group, ok := out.Get(g)
		if !ok {
			group = ordered.New[K, V]()
			out.Set(g, group)
		}
		group.Set(k, v)
	}
	return out
}
