package arr

import (
	"cmp"
	"iter"
	"slices"

	"github.com/samber/mo"

	"github.com/faustbrian/fp-sub001/ordered"
	"github.com/faustbrian/fp-sub001/record"
	"github.com/faustbrian/fp-sub001/seq"
)

// Functions in this file keep every surviving entry under its input key.

// KeyedValues drains s into an ordered map, keys preserved.
func KeyedValues[K comparable, V any](s iter.Seq2[K, V]) *ordered.Map[K, V] {
	return ordered.Collect(s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping & filtering
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every value.
func Map[K comparable, V, R any](s iter.Seq2[K, V], fn func(V) R) *ordered.Map[K, R] {
	return ordered.Collect(seq.Map(s, fn))
}

// MapWithKeys applies fn(value, key) to every entry.
func MapWithKeys[K comparable, V, R any](s iter.Seq2[K, V], fn func(V, K) R) *ordered.Map[K, R] {
	return ordered.Collect(seq.MapWithKeys(s, fn))
}

// Filter keeps the values satisfying pred. A nil pred keeps the
// [seq.Truthy] values.
func Filter[K comparable, V any](s iter.Seq2[K, V], pred func(V) bool) *ordered.Map[K, V] {
	return ordered.Collect(seq.Filter(s, pred))
}

// FilterWithKeys keeps the entries for which pred(value, key) holds.
func FilterWithKeys[K comparable, V any](s iter.Seq2[K, V], pred func(V, K) bool) *ordered.Map[K, V] {
	return ordered.Collect(seq.FilterWithKeys(s, pred))
}

// Reject keeps the values for which pred does not hold.
func Reject[K comparable, V any](s iter.Seq2[K, V], pred func(V) bool) *ordered.Map[K, V] {
	return ordered.Collect(seq.Filter(s, func(v V) bool { return !pred(v) }))
}

// Partition splits s in a single pass into the entries satisfying pred and
// the rest.
func Partition[K comparable, V any](s iter.Seq2[K, V], pred func(V) bool) (pass, fail *ordered.Map[K, V]) {
	pass, fail = ordered.New[K, V](), ordered.New[K, V]()
	for k, v := range s {
		if pred(v) {
			pass.Set(k, v)
		} else {
			fail.Set(k, v)
		}
	}
	return pass, fail
}

// TakeWhile keeps the leading entries while pred holds and stops reading s
// at the first failure.
func TakeWhile[K comparable, V any](s iter.Seq2[K, V], pred func(V) bool) *ordered.Map[K, V] {
	return ordered.Collect(seq.TakeWhile(s, pred))
}

// DropWhile drops the leading entries while pred holds and keeps the rest,
// including later entries that satisfy pred.
func DropWhile[K comparable, V any](s iter.Seq2[K, V], pred func(V) bool) *ordered.Map[K, V] {
	return ordered.Collect(seq.DropWhile(s, pred))
}

// Pluck reads property from every record. Records may be map[string]any
// values, addressed with dot notation ("address.city"), or structs and
// struct pointers, addressed by field name or mapstructure tag. A missing
// property yields nil for that entry.
func Pluck[K comparable, V any](s iter.Seq2[K, V], property string) *ordered.Map[K, any] {
	return ordered.Collect(seq.Map(s, func(v V) any {
		found, _ := record.Lookup(v, property)
		return found
	}))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

type entry[K, V, O any] struct {
	key   K
	value V
	order O
}

func sortEntries[K comparable, V, O any](s iter.Seq2[K, V], orderOf func(V) O, cmpFn func(a, b O) int) *ordered.Map[K, V] {
	var entries []entry[K, V, O]
	for k, v := range s {
		entries = append(entries, entry[K, V, O]{key: k, value: v, order: orderOf(v)})
	}
	slices.SortStableFunc(entries, func(a, b entry[K, V, O]) int { return cmpFn(a.order, b.order) })

	out := ordered.New[K, V](len(entries))
	for _, e := range entries {
		out.Set(e.key, e.value)
	}
	return out
}

// SortBy orders the entries by keyFn(value), ascending. keyFn is called once
// per entry and equal sort keys keep their input order.
func SortBy[K comparable, V any, O cmp.Ordered](s iter.Seq2[K, V], keyFn func(V) O) *ordered.Map[K, V] {
	return sortEntries(s, keyFn, cmp.Compare[O])
}

// SortByOption is [SortBy] for sort keys that may be absent. Absent keys
// sort before every present key.
func SortByOption[K comparable, V any, O cmp.Ordered](s iter.Seq2[K, V], keyFn func(V) mo.Option[O]) *ordered.Map[K, V] {
	return sortEntries(s, keyFn, func(a, b mo.Option[O]) int {
		av, aok := a.Get()
		bv, bok := b.Get()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		return cmp.Compare(av, bv)
	})
}

// SortWith orders the values with cmpFn, which returns a negative number
// when a sorts before b. The sort is stable.
func SortWith[K comparable, V any](s iter.Seq2[K, V], cmpFn func(a, b V) int) *ordered.Map[K, V] {
	return sortEntries(s, func(v V) V { return v }, cmpFn)
}

// Reverse returns the entries of s in reverse order.
func Reverse[K comparable, V any](s iter.Seq2[K, V]) *ordered.Map[K, V] {
	in := ordered.Collect(s)
	return ordered.Collect(in.Backward())
}

// ─────────────────────────────────────────────────────────────────────────────
// Adding entries
// ─────────────────────────────────────────────────────────────────────────────

// AppendKey adds value under key after the entries of s. If s already has
// key, the entry keeps its position and takes the new value.
func AppendKey[K comparable, V any](s iter.Seq2[K, V], key K, value V) *ordered.Map[K, V] {
	out := ordered.Collect(s)
	out.Set(key, value)
	return out
}

// Append adds value after the entries of an integer-keyed s, under the key
// one greater than the largest key present, or 0 when s is empty.
func Append[V any](s iter.Seq2[int, V], value V) *ordered.Map[int, V] {
	out := ordered.New[int, V]()
	next, seen := 0, false
	for k, v := range s {
		out.Set(k, v)
		if !seen || k >= next {
			next, seen = k+1, true
		}
	}
	out.Set(next, value)
	return out
}

// PrependKey puts value under key before the entries of s. An entry of s
// with the same key is dropped.
func PrependKey[K comparable, V any](s iter.Seq2[K, V], key K, value V) *ordered.Map[K, V] {
	out := ordered.New[K, V]()
	out.Set(key, value)
	for k, v := range s {
		if k != key {
			out.Set(k, v)
		}
	}
	return out
}
