package collections

import (
	"iter"

	"github.com/faustbrian/fp-sub001/arr"
)

// This file contains package-level generic functions for operations that
// change the key or value type of a Collection.
//
// They compose with method chains:
//
//	labels := collections.Map(
//	    collections.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	) // [1:2 3:4]

// Map applies fn to every value, keys preserved.
func Map[K comparable, V, R any](c *Collection[K, V], fn func(V) R) *Collection[K, R] {
	return wrap(arr.Map(c.All(), fn))
}

// MapWithKeys applies fn(value, key) to every entry, keys preserved.
func MapWithKeys[K comparable, V, R any](c *Collection[K, V], fn func(V, K) R) *Collection[K, R] {
	return wrap(arr.MapWithKeys(c.All(), fn))
}

// FlatMap concatenates the sequences returned by fn into a collection keyed
// 0, 1, ….
//
//	words := collections.FlatMap(collections.New("hello world", "foo"),
//	    func(s string) iter.Seq2[int, string] { return seq.FromSlice(strings.Fields(s)) })
//	// → [0:hello 1:world 2:foo]
func FlatMap[K comparable, V, KR, R any](c *Collection[K, V], fn func(V) iter.Seq2[KR, R]) *Collection[int, R] {
	return From(arr.FlatMap(c.All(), fn))
}

// Fold reduces the values from first to last, starting at init.
//
//	sum := collections.Fold(collections.New(1, 2, 3, 4), 0,
//	    func(acc, n int) int { return acc + n })
func Fold[K comparable, V, R any](c *Collection[K, V], init R, fn func(R, V) R) R {
	return arr.Fold(c.All(), init, fn)
}

// Pluck reads property from every record value; see [arr.Pluck]. Missing
// properties yield nil.
//
//	names := collections.Pluck(users, "Name")
func Pluck[K comparable, V any](c *Collection[K, V], property string) *Collection[K, any] {
	return wrap(arr.Pluck(c.All(), property))
}

// IndexBy keys every value by fn(value). When several values share a key,
// the last one wins.
//
//	byID := collections.IndexBy(users, func(u User) int { return u.ID })
func IndexBy[K comparable, V any, NK comparable](c *Collection[K, V], fn func(V) NK) *Collection[NK, V] {
	return wrap(arr.IndexBy(c.All(), fn))
}

// GroupBy groups the entries by fn(value). Groups keep the keys of their
// members and appear in order of first occurrence.
//
//	byDept := collections.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[K comparable, V any, G comparable](c *Collection[K, V], fn func(V) G) *Collection[G, *Collection[K, V]] {
	groups := arr.GroupBy(c.All(), fn)
	return wrap(arr.Map(groups.All(), wrap[K, V]))
}

// Sum returns the sum of the values.
func Sum[K comparable, V arr.Number](c *Collection[K, V]) V { return arr.Sum(c.All()) }

// Average returns the mean of the values, or false when c is empty.
func Average[K comparable, V arr.Number](c *Collection[K, V]) (float64, bool) {
	return arr.Average(c.All())
}
