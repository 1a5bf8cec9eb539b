// Package collections provides a fluent, immutable Collection type over
// ordered key/value entries, inspired by Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][K, V], a wrapper around an insertion-
// ordered map that exposes a chainable API built on package arr:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Take(3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// # Keys
//
// Methods that keep entries keep their keys, exactly like the arr function
// of the same name: after Filter above the entries are still keyed by
// their original positions. [FlatMap] renumbers from 0; [IndexBy] and
// [GroupBy] compute new keys.
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. The values themselves are not copied.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the key or value type are package-level functions:
//
//	collections.Map(c, strconv.Itoa)
//	collections.GroupBy(c, func(n int) bool { return n > 5 })
//
// Package-level functions: [Map], [MapWithKeys], [FlatMap], [Fold], [Pluck],
// [IndexBy], [GroupBy], [Sum], [Average].
package collections
