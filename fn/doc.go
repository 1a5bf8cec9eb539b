// Package fn provides predicate and function combinators: boolean algebra
// over predicates, composition, partial application, argument flipping and
// spreading, and memoization.
//
// Nothing in this package iterates; every combinator returns a new function
// and calls the functions it was given only when that new function is
// called, in the order documented on each combinator.
//
// # Predicates
//
//	adult := fn.Gte(18)
//	teen := fn.And(fn.Gte(13), fn.Lt(20))
//	neither := fn.Not(fn.Or(adult, teen))
//
// [And] with no predicates is always true and [Or] with none is always
// false. Both stop at the first decisive predicate. The 2-suffixed variants
// ([And2], [Or2], [Not2]) take (value, key) predicates and forward both
// arguments unchanged.
//
// # Composition
//
// [Compose] applies right to left and returns a function; [Pipe] takes a
// starting value, applies left to right and returns the result. Go functions
// have a single static type, so the variadic forms work on func(T) T and
// [Compose2], [Pipe2] and [Pipe3] cover pipelines whose types change:
//
//	slugLen := fn.Compose2(utf8.RuneCountInString, strings.ToLower)
//	n := fn.Pipe2("Hello", strings.ToUpper, utf8.RuneCountInString)
//
// # Curried sequence combinators
//
// Sequence functions in this module are data-first. [PartialRight] turns
// one into the unary, data-last form:
//
//	double := fn.PartialRight(arr.Map[int, int, int], func(n int) int { return n * 2 })
//	double(seq.Of(1, 2, 3)) // → [0:2 1:4 2:6]
//
// # Memoization
//
// [Memoize], [Memoize2] and [MemoizeN] cache results keyed by the full
// argument list. Arguments are serialized with deterministic CBOR and the
// encoding is digested with BLAKE2b-256, so two structurally equal arguments
// share an entry even when they are distinct values. Only exported struct
// fields take part in the key. Arguments CBOR cannot encode (functions,
// channels) are never cached: the wrapped function is simply called.
package fn
