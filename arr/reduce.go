package arr

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq2"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Fold threads acc through fn(acc, value) from the first value to the last,
// starting at init. An empty s returns init.
func Fold[K, V, R any](s iter.Seq2[K, V], init R, fn func(acc R, v V) R) R {
	return seq2.Reduce(s, func(acc R, _ K, v V) R { return fn(acc, v) }, init)
}

// Reduce is [Fold].
func Reduce[K, V, R any](s iter.Seq2[K, V], init R, fn func(acc R, v V) R) R {
	return Fold(s, init, fn)
}

// Foldr is [Fold] from the last value to the first. s is read in full
// before fn is first called.
func Foldr[K, V, R any](s iter.Seq2[K, V], init R, fn func(acc R, v V) R) R {
	return seq2.ReduceRight(s, func(acc R, _ K, v V) R { return fn(acc, v) }, init)
}

// HeadTail folds the first value with first and every later value with
// rest. An empty s returns init.
func HeadTail[K, V, R any](s iter.Seq2[K, V], init R, first, rest func(acc R, v V) R) R {
	acc, head := init, true
	for _, v := range s {
		if head {
			acc, head = first(acc, v), false
			continue
		}
		acc = rest(acc, v)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether s has a value == needle. It stops reading s at
// the first match.
func Contains[K any, V comparable](s iter.Seq2[K, V], needle V) bool {
	return seq2.ContainsValue(s, needle)
}

// Every reports whether pred holds for every value; true for an empty s.
// It stops at the first failure.
func Every[K, V any](s iter.Seq2[K, V], pred func(V) bool) bool {
	return seq2.Every(s, func(_ K, v V) bool { return pred(v) })
}

// All is [Every].
func All[K, V any](s iter.Seq2[K, V], pred func(V) bool) bool { return Every(s, pred) }

// Some reports whether pred holds for any value; false for an empty s.
// It stops at the first success.
func Some[K, V any](s iter.Seq2[K, V], pred func(V) bool) bool {
	return seq2.Exists(s, func(_ K, v V) bool { return pred(v) })
}

// Any is [Some].
func Any[K, V any](s iter.Seq2[K, V], pred func(V) bool) bool { return Some(s, pred) }

// First returns the first value. Only one entry of s is read.
func First[K, V any](s iter.Seq2[K, V]) (V, bool) {
	for _, v := range s {
		return v, true
	}
	var zero V
	return zero, false
}

// Last returns the last value, reading s to the end.
func Last[K, V any](s iter.Seq2[K, V]) (V, bool) {
	var last V
	found := false
	for _, v := range s {
		last, found = v, true
	}
	return last, found
}

// Count returns the number of entries in s.
func Count[K, V any](s iter.Seq2[K, V]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Keys returns the keys of s in order.
func Keys[K, V any](s iter.Seq2[K, V]) []K {
	out := make([]K, 0)
	for k := range s {
		out = append(out, k)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// MinValue returns the smallest value, or false for an empty s.
func MinValue[K any, V constraints.Ordered](s iter.Seq2[K, V]) (V, bool) {
	return extreme(s, func(v, best V) bool { return v < best })
}

// MaxValue returns the largest value, or false for an empty s.
func MaxValue[K any, V constraints.Ordered](s iter.Seq2[K, V]) (V, bool) {
	return extreme(s, func(v, best V) bool { return v > best })
}

func extreme[K, V any](s iter.Seq2[K, V], better func(v, best V) bool) (V, bool) {
	var best V
	found := false
	for _, v := range s {
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	return best, found
}

// Sum returns the sum of the values; 0 for an empty s.
func Sum[K any, V Number](s iter.Seq2[K, V]) V {
	var total V
	for _, v := range s {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of the values, or false for an empty s.
func Mean[K any, V Number](s iter.Seq2[K, V]) (float64, bool) {
	var total float64
	n := 0
	for _, v := range s {
		total += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// Average is [Mean].
func Average[K any, V Number](s iter.Seq2[K, V]) (float64, bool) { return Mean(s) }
