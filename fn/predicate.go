package fn

import (
	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/types"
)

// And returns a predicate that holds when every pred holds. Predicates run
// left to right and evaluation stops at the first one that fails. With no
// predicates the result is always true.
func And[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that holds when any pred holds. Predicates run left
// to right and evaluation stops at the first one that succeeds. With no
// predicates the result is always false.
func Or[T any](preds ...func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not negates pred.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// And2 is [And] for two-argument predicates such as (value, key).
func And2[A, B any](preds ...func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool {
		for _, p := range preds {
			if !p(a, b) {
				return false
			}
		}
		return true
	}
}

// Or2 is [Or] for two-argument predicates.
func Or2[A, B any](preds ...func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool {
		for _, p := range preds {
			if p(a, b) {
				return true
			}
		}
		return false
	}
}

// Not2 negates a two-argument predicate.
func Not2[A, B any](pred func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool { return !pred(a, b) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparisons against a captured bound
// ─────────────────────────────────────────────────────────────────────────────

// Gt returns a predicate reporting whether its argument is > bound.
func Gt[T types.Ordered](bound T) func(T) bool { return is.GreaterThan(bound) }

// Gte returns a predicate reporting whether its argument is >= bound.
func Gte[T types.Ordered](bound T) func(T) bool { return is.GreaterOrEqualTo(bound) }

// Lt returns a predicate reporting whether its argument is < bound.
func Lt[T types.Ordered](bound T) func(T) bool { return is.LessThan(bound) }

// Lte returns a predicate reporting whether its argument is <= bound.
func Lte[T types.Ordered](bound T) func(T) bool { return is.LessOrEqualTo(bound) }

// Eq returns a predicate reporting whether its argument == x.
func Eq[T comparable](x T) func(T) bool { return is.EqualTo(x) }
