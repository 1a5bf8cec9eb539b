package fn

import "github.com/samber/mo"

// Identity returns x unchanged.
func Identity[T any](x T) T { return x }

// ─────────────────────────────────────────────────────────────────────────────
// Composition
// ─────────────────────────────────────────────────────────────────────────────

// Compose returns a function that applies fns from right to left: the last
// function receives the argument and the first one produces the result.
// With no functions it is [Identity].
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Compose2 returns x → f(g(x)).
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Pipe applies fns to value from left to right and returns the final value.
func Pipe[T any](value T, fns ...func(T) T) T {
	for _, f := range fns {
		value = f(value)
	}
	return value
}

// Pipe2 returns g(f(value)).
func Pipe2[A, B, C any](value A, f func(A) B, g func(B) C) C {
	return g(f(value))
}

// Pipe3 returns h(g(f(value))).
func Pipe3[A, B, C, D any](value A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(value)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Argument handling
// ─────────────────────────────────────────────────────────────────────────────

// Partial binds the first argument of f.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// PartialRight binds the last argument of f. Applied to a data-first
// sequence function it produces the unary, data-last form.
func PartialRight[A, B, R any](f func(A, B) R, b B) func(A) R {
	return func(a A) R { return f(a, b) }
}

// PartialN returns a function that calls f with bound followed by the
// arguments it receives.
func PartialN[T, R any](f func(...T) R, bound ...T) func(...T) R {
	return func(args ...T) R {
		all := make([]T, 0, len(bound)+len(args))
		all = append(all, bound...)
		all = append(all, args...)
		return f(all...)
	}
}

// Flip swaps the two arguments of f.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R { return f(a, b) }
}

// Apply returns a function that spreads a slice into the arguments of f.
func Apply[T, R any](f func(...T) R) func([]T) R {
	return func(args []T) R { return f(args...) }
}

// Ap returns a function applying every function in fns to every value, in
// function-major order: all results of fns[0], then all results of fns[1],
// and so on.
func Ap[T, R any](fns []func(T) R) func([]T) []R {
	return func(values []T) []R {
		out := make([]R, 0, len(fns)*len(values))
		for _, f := range fns {
			for _, v := range values {
				out = append(out, f(v))
			}
		}
		return out
	}
}

// Juxt returns a function that applies every function to the same argument
// and returns the results in function order.
func Juxt[T, R any](fns ...func(T) R) func(T) []R {
	return func(v T) []R {
		out := make([]R, len(fns))
		for i, f := range fns {
			out[i] = f(v)
		}
		return out
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Absent values & side effects
// ─────────────────────────────────────────────────────────────────────────────

// Maybe lifts f over optional values: an absent input returns absent without
// calling f.
func Maybe[T, R any](f func(T) R) func(mo.Option[T]) mo.Option[R] {
	return func(o mo.Option[T]) mo.Option[R] {
		v, ok := o.Get()
		if !ok {
			return mo.None[R]()
		}
		return mo.Some(f(v))
	}
}

// MaybePtr is [Maybe] for pointers: a nil input returns nil without calling
// f.
func MaybePtr[T, R any](f func(T) R) func(*T) *R {
	return func(p *T) *R {
		if p == nil {
			return nil
		}
		r := f(*p)
		return &r
	}
}

// Tap returns a function that calls f for its effect and returns its
// argument unchanged.
func Tap[T any](f func(T)) func(T) T {
	return func(v T) T {
		f(v)
		return v
	}
}

// TapE is [Tap] for effects that can fail. When f returns an error the
// zero value and that error are returned.
func TapE[T any](f func(T) error) func(T) (T, error) {
	return func(v T) (T, error) {
		if err := f(v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}
