package seq

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/faustbrian/fp-sub001/ordered"
)

type (
	// Mapper transforms a value of type V into a value of type R.
	Mapper[V, R any] func(v V) R

	// KeyedMapper transforms a value using its key as well.
	KeyedMapper[K, V, R any] func(v V, k K) R

	// Predicate reports whether a value should be kept.
	Predicate[V any] func(v V) bool

	// KeyedPredicate reports whether a value should be kept, given its key.
	KeyedPredicate[K, V any] func(v V, k K) bool
)

// Map lazily applies fn to every value of s. Keys are preserved.
func Map[K, V, R any](s iter.Seq2[K, V], fn Mapper[V, R]) iter.Seq2[K, R] {
	return func(yield func(K, R) bool) {
		for k, v := range s {
			if !yield(k, fn(v)) {
				return
			}
		}
	}
}

// MapWithKeys lazily applies fn(value, key) to every entry of s. Keys are
// preserved.
func MapWithKeys[K, V, R any](s iter.Seq2[K, V], fn KeyedMapper[K, V, R]) iter.Seq2[K, R] {
	return func(yield func(K, R) bool) {
		for k, v := range s {
			if !yield(k, fn(v, k)) {
				return
			}
		}
	}
}

// Filter lazily keeps the entries whose value satisfies pred. A nil pred
// keeps the [Truthy] values. Keys are preserved.
func Filter[K, V any](s iter.Seq2[K, V], pred Predicate[V]) iter.Seq2[K, V] {
	if pred == nil {
		pred = Truthy[V]
	}
	return func(yield func(K, V) bool) {
		for k, v := range s {
			if pred(v) && !yield(k, v) {
				return
			}
		}
	}
}

// FilterWithKeys lazily keeps the entries for which pred(value, key) holds.
// Keys are preserved.
func FilterWithKeys[K, V any](s iter.Seq2[K, V], pred KeyedPredicate[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range s {
			if pred(v, k) && !yield(k, v) {
				return
			}
		}
	}
}

// TakeWhile yields entries while pred holds and stops for good at the first
// value that fails it. Keys are preserved.
func TakeWhile[K, V any](s iter.Seq2[K, V], pred Predicate[V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range s {
			if !pred(v) {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// DropWhile skips the leading entries for which pred holds, then yields
// everything else, whether or not pred holds again later. Keys are
// preserved.
func DropWhile[K, V any](s iter.Seq2[K, V], pred Predicate[V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		dropping := true
		for k, v := range s {
			if dropping {
				if pred(v) {
					continue
				}
				dropping = false
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Chunk groups s into ordered maps of at most size entries. The outer index
// is renumbered from 0; keys inside each chunk are preserved. Only the last
// chunk may be shorter.
//
// Each chunk takes exactly size entries from s. Entries repeating a key
// already in the chunk overwrite it in place, so with duplicate keys a chunk
// holds fewer than size keys and the chunks no longer add up to the input.
//
// size is validated here, before s is touched.
func Chunk[K comparable, V any](s iter.Seq2[K, V], size int) (iter.Seq2[int, *ordered.Map[K, V]], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	return func(yield func(int, *ordered.Map[K, V]) bool) {
		index, n := 0, 0
		chunk := ordered.New[K, V](size)
		for k, v := range s {
			chunk.Set(k, v)
			n++
			if n == size {
				if !yield(index, chunk) {
					return
				}
				index++
				n = 0
				chunk = ordered.New[K, V](size)
			}
		}
		if n > 0 {
			yield(index, chunk)
		}
	}, nil
}

// Zip yields, for each position i, the i-th value of every input in input
// order. It stops at the end of the shortest input; output keys are 0, 1, ….
func Zip[K, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[int, []V] {
	return func(yield func(int, []V) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (K, V, bool), len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull2(s)
			defer stop()
			nexts[i] = next
		}
		for i := 0; ; i++ {
			tuple := make([]V, len(nexts))
			for j, next := range nexts {
				_, v, ok := next()
				if !ok {
					return
				}
				tuple[j] = v
			}
			if !yield(i, tuple) {
				return
			}
		}
	}
}

// Zip2 pairs the values of two sequences of different types position by
// position, stopping at the shorter one.
func Zip2[KA, A, KB, B any](a iter.Seq2[KA, A], b iter.Seq2[KB, B]) iter.Seq2[int, types.Pair[A, B]] {
	return func(yield func(int, types.Pair[A, B]) bool) {
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		i := 0
		for _, va := range a {
			_, vb, ok := nextB()
			if !ok {
				return
			}
			if !yield(i, types.Pair[A, B]{Left: va, Right: vb}) {
				return
			}
			i++
		}
	}
}

// Truthy reports whether v counts as true for a default filter: false,
// nil pointers, interfaces, funcs and channels, empty strings, slices and
// maps, and the zero value of any other type are falsy.
func Truthy[V any](v V) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}
