package arr

import (
	"iter"
	"slices"

	"github.com/go-softwarelab/common/pkg/types"

	"github.com/faustbrian/fp-sub001/ordered"
	"github.com/faustbrian/fp-sub001/seq"
)

// Functions in this file discard input keys; results are slices indexed
// 0, 1, ….

// Values returns the values of s in order.
func Values[K, V any](s iter.Seq2[K, V]) []V {
	out := make([]V, 0)
	for _, v := range s {
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// FlatMap concatenates the sequences returned by fn for every value. Only
// one level is flattened.
func FlatMap[K, V, KR, R any](s iter.Seq2[K, V], fn func(V) iter.Seq2[KR, R]) []R {
	out := make([]R, 0)
	for _, v := range s {
		for _, r := range fn(v) {
			out = append(out, r)
		}
	}
	return out
}

// Bind is [FlatMap].
func Bind[K, V, KR, R any](s iter.Seq2[K, V], fn func(V) iter.Seq2[KR, R]) []R {
	return FlatMap(s, fn)
}

// Chain is [FlatMap].
func Chain[K, V, KR, R any](s iter.Seq2[K, V], fn func(V) iter.Seq2[KR, R]) []R {
	return FlatMap(s, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip returns, for every position present in all inputs, the values at that
// position in input order. Its length is that of the shortest input.
func Zip[K, V any](seqs ...iter.Seq2[K, V]) [][]V {
	return Values(seq.Zip(seqs...))
}

// Zip2 pairs the values of two differently typed sequences.
func Zip2[KA, A, KB, B any](a iter.Seq2[KA, A], b iter.Seq2[KB, B]) []types.Pair[A, B] {
	return Values(seq.Zip2(a, b))
}

// ZipWith is [Zip] followed by fn applied to every tuple, one argument per
// input sequence.
func ZipWith[K, V, R any](fn func(...V) R, seqs ...iter.Seq2[K, V]) []R {
	out := make([]R, 0)
	for _, tuple := range seq.Zip(seqs...) {
		out = append(out, fn(tuple...))
	}
	return out
}

// ZipWith2 is [ZipWith] for two differently typed sequences.
func ZipWith2[KA, A, KB, B, R any](fn func(A, B) R, a iter.Seq2[KA, A], b iter.Seq2[KB, B]) []R {
	out := make([]R, 0)
	for _, p := range seq.Zip2(a, b) {
		out = append(out, fn(p.Left, p.Right))
	}
	return out
}

// Sequence transposes a sequence of sequences: row j of the result holds
// the j-th value of every inner sequence that has one, in outer order. The
// result has as many rows as the longest inner sequence; shorter inner
// sequences are simply missing from the later rows.
func Sequence[K, KI, V any](s iter.Seq2[K, iter.Seq2[KI, V]]) [][]V {
	out := make([][]V, 0)
	for _, inner := range s {
		j := 0
		for _, v := range inner {
			if j == len(out) {
				out = append(out, nil)
			}
			out[j] = append(out[j], v)
			j++
		}
	}
	return out
}

// Transpose is [Sequence].
func Transpose[K, KI, V any](s iter.Seq2[K, iter.Seq2[KI, V]]) [][]V {
	return Sequence(s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Init returns every value but the last.
func Init[K, V any](s iter.Seq2[K, V]) []V {
	out := Values(s)
	if len(out) == 0 {
		return out
	}
	return out[:len(out)-1]
}

// Tail returns every value but the first.
func Tail[K, V any](s iter.Seq2[K, V]) []V {
	out := make([]V, 0)
	first := true
	for _, v := range s {
		if first {
			first = false
			continue
		}
		out = append(out, v)
	}
	return out
}

// Prepend returns value followed by the values of s.
func Prepend[K, V any](s iter.Seq2[K, V], value V) []V {
	return slices.Insert(Values(s), 0, value)
}

// Chunk splits s into ordered maps of at most size entries. Keys inside each
// chunk are preserved; only the last chunk may be shorter. A size below 1
// returns [ErrInvalidChunkSize] without reading s.
func Chunk[K comparable, V any](s iter.Seq2[K, V], size int) ([]*ordered.Map[K, V], error) {
	chunks, err := seq.Chunk(s, size)
	if err != nil {
		return nil, err
	}
	return Values(chunks), nil
}
