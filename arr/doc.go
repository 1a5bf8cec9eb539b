// Package arr provides eager combinators over key/value sequences, in the
// spirit of Laravel's Arr facade and PHP's array_* functions.
//
// Every function takes an [iter.Seq2] as its first argument and reads it
// left to right exactly once, or only up to the deciding entry for
// [Contains], [Every], [Some], [First] and [TakeWhile]. Any source works:
// a slice through [seq.FromSlice], an [ordered.Map] through its All method,
// a generator wrapped with [seq.Once], or a pulled [seq.Cursor].
//
// # Keys
//
// Each function follows one fixed key rule:
//
//   - Key preserving, returning an [ordered.Map]: [Map], [MapWithKeys],
//     [Filter], [FilterWithKeys], [Reject], [Partition], [SortBy],
//     [SortWith], [Reverse], [Pluck], [TakeWhile], [DropWhile], [AppendKey],
//     [Append], [PrependKey], [KeyedValues].
//   - Renumbering, returning a slice: [FlatMap], [Zip], [ZipWith],
//     [Sequence], [Init], [Tail], [Prepend], [Values], and the outer level
//     of [Chunk].
//   - New keys from a callback: [IndexBy], [KeyedMap], [GroupBy].
//
// The lazy forms of Map, Filter, TakeWhile, DropWhile and Chunk live in
// package seq and follow the same rules.
//
//	users := seq.FromSlice(all)
//	active := arr.Filter(users, func(u User) bool { return u.Active })
//	byTeam := arr.GroupBy(active.All(), func(u User) string { return u.Team })
//
// # Currying
//
// Functions are data-first. Bind the trailing argument with
// [fn.PartialRight] to get a reusable unary step:
//
//	double := fn.PartialRight(arr.Map[int, int, int], func(n int) int { return n * 2 })
//	double(seq.Of(1, 2, 3)) // [0:2 1:4 2:6]
//
// # Errors
//
// [Chunk] rejects a size below 1 with [ErrInvalidChunkSize] before reading
// its input. Panics from callbacks propagate unchanged.
package arr
