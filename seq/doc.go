// Package seq is the lazy sequence core: adapters that turn slices, ordered
// maps, re-iterable collections and one-shot cursors into a single
// [iter.Seq2] shape, plus the lazy combinators built on it.
//
// # Sources
//
// Every combinator in this module consumes an iter.Seq2[K, V]. The adapters
// below cover the three source shapes uniformly:
//
//	seq.FromSlice([]int{1, 2, 3})   // keys 0, 1, 2
//	seq.From(orderedMap)            // any value with All() iter.Seq2[K, V]
//	seq.FromCursor(cursor)          // one-shot, forward-only Next()
//
// [Once] guards a generator so that ranging over it a second time yields
// nothing, and [Pull] goes the other way, exposing any sequence as a
// [Cursor].
//
// # Laziness
//
// [Map], [MapWithKeys], [Filter], [FilterWithKeys], [TakeWhile], [DropWhile]
// and [Chunk] return sequences; no callback runs until the consumer pulls the
// corresponding element. The eager counterparts in package arr are these same
// sequences drained into an ordered map, so both forms follow one set of key
// rules:
//
//   - Map, MapWithKeys, Filter, FilterWithKeys, TakeWhile, DropWhile preserve keys.
//   - Values, Concat, Zip renumber from 0.
//   - Chunk renumbers the outer index and preserves keys inside each chunk.
//
// # Infinite sequences
//
// [Iterate] produces seed, f(seed), f(f(seed)), … forever. Bound it with
// [Take] or [TakeWhile], or jump straight to a position with [Nth]:
//
//	powers := seq.Iterate(1, func(n int) int { return n * 2 })
//	for _, p := range seq.Take(powers, 4) {
//	    fmt.Println(p) // 1 2 4 8
//	}
package seq
