// Package record provides copy-with-changes and named construction for
// struct types, and dot-notation path access for nested map[string]any
// records.
//
// # Evolve and construct
//
// [New] builds a struct from named fields and [With] returns a copy of an
// existing value with some fields replaced. Both decode through
// mapstructure, so field names follow the struct field name or its
// `mapstructure` tag:
//
//	type Point struct{ X, Y int }
//
//	p, _ := record.New[Point](map[string]any{"X": 1, "Y": 2})
//	q, _ := record.With(p, map[string]any{"Y": 5}) // p is unchanged
//
// Unknown field names fail with [ErrUnknownField]; values that cannot be
// converted to the field type fail with [ErrInvalidField].
//
// # Paths
//
// [Get], [Has], [Set] and [Dot] address nested maps with dot-separated
// paths. [Set] never mutates its input: it returns a new map, copying every
// nested map along the path.
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	record.Get(m, "user.name")               // → "Alice", true
//	m2 := record.Set(m, "user.city", "Oslo")  // m is unchanged
//
// [Lookup] walks the same paths through structs as well as maps and is what
// arr.Pluck uses to read a property from every element of a sequence.
package record
