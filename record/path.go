package record

import (
	"maps"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Get returns the value at the dot-notation path in m.
//
//	Get(m, "user.address.city") // "London", true
func Get(m map[string]any, path string) (any, bool) {
	current := m
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Has reports whether the dot-notation path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Get(m, path)
	return ok
}

// Set returns a copy of m with value stored at the dot-notation path.
// Missing intermediate maps are created; existing ones are copied, so m and
// every map nested in it are left untouched.
func Set(m map[string]any, path string, value any) map[string]any {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[string]any)
	}
	seg, rest, nested := strings.Cut(path, ".")
	if !nested {
		out[seg] = value
		return out
	}
	child, _ := out[seg].(map[string]any)
	out[seg] = Set(child, rest, value)
	return out
}

// Dot flattens nested maps into one level keyed by dot paths. An empty
// nested map is kept as a leaf.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}}) // {"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		nested, ok := v.(map[string]any)
		if !ok || len(nested) == 0 {
			out[k] = v
			continue
		}
		for sub, leaf := range Dot(nested) {
			out[k+"."+sub] = leaf
		}
	}
	return out
}

// Lookup reads the dot-notation path from a record that may be a map with
// string keys, a struct or a pointer to either, at any level of nesting. Struct fields are addressed by name or `mapstructure` tag.
//
// A missing field, a nil pointer or a non-record value along the path
// reports false; it is never an error.
func Lookup(record any, path string) (any, bool) {
	current := record
	for _, seg := range strings.Split(path, ".") {
		fields, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = fields[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return m, true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Map {
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out[it.Key().String()] = it.Value().Interface()
		}
		return out, true
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	out := make(map[string]any)
	if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
		return nil, false
	}
	return out, true
}
