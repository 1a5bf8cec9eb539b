package fn

import (
	"encoding"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

type argKey [blake2b.Size256]byte

// keyEncoder produces the same bytes for structurally equal values: map keys
// are sorted and integers and floats use their shortest form.
var keyEncoder = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("fn: invalid CBOR encoding options: " + err.Error())
	}
	return em
}

func keyOf(args []any) (argKey, bool) {
	for _, a := range args {
		if hidden(reflect.ValueOf(a)) {
			return argKey{}, false
		}
	}
	b, err := keyEncoder.Marshal(args)
	if err != nil {
		return argKey{}, false
	}
	return blake2b.Sum256(b), true
}

// shape records what the encoder cannot see in a type. opaque is set when a
// struct field at any depth is skipped (unexported or tagged "-"), so values
// differing only there would encode alike. dynamic is set when the type holds
// interfaces whose concrete values must be inspected.
type shape struct {
	opaque, dynamic bool
}

var shapes sync.Map // reflect.Type -> shape

var (
	cborMarshaler   = reflect.TypeFor[cbor.Marshaler]()
	binaryMarshaler = reflect.TypeFor[encoding.BinaryMarshaler]()
	timeType        = reflect.TypeFor[time.Time]()
)

func shapeOf(t reflect.Type) shape {
	if sh, ok := shapes.Load(t); ok {
		return sh.(shape)
	}
	sh := scan(t, make(map[reflect.Type]bool))
	shapes.Store(t, sh)
	return sh
}

func scan(t reflect.Type, seen map[reflect.Type]bool) shape {
	if seen[t] {
		return shape{}
	}
	seen[t] = true
	if t != timeType && (t.Implements(cborMarshaler) || t.Implements(binaryMarshaler)) {
		return shape{}
	}
	switch t.Kind() {
	case reflect.Interface:
		return shape{dynamic: true}
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return scan(t.Elem(), seen)
	case reflect.Map:
		k, v := scan(t.Key(), seen), scan(t.Elem(), seen)
		return shape{opaque: k.opaque || v.opaque, dynamic: k.dynamic || v.dynamic}
	case reflect.Struct:
		var sh shape
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() || skipped(f.Tag) {
				return shape{opaque: true}
			}
			fs := scan(f.Type, seen)
			if fs.opaque {
				return fs
			}
			sh.dynamic = sh.dynamic || fs.dynamic
		}
		return sh
	}
	return shape{}
}

func skipped(tag reflect.StructTag) bool {
	name, ok := tag.Lookup("cbor")
	if !ok {
		name = tag.Get("json")
	}
	name, _, _ = strings.Cut(name, ",")
	return name == "-"
}

// hidden reports whether v holds data the key encoding would drop.
func hidden(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	sh := shapeOf(v.Type())
	if sh.opaque || !sh.dynamic {
		return sh.opaque
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return !v.IsNil() && hidden(v.Elem())
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			if hidden(v.Index(i)) {
				return true
			}
		}
	case reflect.Map:
		it := v.MapRange()
		for it.Next() {
			if hidden(it.Key()) || hidden(it.Value()) {
				return true
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if hidden(v.Field(i)) {
				return true
			}
		}
	}
	return false
}

// cache is the private store of a single memoized function.
type cache[R any] struct {
	mu      sync.Mutex
	results map[argKey]R
}

func newCache[R any]() *cache[R] {
	return &cache[R]{results: make(map[argKey]R)}
}

// do returns the cached result for args, or calls f and stores its result.
// The lock is not held while f runs, so concurrent first calls with equal
// arguments may each call f.
func (c *cache[R]) do(args []any, f func() R) R {
	key, ok := keyOf(args)
	if !ok {
		return f()
	}
	c.mu.Lock()
	r, hit := c.results[key]
	c.mu.Unlock()
	if hit {
		return r
	}
	r = f()
	c.mu.Lock()
	c.results[key] = r
	c.mu.Unlock()
	return r
}

// Memoize returns a function that calls f at most once per distinct
// argument and replays the cached result afterwards. Each call to Memoize
// creates an independent cache.
//
// Arguments the encoder cannot represent in full, such as funcs, channels
// and structs with unexported fields, bypass the cache and call f every
// time. A panic in f propagates and nothing is cached for that argument.
func Memoize[A, R any](f func(A) R) func(A) R {
	c := newCache[R]()
	return func(a A) R {
		return c.do([]any{a}, func() R { return f(a) })
	}
}

// Memoize2 is [Memoize] for two-argument functions; the key covers both
// arguments in order.
func Memoize2[A, B, R any](f func(A, B) R) func(A, B) R {
	c := newCache[R]()
	return func(a A, b B) R {
		return c.do([]any{a, b}, func() R { return f(a, b) })
	}
}

// MemoizeN is [Memoize] for variadic functions; the key covers the whole
// argument list, so (1, 2) and (1, 2, 3) are distinct entries.
//
// Keys are built from encoded values, not Go types. When T is an interface,
// arguments of different types that encode alike share an entry: int(1) and
// uint(1), or A{1} and B{1} for struct types with the same field names.
func MemoizeN[T, R any](f func(...T) R) func(...T) R {
	c := newCache[R]()
	return func(args ...T) R {
		key := make([]any, len(args))
		for i, a := range args {
			key[i] = a
		}
		return c.do(key, func() R { return f(args...) })
	}
}
