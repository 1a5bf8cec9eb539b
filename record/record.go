package record

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// New constructs a T from named fields. Fields not named keep their zero
// value.
//
//	u, err := record.New[User](map[string]any{"Name": "Alice", "Age": 30})
func New[T any](fields map[string]any) (T, error) {
	var out T
	if err := decodeInto(fields, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// With returns a copy of v with the named fields replaced and every other
// field preserved. v itself is never modified; when T is a pointer type the
// pointed-to struct is copied first.
//
// Slices and maps named in changes are replaced, not merged into the
// existing ones, so storage shared with v is not written to.
func With[T any](v T, changes map[string]any) (T, error) {
	out := v
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		cp := reflect.New(rv.Elem().Type())
		cp.Elem().Set(rv.Elem())
		out = cp.Interface().(T)
	}

	var target any = &out
	if reflect.ValueOf(out).Kind() == reflect.Pointer {
		target = out
	}
	if err := decodeInto(changes, target); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func decodeInto(fields map[string]any, target any) error {
	if reflect.ValueOf(target).IsNil() {
		return fmt.Errorf("%w: nil target", ErrInvalidField)
	}
	if len(fields) == 0 {
		return nil
	}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		Metadata:   &md,
		ZeroFields: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	if err := dec.Decode(fields); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(md.Unused, ", "))
	}
	return nil
}
