package record_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/faustbrian/fp-sub001/record"
)

type address struct {
	City string
}

type user struct {
	Name    string
	Age     int
	Tags    []string
	Email   string `mapstructure:"email"`
	Address address
}

// ─── New ──────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	u, err := record.New[user](map[string]any{"Name": "Alice", "Age": 30, "email": "a@example.com"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if u.Name != "Alice" || u.Age != 30 || u.Email != "a@example.com" {
		t.Fatalf("New = %+v", u)
	}
}

func TestNewUnknownField(t *testing.T) {
	_, err := record.New[user](map[string]any{"Name": "Alice", "Nickname": "al"})
	if !errors.Is(err, record.ErrUnknownField) {
		t.Fatalf("err = %v; want ErrUnknownField", err)
	}
}

func TestNewInvalidValue(t *testing.T) {
	_, err := record.New[user](map[string]any{"Age": "thirty"})
	if !errors.Is(err, record.ErrInvalidField) {
		t.Fatalf("err = %v; want ErrInvalidField", err)
	}
}

// ─── With ─────────────────────────────────────────────────────────────────────

func TestWithPreservesOtherFields(t *testing.T) {
	orig := user{Name: "Alice", Age: 30, Tags: []string{"a", "b"}}
	got, err := record.With(orig, map[string]any{"Age": 31})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if got.Name != "Alice" || got.Age != 31 || !slices.Equal(got.Tags, []string{"a", "b"}) {
		t.Fatalf("With = %+v", got)
	}
	if orig.Age != 30 {
		t.Fatal("With mutated the original")
	}
}

func TestWithDoesNotWriteSharedSlices(t *testing.T) {
	orig := user{Tags: []string{"a", "b"}}
	got, err := record.With(orig, map[string]any{"Tags": []string{"x"}})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if !slices.Equal(got.Tags, []string{"x"}) {
		t.Fatalf("Tags = %v", got.Tags)
	}
	if !slices.Equal(orig.Tags, []string{"a", "b"}) {
		t.Fatalf("original Tags changed to %v", orig.Tags)
	}
}

func TestWithPointer(t *testing.T) {
	orig := &user{Name: "Alice"}
	got, err := record.With(orig, map[string]any{"Name": "Bob"})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if got == orig {
		t.Fatal("With returned the same pointer")
	}
	if got.Name != "Bob" || orig.Name != "Alice" {
		t.Fatalf("got %q, orig %q", got.Name, orig.Name)
	}
}

func TestWithUnknownField(t *testing.T) {
	_, err := record.With(user{}, map[string]any{"Missing": 1})
	if !errors.Is(err, record.ErrUnknownField) {
		t.Fatalf("err = %v; want ErrUnknownField", err)
	}
}

func TestWithNoChanges(t *testing.T) {
	orig := user{Name: "Alice"}
	got, err := record.With(orig, nil)
	if err != nil || got.Name != "Alice" {
		t.Fatalf("With(nil) = %+v, %v", got, err)
	}
}
