package seq_test

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/faustbrian/fp-sub001/ordered"
	"github.com/faustbrian/fp-sub001/seq"
)

// collect drains s into parallel key and value slices.
func collect[K, V any](s iter.Seq2[K, V]) ([]K, []V) {
	var keys []K
	var values []V
	for k, v := range s {
		keys = append(keys, k)
		values = append(values, v)
	}
	return keys, values
}

// sliceCursor is a one-shot cursor over a slice, keyed by index.
type sliceCursor struct {
	items []string
	pos   int
	pulls int
}

func (c *sliceCursor) Next() (int, string, bool) {
	c.pulls++
	if c.pos >= len(c.items) {
		return 0, "", false
	}
	i := c.pos
	c.pos++
	return i, c.items[i], true
}

// ─── Adapters ─────────────────────────────────────────────────────────────────

func TestFromSlice(t *testing.T) {
	keys, values := collect(seq.FromSlice([]string{"a", "b"}))
	if diff := cmp.Diff([]int{0, 1}, keys); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, values); diff != "" {
		t.Fatalf("values (-want +got):\n%s", diff)
	}
}

func TestFromIterable(t *testing.T) {
	m := ordered.New[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)

	for range 2 {
		keys, values := collect(seq.From(m))
		if !slices.Equal(keys, []string{"x", "y"}) || !slices.Equal(values, []int{1, 2}) {
			t.Fatalf("From = %v %v", keys, values)
		}
	}
}

func TestFromCursorIsShared(t *testing.T) {
	c := &sliceCursor{items: []string{"a", "b", "c"}}
	s := seq.FromCursor(c)

	for _, v := range s {
		if v == "a" {
			break
		}
	}
	_, rest := collect(s)
	if !slices.Equal(rest, []string{"b", "c"}) {
		t.Fatalf("second range = %v; want [b c]", rest)
	}
}

func TestOnce(t *testing.T) {
	s := seq.Once(seq.Of(1, 2, 3))
	_, first := collect(s)
	_, second := collect(s)
	if !slices.Equal(first, []int{1, 2, 3}) {
		t.Fatalf("first range = %v", first)
	}
	if len(second) != 0 {
		t.Fatalf("second range = %v; want empty", second)
	}
}

func TestPull(t *testing.T) {
	c, stop := seq.Pull(seq.Of("a", "b"))
	defer stop()

	k, v, ok := c.Next()
	if !ok || k != 0 || v != "a" {
		t.Fatalf("Next = %d %q %v", k, v, ok)
	}
	k, v, ok = c.Next()
	if !ok || k != 1 || v != "b" {
		t.Fatalf("Next = %d %q %v", k, v, ok)
	}
	if _, _, ok := c.Next(); ok {
		t.Fatal("cursor should be exhausted")
	}
}

// ─── Generators ───────────────────────────────────────────────────────────────

func TestIterate(t *testing.T) {
	powers := seq.Iterate(1, func(n int) int { return n * 2 })
	keys, values := collect(seq.Take(powers, 5))
	if !slices.Equal(values, []int{1, 2, 4, 8, 16}) {
		t.Fatalf("values = %v", values)
	}
	if !slices.Equal(keys, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("keys = %v", keys)
	}

	// A new range starts from the seed again.
	_, again := collect(seq.Take(powers, 2))
	if !slices.Equal(again, []int{1, 2}) {
		t.Fatalf("second range = %v", again)
	}
}

func TestIterateIsLazy(t *testing.T) {
	calls := 0
	s := seq.Iterate(0, func(n int) int { calls++; return n + 1 })
	for _, v := range s {
		if v == 3 {
			break
		}
	}
	if calls != 3 {
		t.Fatalf("transform ran %d times; want 3", calls)
	}
}

func TestIteratePulledCursorDoesNotRestart(t *testing.T) {
	c, stop := seq.Pull(seq.Iterate(10, func(n int) int { return n + 1 }))
	defer stop()
	c.Next()
	c.Next()
	if _, v, _ := c.Next(); v != 12 {
		t.Fatalf("third pull = %d; want 12", v)
	}
}

func TestNth(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	cases := []struct{ n, want int }{{1, 5}, {2, 6}, {10, 14}}
	for _, tc := range cases {
		got, err := seq.Nth(tc.n, 5, inc)
		if err != nil {
			t.Fatalf("Nth(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("Nth(%d) = %d; want %d", tc.n, got, tc.want)
		}
	}
}

func TestNthInvalidPosition(t *testing.T) {
	called := false
	_, err := seq.Nth(0, 1, func(n int) int { called = true; return n })
	if !errors.Is(err, seq.ErrInvalidPosition) {
		t.Fatalf("err = %v; want ErrInvalidPosition", err)
	}
	if called {
		t.Fatal("transform ran for an invalid position")
	}
}

// ─── Slicing & renumbering ────────────────────────────────────────────────────

func TestTakeStopsPulling(t *testing.T) {
	c := &sliceCursor{items: []string{"a", "b", "c", "d"}}
	_, got := collect(seq.Take(seq.FromCursor(c), 2))
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("Take = %v", got)
	}
	if c.pulls != 2 {
		t.Fatalf("cursor pulled %d times; want 2", c.pulls)
	}
}

func TestTakeNonPositive(t *testing.T) {
	_, got := collect(seq.Take(seq.Of(1, 2), 0))
	if len(got) != 0 {
		t.Fatalf("Take(0) = %v", got)
	}
}

func TestValuesRenumbers(t *testing.T) {
	m := ordered.New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	keys, _ := collect(seq.Values(m.All()))
	if !slices.Equal(keys, []int{0, 1}) {
		t.Fatalf("keys = %v", keys)
	}
}

func TestKeys(t *testing.T) {
	got := slices.Collect(seq.Keys(seq.Of("a", "b", "c")))
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Fatalf("Keys = %v", got)
	}
}

func TestConcat(t *testing.T) {
	keys, values := collect(seq.Concat(seq.Of(1, 2), seq.Of(3)))
	if !slices.Equal(keys, []int{0, 1, 2}) || !slices.Equal(values, []int{1, 2, 3}) {
		t.Fatalf("Concat = %v %v", keys, values)
	}
}
