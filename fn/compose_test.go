package fn_test

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/mo"

	"github.com/faustbrian/fp-sub001/fn"
)

func inc(n int) int    { return n + 1 }
func double(n int) int { return n * 2 }

func TestIdentity(t *testing.T) {
	if fn.Identity(5) != 5 || fn.Identity("x") != "x" {
		t.Fatal("Identity mismatch")
	}
}

func TestComposeRightToLeft(t *testing.T) {
	// double first, then inc.
	if got := fn.Compose(inc, double)(5); got != 11 {
		t.Fatalf("Compose(inc, double)(5) = %d; want 11", got)
	}
	if got := fn.Compose[int]()(5); got != 5 {
		t.Fatalf("Compose()(5) = %d; want 5", got)
	}
}

func TestCompose2(t *testing.T) {
	length := fn.Compose2(func(s string) int { return len(s) }, strings.TrimSpace)
	if got := length("  abc "); got != 3 {
		t.Fatalf("Compose2 = %d; want 3", got)
	}
}

func TestPipeLeftToRight(t *testing.T) {
	// inc first, then double.
	if got := fn.Pipe(5, inc, double); got != 12 {
		t.Fatalf("Pipe(5, inc, double) = %d; want 12", got)
	}
	if got := fn.Pipe(5); got != 5 {
		t.Fatalf("Pipe(5) = %d", got)
	}
}

func TestPipe2Pipe3(t *testing.T) {
	if got := fn.Pipe2(41, inc, strconv.Itoa); got != "42" {
		t.Fatalf("Pipe2 = %q", got)
	}
	got := fn.Pipe3("7", func(s string) int { n, _ := strconv.Atoi(s); return n }, double, strconv.Itoa)
	if got != "14" {
		t.Fatalf("Pipe3 = %q", got)
	}
}

func TestPartial(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	if got := fn.Partial(sub, 10)(3); got != 7 {
		t.Fatalf("Partial = %d; want 7", got)
	}
	if got := fn.PartialRight(sub, 10)(3); got != -7 {
		t.Fatalf("PartialRight = %d; want -7", got)
	}
}

func TestPartialNPrependsBoundArgs(t *testing.T) {
	join := func(parts ...string) string { return strings.Join(parts, ",") }
	if got := fn.PartialN(join, "a", "b")("c", "d"); got != "a,b,c,d" {
		t.Fatalf("PartialN = %q", got)
	}
}

func TestFlip(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	if got := fn.Flip(sub)(3, 10); got != 7 {
		t.Fatalf("Flip(sub)(3, 10) = %d; want 7", got)
	}
}

func TestApply(t *testing.T) {
	sum := func(ns ...int) int {
		total := 0
		for _, n := range ns {
			total += n
		}
		return total
	}
	if got := fn.Apply(sum)([]int{1, 2, 3}); got != 6 {
		t.Fatalf("Apply = %d", got)
	}
}

func TestApFunctionMajor(t *testing.T) {
	got := fn.Ap([]func(int) int{inc, double})([]int{1, 2, 3})
	want := []int{2, 3, 4, 2, 4, 6}
	if !slices.Equal(got, want) {
		t.Fatalf("Ap = %v; want %v", got, want)
	}
}

func TestJuxt(t *testing.T) {
	got := fn.Juxt(inc, double, fn.Identity[int])(5)
	if !slices.Equal(got, []int{6, 10, 5}) {
		t.Fatalf("Juxt = %v", got)
	}
}

func TestMaybe(t *testing.T) {
	called := false
	f := fn.Maybe(func(n int) string { called = true; return strconv.Itoa(n) })

	if got := f(mo.None[int]()); got.IsPresent() || called {
		t.Fatal("Maybe called f for an absent value")
	}
	if got := f(mo.Some(3)); got.OrEmpty() != "3" {
		t.Fatalf("Maybe(Some(3)) = %v", got)
	}
}

func TestMaybePtr(t *testing.T) {
	f := fn.MaybePtr(double)
	if f(nil) != nil {
		t.Fatal("MaybePtr(nil) should be nil")
	}
	n := 4
	if got := f(&n); got == nil || *got != 8 {
		t.Fatalf("MaybePtr(&4) = %v", got)
	}
}

func TestTapReturnsArgument(t *testing.T) {
	var seen []int
	tap := fn.Tap(func(n int) { seen = append(seen, n) })
	if got := tap(3); got != 3 {
		t.Fatalf("Tap = %d", got)
	}
	if !slices.Equal(seen, []int{3}) {
		t.Fatalf("side effect saw %v", seen)
	}
}

func TestTapEPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	tap := fn.TapE(func(n int) error {
		if n < 0 {
			return boom
		}
		return nil
	})
	if v, err := tap(2); err != nil || v != 2 {
		t.Fatalf("TapE(2) = %d, %v", v, err)
	}
	if v, err := tap(-1); !errors.Is(err, boom) || v != 0 {
		t.Fatalf("TapE(-1) = %d, %v", v, err)
	}
}
