package fn_test

import (
	"fmt"
	"strings"

	"github.com/faustbrian/fp-sub001/fn"
)

func ExampleAnd() {
	teen := fn.And(fn.Gte(13), fn.Lt(20))
	fmt.Println(teen(12), teen(15), teen(20))
	// Output: false true false
}

func ExamplePipe() {
	shout := fn.Pipe("  hello ", strings.TrimSpace, strings.ToUpper)
	fmt.Println(shout)
	// Output: HELLO
}

func ExampleAp() {
	out := fn.Ap([]func(int) int{
		func(n int) int { return n + 1 },
		func(n int) int { return n * 10 },
	})([]int{1, 2})
	fmt.Println(out)
	// Output: [2 3 10 20]
}

func ExampleMemoize() {
	calls := 0
	slow := fn.Memoize(func(n int) int {
		calls++
		return n * n
	})
	fmt.Println(slow(5), slow(5), slow(10), calls)
	// Output: 25 25 100 2
}
