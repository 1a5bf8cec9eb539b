// Package str provides curried string helpers that slot into [fn.Pipe] and
// the sequence combinators.
//
// Every helper taking parameters returns a func(string) string so it can be
// configured once and reused:
//
//	title := fn.Pipe("  Héllo, Wörld! ", str.Trim(""), str.Slug("-"))
//	// "hello-world"
package str

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Words splits s into words on whitespace, punctuation and case or digit
// boundaries.
func Words(s string) []string { return lo.Words(s) }

// Camel returns s in camelCase.
func Camel(s string) string { return lo.CamelCase(s) }

// Snake returns s in snake_case.
func Snake(s string) string { return lo.SnakeCase(s) }

// Kebab returns s in kebab-case.
func Kebab(s string) string { return lo.KebabCase(s) }

// Slug returns a function producing a lowercase slug: diacritics are
// removed, and the remaining words are joined with sep.
func Slug(sep string) func(string) string {
	return func(s string) string {
		// A chained transformer keeps state, so build one per call.
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		plain, _, err := transform.String(t, s)
		if err != nil {
			plain = s
		}
		return strings.Join(lo.Words(strings.ToLower(plain)), sep)
	}
}

// Truncate returns a function shortening strings longer than n runes to n
// runes, the last three of which are "...". Surrounding whitespace is
// trimmed first and the cut never splits a multi-byte character.
func Truncate(n int) func(string) string {
	return func(s string) string {
		s = strings.TrimSpace(s)
		if lo.RuneLength(s) <= n {
			return s
		}
		if n <= 3 {
			return "..."
		}
		return strings.TrimSpace(lo.Substring(s, 0, uint(n-3))) + "..."
	}
}

// PadLeft returns a function left-padding strings to n runes by repeating
// pad. Strings already n runes or longer, and an empty pad, leave the input
// unchanged.
func PadLeft(n int, pad string) func(string) string {
	return func(s string) string { return padding(s, n, pad) + s }
}

// PadRight is [PadLeft] on the right-hand side.
func PadRight(n int, pad string) func(string) string {
	return func(s string) string { return s + padding(s, n, pad) }
}

func padding(s string, n int, pad string) string {
	need := n - lo.RuneLength(s)
	if need <= 0 || pad == "" {
		return ""
	}
	p := []rune(strings.Repeat(pad, need/lo.RuneLength(pad)+1))
	return string(p[:need])
}

// Trim returns a function removing leading and trailing runes in cutset.
// An empty cutset trims Unicode whitespace.
func Trim(cutset string) func(string) string {
	if cutset == "" {
		return strings.TrimSpace
	}
	return func(s string) string { return strings.Trim(s, cutset) }
}

// Replace returns a function replacing every occurrence of old with repl.
func Replace(old, repl string) func(string) string {
	return func(s string) string { return strings.ReplaceAll(s, old, repl) }
}
