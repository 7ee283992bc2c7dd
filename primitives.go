package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Predicate decides whether a single grapheme cluster should be
// consumed by TakeIf, TakeWhile and TakeIfAndWhile.
type Predicate func(grapheme string) bool

// ByRune adapts a rune predicate such as unicode.IsUpper into a
// Predicate. The resulting predicate holds only for clusters made of a
// single rune that satisfies pred.
func ByRune(pred func(r rune) bool) Predicate {
	return func(grapheme string) bool {
		r, size := utf8.DecodeRuneInString(grapheme)
		return size == len(grapheme) && pred(r)
	}
}

// IsDigit reports whether the grapheme is a single ASCII digit. It is
// the predicate behind Int and Float.
func IsDigit(grapheme string) bool {
	return len(grapheme) == 1 && grapheme[0] >= '0' && grapheme[0] <= '9'
}

func firstGrapheme(input string) (cluster, rest string) {
	cluster, rest, _, _ = uniseg.FirstGraphemeClusterInString(input, -1)
	return cluster, rest
}

// Any consumes and returns the next grapheme cluster. It fails with an
// EOF error on empty input.
func Any() Parser[string] {
	return newParser(func(input string) (string, string, *Error) {
		if input == "" {
			return "", input, eofError()
		}
		cluster, rest := firstGrapheme(input)
		return cluster, rest, nil
	})
}

// EOF succeeds only when the input is exhausted. Compose it after
// another parser to reject trailing unconsumed input.
func EOF() Parser[Unit] {
	return newParser(func(input string) (Unit, string, *Error) {
		if input != "" {
			return Unit{}, input, Expected("end of file", input)
		}
		return Unit{}, input, nil
	})
}

// String consumes exactly lit from the front of the input.
func String(lit string) Parser[string] {
	return newParser(func(input string) (string, string, *Error) {
		if !strings.HasPrefix(input, lit) {
			return "", input, Expected(fmt.Sprintf("starts with %q", lit), input)
		}
		return lit, input[len(lit):], nil
	})
}

// Spaces consumes zero or more literal space characters. It never
// fails.
func Spaces() Parser[Unit] {
	return skipWhile(func(grapheme string) bool { return grapheme == " " })
}

// Whitespace consumes zero or more spaces, tabs and newlines. It never
// fails.
func Whitespace() Parser[Unit] {
	return skipWhile(func(grapheme string) bool {
		switch grapheme {
		case " ", "\t", "\n", "\r", "\r\n":
			return true
		}
		return false
	})
}

func skipWhile(pred Predicate) Parser[Unit] {
	taker := TakeWhile(pred)
	return newParser(func(input string) (Unit, string, *Error) {
		_, rest, _ := taker.step(input)
		return Unit{}, rest, nil
	})
}

// TakeIf consumes a single grapheme cluster satisfying pred. It
// consumes nothing on failure: the error is EOF on empty input and
// UnexpectedInput when the predicate rejects the cluster.
func TakeIf(pred Predicate) Parser[string] {
	return newParser(func(input string) (string, string, *Error) {
		if input == "" {
			return "", input, eofError()
		}
		cluster, rest := firstGrapheme(input)
		if !pred(cluster) {
			return "", input, UnexpectedInput(input)
		}
		return cluster, rest, nil
	})
}

// TakeWhile consumes the maximal prefix whose grapheme clusters all
// satisfy pred. The prefix may be empty; TakeWhile never fails.
func TakeWhile(pred Predicate) Parser[string] {
	return newParser(func(input string) (string, string, *Error) {
		rest := input
		state := -1
		for rest != "" {
			cluster, tail, _, next := uniseg.FirstGraphemeClusterInString(rest, state)
			if !pred(cluster) {
				break
			}
			rest = tail
			state = next
		}
		return input[:len(input)-len(rest)], rest, nil
	})
}

// TakeIfAndWhile consumes one or more grapheme clusters satisfying
// pred: TakeIf for the first, TakeWhile for the rest. It fails exactly
// when TakeIf fails.
func TakeIfAndWhile(pred Predicate) Parser[string] {
	return Map2(TakeIf(pred), TakeWhile(pred), func(head, tail string) string {
		return head + tail
	})
}

// Int parses one or more ASCII digits as a base-10 integer.
func Int() Parser[int] {
	return Then(TakeIfAndWhile(IsDigit), func(digits string) Parser[int] {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Fail[int](UnexpectedInput(digits))
		}
		return Succeed(n)
	})
}

// Float parses digits, a literal dot and more digits as a float.
// Inputs such as "12." or ".5" are rejected.
func Float() Parser[float64] {
	digits := TakeIfAndWhile(IsDigit)
	text := Map2(
		digits,
		Map2(String("."), digits, func(dot, frac string) string { return dot + frac }),
		func(whole, frac string) string { return whole + frac },
	)
	return Then(text, func(s string) Parser[float64] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Fail[float64](UnexpectedInput(s))
		}
		return Succeed(f)
	})
}
