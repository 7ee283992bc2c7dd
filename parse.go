// Package parse is a parser combinator library: small parsing functions
// that compose into parsers for arbitrary textual grammars without a
// grammar-description language or a code generator.
//
// A Parser[A] is built by combining primitives (Any, String, TakeWhile,
// Int, ...) with combinators (Map, Then, OneOf, Many, ...). Construction
// is pure; nothing reads the input until Run is called:
//
//	sum := parse.Keep(
//		parse.Drop(
//			parse.Keep(parse.Succeed2(func(a, b int) int { return a + b }), parse.Int()),
//			parse.String("+")),
//		parse.Int())
//	n, err := parse.Run("1+2", sum) // n == 3
//
// Parsers consume grapheme clusters (user-perceived characters), so
// multi-rune sequences such as emoji count as a single character.
package parse

// Parser is an opaque value wrapping a pure function from an input
// string to either a value and the unconsumed remainder, or an Error.
// Parsers are immutable and first-class: they may be stored, passed
// around, and combined freely. Running the same parser twice on the
// same input always yields the same result.
type Parser[A any] struct {
	step func(input string) (A, string, *Error)
}

func newParser[A any](step func(input string) (A, string, *Error)) Parser[A] {
	return Parser[A]{step: step}
}

// Unit is the result type of parsers that consume input without
// producing a meaningful value, such as EOF and Whitespace.
type Unit struct{}

// Run applies the parser to input and returns the parsed value. If the
// parser matches only a prefix of the input the rest is silently
// discarded; compose with EOF to require full consumption.
func Run[A any](input string, parser Parser[A]) (A, error) {
	value, _, err := parser.step(input)
	if err != nil {
		var zero A
		return zero, err
	}
	return value, nil
}
