package jsonval

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/parse"
)

// Decode parses input as a single JSON document. The whole input must
// be consumed apart from surrounding whitespace.
func Decode(input string) (Value, error) {
	document := parse.Drop(parse.Drop(value(), parse.Whitespace()), parse.EOF())
	return parse.Run(input, document)
}

// lexeme skips leading whitespace before p.
func lexeme[A any](p parse.Parser[A]) parse.Parser[A] {
	return parse.Map2(parse.Whitespace(), p, func(_ parse.Unit, v A) A { return v })
}

func symbol(lit string) parse.Parser[string] {
	return lexeme(parse.String(lit))
}

// value parses any JSON value. Alternatives are ordered most to least
// specific: "true"/"false"/"null" are plain literals, numbers try the
// fractional form before the integer form, and the two composite forms
// recurse through Lazy.
func value() parse.Parser[Value] {
	return lexeme(parse.OneOf(
		parse.Map(parse.String("null"), func(string) Value { return Null{} }),
		parse.Map(parse.String("true"), func(string) Value { return Bool(true) }),
		parse.Map(parse.String("false"), func(string) Value { return Bool(false) }),
		number(),
		parse.Map(stringLiteral(), func(s string) Value { return String(s) }),
		parse.Lazy(array),
		parse.Lazy(object),
	))
}

func number() parse.Parser[Value] {
	magnitude := parse.OneOf(
		parse.Float(),
		parse.Map(parse.Int(), func(n int) float64 { return float64(n) }),
	)
	return parse.Map2(
		parse.Optional(parse.String("-")),
		magnitude,
		func(minus *string, f float64) Value {
			if minus != nil {
				f = -f
			}
			return Number(f)
		},
	)
}

func array() parse.Parser[Value] {
	return parse.Map(
		parse.Drop(
			parse.Map2(
				parse.String("["),
				parse.Many(parse.Lazy(value), symbol(",")),
				func(_ string, elems []Value) []Value { return elems },
			),
			symbol("]"),
		),
		func(elems []Value) Value { return Array(elems) },
	)
}

type member struct {
	key string
	val Value
}

func object() parse.Parser[Value] {
	field := parse.Keep(
		parse.Drop(
			parse.Keep(
				parse.Succeed2(func(key string, val Value) member { return member{key: key, val: val} }),
				lexeme(stringLiteral())),
			symbol(":")),
		parse.Lazy(value))

	return parse.Map(
		parse.Drop(
			parse.Map2(
				parse.String("{"),
				parse.Many(field, symbol(",")),
				func(_ string, fields []member) []member { return fields },
			),
			symbol("}"),
		),
		func(fields []member) Value {
			obj := make(Object, len(fields))
			for _, f := range fields {
				obj[f.key] = f.val
			}
			return obj
		},
	)
}

// stringLiteral parses a double-quoted JSON string including escape
// sequences.
func stringLiteral() parse.Parser[string] {
	plain := parse.TakeIfAndWhile(func(g string) bool {
		return g != `"` && g != `\`
	})
	piece := parse.OneOf(escape(), plain)
	content := parse.Map(
		parse.Many(piece, parse.Succeed(parse.Unit{})),
		func(pieces []string) string {
			text := ""
			for _, p := range pieces {
				text += p
			}
			return text
		},
	)
	return parse.Map2(
		parse.String(`"`),
		parse.Drop(content, parse.String(`"`)),
		func(_, s string) string { return s })
}

func escape() parse.Parser[string] {
	simple := parse.Then(parse.Any(), func(g string) parse.Parser[string] {
		switch g {
		case `"`, `\`, "/":
			return parse.Succeed(g)
		case "n":
			return parse.Succeed("\n")
		case "t":
			return parse.Succeed("\t")
		case "r":
			return parse.Succeed("\r")
		case "b":
			return parse.Succeed("\b")
		case "f":
			return parse.Succeed("\f")
		case "u":
			return unicodeEscape()
		}
		return parse.Fail[string](parse.Expected("escape sequence", g))
	})
	return parse.Map2(parse.String(`\`), simple, func(_, s string) string { return s })
}

// unicodeEscape parses the four hex digits of a \u escape. A high
// surrogate must be followed by a second \uXXXX low surrogate; the
// pair decodes to a single astral code point. Unpaired or mismatched
// surrogates are rejected.
func unicodeEscape() parse.Parser[string] {
	return parse.Then(hex4(), func(first rune) parse.Parser[string] {
		if !utf16.IsSurrogate(first) {
			return parse.Succeed(string(first))
		}
		if first >= 0xDC00 {
			return parse.Fail[string](parse.Custom("unpaired low surrogate in unicode escape"))
		}
		second := parse.Map2(
			parse.String(`\u`),
			hex4(),
			func(_ string, r rune) rune { return r })
		return parse.Then(second, func(low rune) parse.Parser[string] {
			combined := utf16.DecodeRune(first, low)
			if combined == utf8.RuneError {
				return parse.Fail[string](parse.Custom("invalid surrogate pair in unicode escape"))
			}
			return parse.Succeed(string(combined))
		})
	})
}

// hex4 parses exactly four hex digits as a single code unit. The
// digits are validated, so conversion cannot fail.
func hex4() parse.Parser[rune] {
	hex := parse.TakeIf(isHexDigit)
	return parse.Keep(
		parse.Keep(
			parse.Keep(
				parse.Keep(
					parse.Succeed4(func(a, b, c, d string) rune {
						code, _ := strconv.ParseUint(a+b+c+d, 16, 32)
						return rune(code)
					}),
					hex),
				hex),
			hex),
		hex)
}

func isHexDigit(g string) bool {
	if len(g) != 1 {
		return false
	}
	c := g[0]
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
