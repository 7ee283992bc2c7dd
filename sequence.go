package parse

// Succeed builds a parser that consumes nothing and yields value.
func Succeed[A any](value A) Parser[A] {
	return newParser(func(input string) (A, string, *Error) {
		return value, input, nil
	})
}

// Fail builds a parser that consumes nothing and fails with err.
func Fail[A any](err *Error) Parser[A] {
	return newParser(func(input string) (A, string, *Error) {
		var zero A
		return zero, input, err
	})
}

// Succeed2 wraps a two-argument function as a curried chain so it can
// be threaded through repeated Keep applications:
//
//	parse.Keep(parse.Keep(parse.Succeed2(f), pa), pb)
func Succeed2[A, B, C any](f func(A, B) C) Parser[func(A) func(B) C] {
	return Succeed(func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
}

// Succeed3 is Succeed2 for three-argument functions.
func Succeed3[A, B, C, D any](f func(A, B, C) D) Parser[func(A) func(B) func(C) D] {
	return Succeed(func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	})
}

// Succeed4 is Succeed2 for four-argument functions.
func Succeed4[A, B, C, D, E any](f func(A, B, C, D) E) Parser[func(A) func(B) func(C) func(D) E] {
	return Succeed(func(a A) func(B) func(C) func(D) E {
		return func(b B) func(C) func(D) E {
			return func(c C) func(D) E {
				return func(d D) E { return f(a, b, c, d) }
			}
		}
	})
}

// Keep runs pf to obtain a function, then pa on the remainder to
// obtain its argument, and yields the application. Together with
// Succeed2..4 and Drop it forms the pipeline style of building one
// structured value from a sequence of parsers.
func Keep[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Map2(pf, pa, func(f func(A) B, a A) B { return f(a) })
}

// Drop runs keeper, then ignorer on its remainder, and yields only the
// keeper's value. Use it to require but discard structural tokens such
// as punctuation.
func Drop[A, B any](keeper Parser[A], ignorer Parser[B]) Parser[A] {
	return Map2(keeper, ignorer, func(a A, _ B) A { return a })
}

// Optional converts any failure of p into a success with a nil value,
// consuming nothing in that case. It never fails.
func Optional[A any](p Parser[A]) Parser[*A] {
	return newParser(func(input string) (*A, string, *Error) {
		value, rest, err := p.step(input)
		if err != nil {
			return nil, input, nil
		}
		return &value, rest, nil
	})
}

// FromResult lifts an already-computed value or failure into a parser
// that consumes nothing. It is the usual adapter inside Then when a
// parsed value needs post-validation.
func FromResult[A any](value A, err *Error) Parser[A] {
	if err != nil {
		return Fail[A](err)
	}
	return Succeed(value)
}

// FromOption lifts an optional value into a parser that consumes
// nothing, failing with a Custom error carrying reason when value is
// nil.
func FromOption[A any](value *A, reason string) Parser[A] {
	if value == nil {
		return Fail[A](Custom(reason))
	}
	return Succeed(*value)
}
