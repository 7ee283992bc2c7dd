package parse

// Map runs p and applies f to its value. Failures propagate unchanged.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return newParser(func(input string) (B, string, *Error) {
		value, rest, err := p.step(input)
		if err != nil {
			var zero B
			return zero, input, err
		}
		return f(value), rest, nil
	})
}

// Then runs p and, on success, feeds its value to f to obtain the next
// parser, which is then run on the remainder. This is the only
// combinator through which later parsing can depend on an earlier
// value. f is never invoked when p fails.
func Then[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return newParser(func(input string) (B, string, *Error) {
		value, rest, err := p.step(input)
		if err != nil {
			var zero B
			return zero, input, err
		}
		return f(value).step(rest)
	})
}

// Map2 runs pa, then pb on its remainder, and combines both values
// with f. It short-circuits on the first failure.
func Map2[A, B, C any](pa Parser[A], pb Parser[B], f func(A, B) C) Parser[C] {
	return newParser(func(input string) (C, string, *Error) {
		var zero C
		a, rest, err := pa.step(input)
		if err != nil {
			return zero, input, err
		}
		b, rest, err := pb.step(rest)
		if err != nil {
			return zero, input, err
		}
		return f(a, b), rest, nil
	})
}

// Lazy defers construction of a parser until it is run. Grammar rules
// that refer to themselves (nested arrays, parenthesised expressions)
// must go through Lazy, otherwise building the parser would recurse
// forever before any input is seen.
func Lazy[A any](thunk func() Parser[A]) Parser[A] {
	return newParser(func(input string) (A, string, *Error) {
		return thunk().step(input)
	})
}

// OneOf tries each parser in order, always starting from the original
// input, and returns the first success. If every alternative fails the
// error of the last one is returned, so order alternatives from most
// to least specific when diagnostics matter. An empty list fails with
// BadParser without touching the input.
func OneOf[A any](parsers ...Parser[A]) Parser[A] {
	return newParser(func(input string) (A, string, *Error) {
		var zero A
		if len(parsers) == 0 {
			return zero, input, BadParser("OneOf: no alternatives given")
		}
		var lastErr *Error
		for _, p := range parsers {
			value, rest, err := p.step(input)
			if err == nil {
				return value, rest, nil
			}
			lastErr = err
		}
		return zero, input, lastErr
	})
}
