package parse

// Many collects zero or more values of p separated by separator. It
// repeatedly parses p followed by separator until an attempt fails,
// then makes one final attempt to parse p alone so a trailing element
// without a separator is still captured. Input belonging to a failed
// attempt is left unconsumed. Many never fails and never requires a
// first element: with no match at all it yields an empty sequence.
//
// The traversal is an explicit loop, so call-stack depth does not grow
// with the number of elements.
func Many[A, S any](p Parser[A], separator Parser[S]) Parser[[]A] {
	return newParser(func(input string) ([]A, string, *Error) {
		var values []A
		rest := input
		for {
			value, afterValue, err := p.step(rest)
			if err != nil {
				return values, rest, nil
			}
			if _, afterSep, err := separator.step(afterValue); err == nil {
				values = append(values, value)
				rest = afterSep
				continue
			}
			// Trailing element with no separator.
			return append(values, value), afterValue, nil
		}
	})
}
