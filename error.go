package parse

import "fmt"

// ErrorKind identifies why a parse failed.
type ErrorKind int

const (
	// ErrorBadParser marks structural misuse of a combinator, such as
	// calling OneOf with no alternatives.
	ErrorBadParser ErrorKind = iota
	// ErrorCustom carries a caller-supplied failure reason.
	ErrorCustom
	// ErrorEOF means the input ran out when at least one more
	// character was required.
	ErrorEOF
	// ErrorExpected means a specific token or pattern was required but
	// not found.
	ErrorExpected
	// ErrorUnexpectedInput means a predicate rejected the current
	// character.
	ErrorUnexpectedInput
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorBadParser:
		return "BadParser"
	case ErrorCustom:
		return "Custom"
	case ErrorEOF:
		return "EOF"
	case ErrorExpected:
		return "Expected"
	case ErrorUnexpectedInput:
		return "UnexpectedInput"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single failure value a parser can report. Which fields
// are set depends on Kind:
//
//   - ErrorBadParser, ErrorCustom: Message
//   - ErrorExpected: What (the required pattern) and Got (the
//     unconsumed input at the failure point)
//   - ErrorUnexpectedInput: Got (the unconsumed input at the failure
//     point)
//   - ErrorEOF: no payload
//
// Errors are terminal values. Combinators propagate the first error
// untouched; nothing wraps or annotates it on the way out.
type Error struct {
	Kind    ErrorKind
	Message string
	What    string
	Got     string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorBadParser:
		return fmt.Sprintf("bad parser: %s", e.Message)
	case ErrorCustom:
		return e.Message
	case ErrorEOF:
		return "unexpected end of input"
	case ErrorExpected:
		return fmt.Sprintf("expected %s, got %q", e.What, e.Got)
	case ErrorUnexpectedInput:
		return fmt.Sprintf("unexpected input: %q", e.Got)
	}
	return fmt.Sprintf("parse error (kind %d)", int(e.Kind))
}

// BadParser reports structural misuse of a combinator.
func BadParser(message string) *Error {
	return &Error{Kind: ErrorBadParser, Message: message}
}

// Custom reports a domain-specific failure. Use it with Then, Fail or
// FromResult to reject a value that parsed syntactically but fails
// semantic validation.
func Custom(message string) *Error {
	return &Error{Kind: ErrorCustom, Message: message}
}

// Expected reports that a specific token or pattern was required. got
// should be the unconsumed input at the failure point.
func Expected(what, got string) *Error {
	return &Error{Kind: ErrorExpected, What: what, Got: got}
}

// UnexpectedInput reports that a predicate rejected the current
// character. got should be the unconsumed input at the failure point.
func UnexpectedInput(got string) *Error {
	return &Error{Kind: ErrorUnexpectedInput, Got: got}
}

func eofError() *Error {
	return &Error{Kind: ErrorEOF}
}
