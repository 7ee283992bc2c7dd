// Package calc evaluates arithmetic expressions over + - * / with
// parentheses and the usual precedence. It is a small consumer of the
// combinator engine: the grammar is three layered rules (expression,
// term, factor) tied back together through Lazy.
//
// Parsing and evaluation are separate passes. The parser only builds a
// node tree; division by zero is detected while walking it, so the
// error surfaces no matter how deeply the offending division is
// nested. Raising it during the parse would not work: repetition
// backtracks over a failed tail, turning the specific error into a
// generic end-of-file mismatch.
package calc

import (
	"github.com/dhamidi/parse"
)

// Eval parses and evaluates input as a single arithmetic expression.
// The whole input must be consumed. Division by zero fails with a
// Custom error.
func Eval(input string) (float64, error) {
	full := parse.Drop(parse.Drop(expression(), parse.Whitespace()), parse.EOF())
	root, err := parse.Run(input, full)
	if err != nil {
		return 0, err
	}
	return root.eval()
}

// node is either a leaf (op empty, leaf holds the number) or a binary
// operation on two subtrees.
type node struct {
	leaf  float64
	op    string
	left  *node
	right *node
}

func (n *node) eval() (float64, error) {
	if n.op == "" {
		return n.leaf, nil
	}
	left, err := n.left.eval()
	if err != nil {
		return 0, err
	}
	right, err := n.right.eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, parse.Custom("division by zero")
		}
		return left / right, nil
	}
	return 0, parse.BadParser("unknown operator " + n.op)
}

type opApp struct {
	op    string
	right *node
}

// expression parses term (("+" | "-") term)*, folding left so that
// "1 - 2 - 3" means "(1 - 2) - 3".
func expression() parse.Parser[*node] {
	return chain(term, "+", "-")
}

// term parses factor (("*" | "/") factor)*.
func term() parse.Parser[*node] {
	return chain(factor, "*", "/")
}

// chain parses element (op element)* for the given operators and folds
// the applications into a left-leaning tree.
func chain(element func() parse.Parser[*node], ops ...string) parse.Parser[*node] {
	rest := parse.Map2(
		operator(ops...),
		parse.Lazy(element),
		func(op string, right *node) opApp { return opApp{op: op, right: right} },
	)
	return parse.Map2(parse.Lazy(element), many0(rest), func(left *node, apps []opApp) *node {
		for _, app := range apps {
			left = &node{op: app.op, left: left, right: app.right}
		}
		return left
	})
}

// factor parses a number or a parenthesised subexpression.
func factor() parse.Parser[*node] {
	paren := parse.Map2(
		token("("),
		parse.Drop(parse.Lazy(expression), token(")")),
		func(_ string, inner *node) *node { return inner },
	)
	return parse.OneOf(paren, number())
}

func number() parse.Parser[*node] {
	magnitude := parse.OneOf(
		parse.Float(),
		parse.Map(parse.Int(), func(n int) float64 { return float64(n) }),
	)
	return lexeme(parse.Map2(
		parse.Optional(parse.String("-")),
		magnitude,
		func(minus *string, f float64) *node {
			if minus != nil {
				f = -f
			}
			return &node{leaf: f}
		},
	))
}

func operator(ops ...string) parse.Parser[string] {
	alternatives := make([]parse.Parser[string], len(ops))
	for i, op := range ops {
		alternatives[i] = token(op)
	}
	return parse.OneOf(alternatives...)
}

func token(lit string) parse.Parser[string] {
	return lexeme(parse.String(lit))
}

func lexeme[A any](p parse.Parser[A]) parse.Parser[A] {
	return parse.Map2(parse.Whitespace(), p, func(_ parse.Unit, v A) A { return v })
}

// many0 is Many without a separator between elements.
func many0[A any](p parse.Parser[A]) parse.Parser[[]A] {
	return parse.Many(p, parse.Succeed(parse.Unit{}))
}
