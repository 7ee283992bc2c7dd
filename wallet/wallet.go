// Package wallet parses currency listings such as "10.50 USD, 3 EUR"
// into a wallet of holdings. Amounts for the same currency are merged
// by addition; unknown currency codes are rejected during parsing.
package wallet

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/dhamidi/parse"
)

// Currency is an ISO 4217 style three-letter code.
type Currency string

const (
	CHF Currency = "CHF"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	USD Currency = "USD"
)

var currencies = map[string]Currency{
	"CHF": CHF,
	"EUR": EUR,
	"GBP": GBP,
	"JPY": JPY,
	"USD": USD,
}

// Wallet maps a currency to the total amount held in it.
type Wallet map[Currency]float64

// String renders the wallet as a canonical listing, currencies in
// alphabetical order.
func (w Wallet) String() string {
	codes := make([]string, 0, len(w))
	for c := range w {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)

	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%g %s", w[Currency(c)], c)
	}
	return strings.Join(parts, ", ")
}

// Holding is a single parsed entry before merging.
type Holding struct {
	Amount   float64
	Currency Currency
}

// Parse reads a comma-separated listing of "<amount> <CODE>" entries.
// The empty (or all-whitespace) input yields an empty wallet. The
// whole input must be consumed.
//
// The empty alternative comes first so that with one_of's
// last-error-wins policy, a malformed first entry reports its own
// error (for example the Custom error for an unknown currency code)
// rather than a generic end-of-file mismatch.
func Parse(input string) (Wallet, error) {
	empty := parse.Map(
		parse.Drop(parse.Whitespace(), parse.EOF()),
		func(parse.Unit) []Holding { return nil })

	entries := parse.Map2(
		holding(),
		parse.Many(parse.Map2(
			separator(),
			holding(),
			func(_ string, h Holding) Holding { return h },
		), parse.Succeed(parse.Unit{})),
		func(first Holding, rest []Holding) []Holding {
			return append([]Holding{first}, rest...)
		})
	nonEmpty := parse.Drop(parse.Drop(entries, parse.Whitespace()), parse.EOF())

	holdings, err := parse.Run(input, parse.OneOf(empty, nonEmpty))
	if err != nil {
		return nil, err
	}

	w := make(Wallet, len(holdings))
	for _, h := range holdings {
		w[h.Currency] += h.Amount
	}
	return w, nil
}

func holding() parse.Parser[Holding] {
	return parse.Keep(
		parse.Drop(
			parse.Keep(
				parse.Succeed2(func(amount float64, c Currency) Holding {
					return Holding{Amount: amount, Currency: c}
				}),
				amount()),
			parse.Spaces()),
		currency())
}

func amount() parse.Parser[float64] {
	return parse.Map2(
		parse.Whitespace(),
		parse.OneOf(
			parse.Float(),
			parse.Map(parse.Int(), func(n int) float64 { return float64(n) }),
		),
		func(_ parse.Unit, f float64) float64 { return f },
	)
}

// currency parses a run of uppercase letters and validates it against
// the known code set.
func currency() parse.Parser[Currency] {
	letters := parse.TakeIfAndWhile(parse.ByRune(unicode.IsUpper))
	return parse.Then(letters, func(code string) parse.Parser[Currency] {
		c, ok := currencies[code]
		var known *Currency
		if ok {
			known = &c
		}
		return parse.FromOption(known, fmt.Sprintf("unknown currency code %q", code))
	})
}

func separator() parse.Parser[string] {
	return parse.Map2(
		parse.Whitespace(),
		parse.String(","),
		func(_ parse.Unit, s string) string { return s },
	)
}
