// Package jsonval decodes JSON text into a small tree of typed values.
// The decoder is built entirely from the public combinator API of
// github.com/dhamidi/parse; it exists both as a usable decoder and as
// the reference consumer exercising the whole combinator algebra.
package jsonval

import (
	"sort"
	"strconv"
	"strings"
)

// Value is a decoded JSON value: one of Null, Bool, Number, String,
// Array or Object.
type Value interface {
	jsonValue()
	// Encode renders the value as compact JSON.
	Encode() string
}

type Null struct{}

type Bool bool

type Number float64

type String string

type Array []Value

// Object preserves no member order; JSON objects are unordered.
type Object map[string]Value

func (Null) jsonValue()   {}
func (Bool) jsonValue()   {}
func (Number) jsonValue() {}
func (String) jsonValue() {}
func (Array) jsonValue()  {}
func (Object) jsonValue() {}

func (Null) Encode() string { return "null" }

func (b Bool) Encode() string {
	if b {
		return "true"
	}
	return "false"
}

func (n Number) Encode() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (s String) Encode() string {
	return strconv.Quote(string(s))
}

func (a Array) Encode() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.Encode())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (o Object) Encode() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteByte(':')
		sb.WriteString(o[k].Encode())
	}
	sb.WriteByte('}')
	return sb.String()
}
