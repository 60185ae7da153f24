package shape

import (
	"reflect"
	"strings"
)

// Token identifies an event shape or a selector shape. Two shapes are the
// same iff their tokens compare equal. Tokens are usable as map keys.
type Token string

// None is the token of the empty shape, produced by a publish with no
// arguments or a handler with no parameters.
const None Token = "()"

// ForTypes derives the token for an ordered sequence of element types.
func ForTypes(types ...reflect.Type) Token {
	if len(types) == 0 {
		return None
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return Token(b.String())
}

// ForSignatures derives the token for an ordered sequence of selector
// signatures, e.g. "eq[int]" or "any".
func ForSignatures(sigs ...string) Token {
	if len(sigs) == 0 {
		return None
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, s := range sigs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return Token(b.String())
}

// OfFunc derives the event-shape token from a function's parameter list.
func OfFunc(fn reflect.Type) Token {
	types := make([]reflect.Type, fn.NumIn())
	for i := range types {
		types[i] = fn.In(i)
	}
	return ForTypes(types...)
}

func (t Token) String() string {
	return string(t)
}
