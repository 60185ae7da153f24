package selector

import (
	"errors"
	"reflect"
)

// ErrUnsupported is returned when a plain value cannot be promoted to an
// equality selector because its type has no defined ordering.
var ErrUnsupported = errors.New("selector: unsupported value type for equality selector")

// Selector is a per-position selection predicate. A selector must answer the
// two primitive ordering queries against an event value of its element type;
// everything else (equality, range scans, group ordering) is derived from
// those answers.
type Selector interface {
	// Less reports whether the selector orders strictly before the event
	// value v.
	Less(v any) bool

	// Greater reports whether the event value v orders strictly before the
	// selector.
	Greater(v any) bool

	// Compare totally orders the selector against another selector of the
	// same signature. Entries with identical selector tuples compare equal.
	Compare(other Selector) int

	// Signature identifies the selector kind and element type, e.g.
	// "eq[int]", "ge[time.Time]" or "any". Selectors sharing a group always
	// share a signature.
	Signature() string

	// Type returns the event element type the selector applies to, or nil
	// for the wildcard.
	Type() reflect.Type

	String() string
}

// Any matches every value of every element type. Unsupplied trailing
// positions of a subscription default to Any.
var Any Selector = anySelector{}

type anySelector struct{}

func (anySelector) Less(any) bool             { return false }
func (anySelector) Greater(any) bool          { return false }
func (anySelector) Compare(other Selector) int { return 0 }
func (anySelector) Signature() string         { return "any" }
func (anySelector) Type() reflect.Type        { return nil }
func (anySelector) String() string            { return "any" }

// Matches reports whether the event value v satisfies the selector: neither
// side orders strictly before the other.
func Matches(s Selector, v any) bool {
	return !s.Less(v) && !s.Greater(v)
}
