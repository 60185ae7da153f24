package bus

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cuemby/burrow/pkg/selector"
	"github.com/cuemby/burrow/pkg/shape"
)

// entry is one subscription: a handler plus one selector per parameter
// position. Entries live in exactly one group, keyed by event shape and
// selector shape, and are chained through next onto their owning linker for
// teardown.
type entry struct {
	selectors     []selector.Selector
	handler       reflect.Value
	eventShape    shape.Token
	selectorShape shape.Token

	link *linker
	grp  *group
	next *entry
}

// newEntry validates the handler against the selectors and derives both shape
// tokens. Unsupplied trailing positions default to the wildcard.
func newEntry(handler any, sels []any) (*entry, error) {
	hv := reflect.ValueOf(handler)
	if !hv.IsValid() || hv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w, got %T", ErrNotAFunction, handler)
	}
	ht := hv.Type()
	if ht.IsVariadic() {
		return nil, fmt.Errorf("%w: %s", ErrVariadicHandler, ht)
	}
	arity := ht.NumIn()
	if len(sels) > arity {
		return nil, fmt.Errorf("%w: %d selectors for %d parameters", ErrSelectorCount, len(sels), arity)
	}

	selectors := make([]selector.Selector, arity)
	for i := range selectors {
		if i >= len(sels) {
			selectors[i] = selector.Any
			continue
		}
		s, err := selector.Value(sels[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		if t := s.Type(); t != nil && t != ht.In(i) {
			return nil, fmt.Errorf("%w: position %d has %s, parameter is %s",
				ErrSelectorType, i, t, ht.In(i))
		}
		selectors[i] = s
	}

	sigs := make([]string, arity)
	for i, s := range selectors {
		sigs[i] = s.Signature()
	}

	return &entry{
		selectors:     selectors,
		handler:       hv,
		eventShape:    shape.OfFunc(ht),
		selectorShape: shape.ForSignatures(sigs...),
	}, nil
}

// compareEntry totally orders two entries of the same selector shape by
// comparing selector tuples position by position.
func (e *entry) compareEntry(o *entry) int {
	for i, s := range e.selectors {
		if c := s.Compare(o.selectors[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareEvent orders the entry against an event tuple lexicographically: the
// first position whose selector does not match its value decides, -1 when the
// selector orders strictly before the value and +1 when the value orders
// strictly before the selector. It returns 0 when every position matches.
func (e *entry) compareEvent(event []any) int {
	for i, s := range e.selectors {
		if s.Less(event[i]) {
			return -1
		}
		if s.Greater(event[i]) {
			return 1
		}
	}
	return 0
}

func (e *entry) invoke(args []reflect.Value) {
	e.handler.Call(args)
}

func (e *entry) String() string {
	parts := make([]string, len(e.selectors))
	for i, s := range e.selectors {
		parts[i] = s.String()
	}
	return "entry(" + strings.Join(parts, ", ") + ")"
}
