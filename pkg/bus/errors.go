package bus

import "errors"

var (
	// ErrInvalidAnchor is returned when a subscription is added through a
	// zero, closed or torn-down anchor.
	ErrInvalidAnchor = errors.New("bus: anchor is not attached to a bus")

	// ErrNotAFunction is returned when a subscription handler is not a
	// function value.
	ErrNotAFunction = errors.New("bus: handler must be a function")

	// ErrVariadicHandler is returned when a subscription handler is
	// variadic. Event shapes have a fixed arity.
	ErrVariadicHandler = errors.New("bus: handler must not be variadic")

	// ErrSelectorCount is returned when a subscription carries more
	// selectors than its handler has parameters.
	ErrSelectorCount = errors.New("bus: more selectors than handler parameters")

	// ErrSelectorType is returned when a selector's element type differs
	// from the handler parameter at its position.
	ErrSelectorType = errors.New("bus: selector type does not match handler parameter")
)
