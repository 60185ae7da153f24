/*
Package selector implements per-position selection predicates for event
subscriptions.

Every selector answers two primitive ordering queries against an event value
of its element type: whether the selector orders strictly before the value,
and whether the value orders strictly before the selector. A value matches
when neither holds. Deriving match from ordering lets the bus keep entries
sorted and resolve a publish with a single binary range scan instead of
testing every subscription.

# Architecture

	             Less(v)   Greater(v)
	Eq(x)        v > x      v < x        matches exactly x
	GE(x)        false      v < x        matches v >= x
	GT(x)        false      v <= x       matches v > x
	LE(x)        v > x      false        matches v <= x
	LT(x)        v >= x     false        matches v < x
	Bit(m, b)    masked <   masked >     matches v&m == b&m
	Any          false      false        matches everything

Selectors carry a Signature naming their kind and element type, e.g.
"eq[int]" or "ge[time.Time]". The bus groups entries by signature tuple, so
Compare only ever sees a selector of the same concrete kind.

# Usage

	selector.Eq(42)                                // exactly 42
	selector.GE(30.0)                              // at least 30.0
	selector.GEFunc(deadline, time.Time.Before)    // explicit ordering for time.Time
	selector.Bit(uint8(0o07), uint8(0o05))         // low three bits equal 5
	selector.Any                                   // wildcard

Plain values passed to a subscription are promoted with Value, which accepts
booleans, integers, floats, strings, pointers and time.Time.

# Integration Points

This package integrates with:

  - pkg/bus: entry ordering, range matching and group identity
  - pkg/shape: signatures feed selector-shape tokens
*/
package selector
