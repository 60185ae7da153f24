/*
Package shape assigns identity tokens to event shapes and selector shapes.

An event shape is the ordered sequence of element types in a published tuple;
a selector shape is the ordered sequence of selector signatures attached to a
subscription. Burrow indexes its subscription database by these tokens so a
publish only ever examines subscriptions whose shape can match, and so that
cross-shape comparisons are structurally impossible.

# Architecture

	Publish(42, "on")          Subscribe(func(int, string), 42)
	       │                              │
	       ▼                              ▼
	ForTypes(int, string)      OfFunc(handler) + ForSignatures("eq[int]", "any")
	       │                              │
	       ▼                              ▼
	  "(int, string)"            "(int, string)" / "(eq[int], any)"

Tokens are plain strings derived from reflect type names and selector
signatures. They are stable within a process, equality-comparable, and usable
directly as map keys. The string form doubles as the human-readable shape
name emitted by the bus debug sink.

# Usage

	tok := shape.ForTypes(reflect.TypeOf(0), reflect.TypeOf(""))
	// tok == "(int, string)"

	sel := shape.ForSignatures("eq[int]", "any")
	// sel == "(eq[int], any)"

# Integration Points

This package integrates with:

  - pkg/bus: database bucket keys and debug sink output
  - pkg/selector: signature strings feeding ForSignatures
*/
package shape
