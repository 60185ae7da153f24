/*
Package bus implements an in-process, typed, content-filtered publish/subscribe bus.

Events are ordered tuples of Go values. Subscribers attach a handler function
plus one selector per parameter position; a publish synchronously invokes
exactly the handlers whose selector tuples match the event's values. All
subscriptions are owned by anchors, whose teardown blocks until in-flight
handlers return, so a closed anchor's handlers are never running and never
run again.

# Architecture

	┌───────────────────────── BUS ─────────────────────────────┐
	│                                                             │
	│  Publish(42, "on")                                          │
	│        │                                                    │
	│        ▼                                                    │
	│  ┌─────────────────────────────────────────────┐           │
	│  │       Database (RWMutex, two-level map)      │           │
	│  │                                              │           │
	│  │  event shape "(int, string)"                 │           │
	│  │    ├── selector shape "(eq[int], any)"       │           │
	│  │    │     sorted entries ──── binary range    │           │
	│  │    └── selector shape "(any, eq[string])"    │           │
	│  │          sorted entries ──── binary range    │           │
	│  └──────────────────┬──────────────────────────┘           │
	│                     │ match list                            │
	│                     ▼                                       │
	│  ┌─────────────────────────────────────────────┐           │
	│  │       Dispatch (per matched entry)           │           │
	│  │  linker.mark ── RLock per goroutine          │           │
	│  │  dead re-check ── skip torn-down anchors     │           │
	│  │  handler.Call ── synchronous, may reenter    │           │
	│  └──────────────────┬──────────────────────────┘           │
	│                     │                                       │
	│  ┌──────────────────▼──────────────────────────┐           │
	│  │       Anchor / Terminator                    │           │
	│  │  Close ── exclusive lock, waits for handlers │           │
	│  │  Terminate ── same, callable mid-handler     │           │
	│  └─────────────────────────────────────────────┘           │
	└─────────────────────────────────────────────────────────┘

# Core Components

Bus:
  - Entry point for Publish, Subscribe and MakeAnchor
  - Configured with options (debug sink, pruning, logger)
  - Publish is safe from any goroutine, including handlers

Database:
  - Two-level index: event shape, then selector shape
  - Groups keep entries sorted for equal-range matching
  - Shared lock for matching, exclusive for mutation

Entry:
  - One subscription: selectors, handler, shape tokens
  - Validated at Add time: arity, selector element types
  - Chained onto its linker for teardown

Anchor:
  - Owns subscriptions; Close drops them all
  - Close blocks until in-flight handlers return
  - Terminator is the drop-only handle for self-removal

Linker:
  - Per-anchor RWMutex held shared during dispatch
  - Per-goroutine hold tracking permits reentrant publish
  - Solo fast path avoids the map for single dispatchers

# Usage

Basic subscription and publish:

	b := bus.New()

	anchor, err := b.Subscribe(func(key int, state string) {
		fmt.Println(key, state)
	}, 42)
	if err != nil {
		return err
	}
	defer anchor.Close()

	b.Publish(42, "on")    // invokes the handler
	b.Publish(7, "on")     // no match

Range and wildcard selectors:

	b.Subscribe(handler, selector.GE(10))          // key >= 10
	b.Subscribe(handler, selector.Any, "on")       // any key, state "on"
	b.Subscribe(handler)                           // every (int, string)

Grouped lifetimes:

	a := b.MakeAnchor()
	a.Add(onTemp, selector.GT(30.0))
	a.Add(onHumidity)
	a.Close() // both gone, after any running handler returns

Self-removal from a handler:

	a := b.MakeAnchor()
	term := a.Terminator()
	a.Add(func(deadline time.Time) {
		term.Terminate() // subscriptions removed now; this handler runs on to its end
	}, selector.GEFunc(expiry, time.Time.Before))

Channel bridging:

	events, a, err := bus.Chan[int](b, 16, selector.GE(0))
	defer a.Close()
	for v := range events { ... }

# Integration Points

This package integrates with:

  - pkg/shape: event and selector shape tokens keying the index
  - pkg/selector: per-position predicates and their ordering queries
  - pkg/metrics: dispatch counters, gauges and latency histogram
  - pkg/log: structured logging of lifecycle and panics

# Design Patterns

Ordering-Derived Matching:
  - Selectors answer two strict-order queries, match is their conjunction
  - Groups stay sorted, publish resolves to one contiguous range
  - Lookup cost is logarithmic in group size, not linear in subscriptions

Anchor Ownership:
  - Subscriptions have no individual handles
  - Lifetime is the anchor's, removal is all-or-nothing per anchor
  - Terminator separates dropping from adding

Two-Level Locking:
  - Database RWMutex for the index, held only during match or mutation
  - Linker RWMutex per anchor, held across handler execution
  - Exclusive acquisition ordering: anchor first, then database

Reentrancy by Hold Tracking:
  - A goroutine locks each linker at most once
  - Nested publishes reuse the outer hold
  - Avoids recursive read-lock deadlock against waiting writers

# Performance Characteristics

Publish with one match: two map lookups, two binary searches, one call
Match phase: O(log n) per group within the event shape's bucket
Single-match dispatch: no heap allocation for the match list
Subscribe: one exclusive index lock, one sorted insert
Close: blocks for in-flight handlers, then one exclusive index lock

# Troubleshooting

Handler never invoked:
  - Check the event tuple's types against the handler parameters
  - Shapes match on exact reflect types; int32 does not match int
  - Use WithDebugSink to see "no subscriptions for (…)" lines

Publish appears to hang:
  - A handler is blocking; Publish is synchronous
  - Close of another anchor waits only for that anchor's handlers

Close appears to hang:
  - An in-flight handler of the same anchor has not returned
  - Inside that handler, use Terminator instead of Close on other anchors'
    goroutines waiting for it

Duplicate invocations:
  - Multiple entries match independently; overlapping selectors overlap
  - An anchor with two identical subscriptions fires twice

# Best Practices

Do:
  - Close anchors when their component shuts down
  - Use Terminator for self-removal inside handlers
  - Keep handlers short; they run on the publisher's goroutine
  - Use Chan to hand events to long-running consumers

Don't:
  - Publish untyped nil (it has no element type)
  - Block inside handlers waiting for another publish
  - Share one anchor across unrelated lifetimes

# See Also

  - pkg/selector: selector kinds and ordering semantics
  - pkg/shape: shape token construction
*/
package bus
