package bus

import (
	"testing"

	"github.com/cuemby/burrow/pkg/selector"
)

func mustEntry(t *testing.T, handler any, sels ...any) *entry {
	t.Helper()
	e, err := newEntry(handler, sels)
	if err != nil {
		t.Fatalf("newEntry: %v", err)
	}
	return e
}

func TestGroupInsertKeepsOrder(t *testing.T) {
	g := &group{}
	h := func(v int) {}

	for _, key := range []int{5, 1, 3, 2, 4} {
		g.insert(mustEntry(t, h, key))
	}

	for i := 1; i < len(g.entries); i++ {
		if g.entries[i-1].compareEntry(g.entries[i]) > 0 {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestGroupMatchRange(t *testing.T) {
	g := &group{}
	h := func(v int) {}

	g.insert(mustEntry(t, h, 1))
	e2a := mustEntry(t, h, 2)
	e2b := mustEntry(t, h, 2)
	g.insert(e2a)
	g.insert(e2b)
	g.insert(mustEntry(t, h, 3))

	lo, hi := g.matchRange([]any{2})
	if hi-lo != 2 {
		t.Fatalf("expected range of 2, got [%d,%d)", lo, hi)
	}
	if g.entries[lo] != e2a || g.entries[lo+1] != e2b {
		t.Error("equal entries must keep insertion order")
	}

	lo, hi = g.matchRange([]any{9})
	if hi != lo {
		t.Errorf("expected empty range, got [%d,%d)", lo, hi)
	}
}

func TestGroupRemoveByIdentity(t *testing.T) {
	g := &group{}
	h := func(v int) {}

	e1 := mustEntry(t, h, 7)
	e2 := mustEntry(t, h, 7)
	g.insert(e1)
	g.insert(e2)

	g.remove(e1)
	if len(g.entries) != 1 || g.entries[0] != e2 {
		t.Error("remove must delete exactly the identical entry")
	}

	g.remove(e1) // absent, no-op
	if len(g.entries) != 1 {
		t.Error("removing an absent entry must be a no-op")
	}

	g.remove(e2)
	if !g.empty() {
		t.Error("group must be empty")
	}
}

func TestGroupRangeBoundsStraddled(t *testing.T) {
	h := func(v int) {}

	ge := &group{}
	low := mustEntry(t, h, selector.GE(10))
	high := mustEntry(t, h, selector.GE(30))
	ge.insert(high)
	ge.insert(low)

	lo, hi := ge.matchRange([]any{25})
	if hi-lo != 1 || ge.entries[lo] != low {
		t.Errorf("event 25 must match only the lower bound, got [%d,%d)", lo, hi)
	}
	lo, hi = ge.matchRange([]any{35})
	if hi-lo != 2 {
		t.Errorf("event 35 must match both bounds, got [%d,%d)", lo, hi)
	}
	lo, hi = ge.matchRange([]any{5})
	if hi != lo {
		t.Errorf("event 5 must match neither bound, got [%d,%d)", lo, hi)
	}

	le := &group{}
	near := mustEntry(t, h, selector.LE(10))
	far := mustEntry(t, h, selector.LE(30))
	le.insert(far)
	le.insert(near)

	lo, hi = le.matchRange([]any{25})
	if hi-lo != 1 || le.entries[lo] != far {
		t.Errorf("event 25 must match only the upper bound, got [%d,%d)", lo, hi)
	}
	lo, hi = le.matchRange([]any{10})
	if hi-lo != 2 {
		t.Errorf("event 10 must match both bounds, got [%d,%d)", lo, hi)
	}
	lo, hi = le.matchRange([]any{31})
	if hi != lo {
		t.Errorf("event 31 must match neither bound, got [%d,%d)", lo, hi)
	}
}

func TestGroupWildcardMatchesAll(t *testing.T) {
	g := &group{}
	h := func(v int) {}

	for i := 0; i < 3; i++ {
		g.insert(mustEntry(t, h))
	}

	lo, hi := g.matchRange([]any{1234})
	if hi-lo != 3 {
		t.Errorf("wildcard group must match every event, got [%d,%d)", lo, hi)
	}
}
