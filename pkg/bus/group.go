package bus

import "sort"

// group holds the sorted entries sharing one selector shape within an event
// shape bucket. Entries with equal selector tuples are adjacent, so a publish
// resolves to a single contiguous range.
type group struct {
	entries []*entry
}

// insert places e after any entries comparing equal to it, preserving
// insertion order among equals.
func (g *group) insert(e *entry) {
	i := sort.Search(len(g.entries), func(i int) bool {
		return e.compareEntry(g.entries[i]) < 0
	})
	g.entries = append(g.entries, nil)
	copy(g.entries[i+1:], g.entries[i:])
	g.entries[i] = e
	e.grp = g
}

// remove deletes e by pointer identity within its equal range. Removing an
// entry that is not present is a no-op.
func (g *group) remove(e *entry) {
	lo := sort.Search(len(g.entries), func(i int) bool {
		return e.compareEntry(g.entries[i]) <= 0
	})
	for i := lo; i < len(g.entries); i++ {
		if e.compareEntry(g.entries[i]) != 0 {
			break
		}
		if g.entries[i] == e {
			g.entries = append(g.entries[:i], g.entries[i+1:]...)
			return
		}
	}
}

// matchRange returns the half-open index range of entries whose selector
// tuples match the event.
func (g *group) matchRange(event []any) (lo, hi int) {
	lo = sort.Search(len(g.entries), func(i int) bool {
		return g.entries[i].compareEvent(event) >= 0
	})
	hi = sort.Search(len(g.entries), func(i int) bool {
		return g.entries[i].compareEvent(event) > 0
	})
	return lo, hi
}

func (g *group) empty() bool { return len(g.entries) == 0 }
