package bus

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/shape"
)

// bucket holds the selector-shape groups of one event shape. Group iteration
// order is the order selector shapes were first seen, so repeated publishes
// walk groups deterministically.
type bucket struct {
	groups map[shape.Token]*group
	order  []shape.Token
}

func (b *bucket) group(tok shape.Token) *group {
	g, ok := b.groups[tok]
	if !ok {
		g = &group{}
		b.groups[tok] = g
		b.order = append(b.order, tok)
	}
	return g
}

func (b *bucket) dropEmpty() {
	kept := b.order[:0]
	for _, tok := range b.order {
		if b.groups[tok].empty() {
			delete(b.groups, tok)
			continue
		}
		kept = append(kept, tok)
	}
	b.order = kept
}

// database is the two-level subscription index: event shape to bucket, then
// selector shape to sorted group. A single RWMutex guards the whole index;
// publishes take it shared, mutations exclusive.
type database struct {
	mu      sync.RWMutex
	buckets map[shape.Token]*bucket
	debug   io.Writer
	prune   bool
	closed  bool
	logger  zerolog.Logger
}

func newDatabase(debug io.Writer, prune bool, logger zerolog.Logger) *database {
	return &database{
		buckets: make(map[shape.Token]*bucket),
		debug:   debug,
		prune:   prune,
		logger:  logger,
	}
}

// insert adds the entry to its group and chains it onto its linker. An insert
// against a closed database, or through a linker already torn down, is a
// no-op: the entry is never published to and needs no teardown.
func (d *database) insert(l *linker, e *entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || l.dead.Load() {
		return
	}

	bkt, ok := d.buckets[e.eventShape]
	if !ok {
		bkt = &bucket{groups: make(map[shape.Token]*group)}
		d.buckets[e.eventShape] = bkt
	}
	bkt.group(e.selectorShape).insert(e)
	l.attach(e)

	metrics.SubscriptionsActive.Inc()
	if d.debug != nil {
		fmt.Fprintf(d.debug, "added : %s\n", e.eventShape)
	}
	d.logger.Debug().
		Str("shape", e.eventShape.String()).
		Str("selectors", e.selectorShape.String()).
		Msg("subscription added")
}

// match collects every live entry whose selector tuple matches the event.
func (d *database) match(tok shape.Token, event []any, out *matchList) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	bkt, ok := d.buckets[tok]
	if !ok {
		if d.debug != nil {
			fmt.Fprintf(d.debug, "no subscriptions for %s\n", tok)
		}
		d.logger.Debug().Str("shape", tok.String()).Msg("no subscriptions")
		return
	}
	for _, stok := range bkt.order {
		g := bkt.groups[stok]
		lo, hi := g.matchRange(event)
		for i := lo; i < hi; i++ {
			e := g.entries[i]
			if e.link.dead.Load() {
				continue
			}
			out.add(e)
		}
	}
}

// release removes a linker's entry chain from the index. Called with the
// linker's exclusive lock held, so no handler of the chain is running.
func (d *database) release(head *entry) {
	if head == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for e := head; e != nil; e = e.next {
		if e.grp != nil {
			e.grp.remove(e)
			e.grp = nil
			removed++
		}
	}
	if removed > 0 {
		metrics.SubscriptionsActive.Sub(float64(removed))
	}
	d.logger.Debug().Int("subscriptions", removed).Msg("anchor released")
	if d.prune {
		for tok, bkt := range d.buckets {
			bkt.dropEmpty()
			if len(bkt.order) == 0 {
				delete(d.buckets, tok)
			}
		}
	}
}

// close drops every subscription. Linkers stay valid; their destroy calls
// find nothing left to remove.
func (d *database) close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	remaining := 0
	for _, bkt := range d.buckets {
		for _, g := range bkt.groups {
			for _, e := range g.entries {
				e.grp = nil
				remaining++
			}
		}
	}
	d.buckets = make(map[shape.Token]*bucket)
	if remaining > 0 {
		metrics.SubscriptionsActive.Sub(float64(remaining))
	}
	d.logger.Debug().Int("subscriptions", remaining).Msg("database closed")
}
