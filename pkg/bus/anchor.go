package bus

// Anchor owns a set of subscriptions. Dropping them is the anchor's only
// lifecycle operation: Close removes every subscription added through it and
// blocks until handlers already running on other goroutines return.
type Anchor struct {
	link *linker
}

// Add subscribes the handler with one selector per parameter position. Plain
// values are promoted to equality selectors; unsupplied trailing positions
// match anything.
func (a *Anchor) Add(handler any, selectors ...any) error {
	if a == nil || a.link == nil || a.link.dead.Load() {
		return ErrInvalidAnchor
	}
	e, err := newEntry(handler, selectors)
	if err != nil {
		return err
	}
	a.link.db.insert(a.link, e)
	return nil
}

// Subscribe is Add returning the anchor itself, for chaining several
// subscriptions onto one lifetime.
func (a *Anchor) Subscribe(handler any, selectors ...any) (*Anchor, error) {
	return a, a.Add(handler, selectors...)
}

// Close drops the anchor's subscriptions and detaches it. Close from inside
// one of the anchor's own handlers does not wait for that handler. Closing an
// already closed anchor is a no-op.
func (a *Anchor) Close() {
	if a == nil || a.link == nil {
		return
	}
	a.link.destroy()
	a.link = nil
}

// Terminator returns a handle that can drop the anchor's subscriptions
// without being able to add new ones. Handlers use it to remove their own
// anchor mid-dispatch.
func (a *Anchor) Terminator() Terminator {
	if a == nil {
		return Terminator{}
	}
	return Terminator{link: a.link}
}

// Empty reports whether the anchor currently owns no subscriptions.
func (a *Anchor) Empty() bool { return a.Size() == 0 }

// Size returns the number of subscriptions the anchor owns.
func (a *Anchor) Size() int {
	if a == nil || a.link == nil {
		return 0
	}
	return int(a.link.count.Load())
}

// ID returns the anchor's unique identifier, or "" for a detached anchor.
func (a *Anchor) ID() string {
	if a == nil || a.link == nil {
		return ""
	}
	return a.link.id
}

// Terminator is a drop-only handle on an anchor. Copies share the same
// target; terminating any of them tears the anchor down once.
type Terminator struct {
	link *linker
}

// Terminate drops the target anchor's subscriptions. Safe to call from
// inside one of the anchor's own handlers and safe to call repeatedly.
func (t Terminator) Terminate() {
	if t.link != nil {
		t.link.destroy()
	}
}

// Anchorage is a convenience collection of anchors torn down together.
type Anchorage []*Anchor

// Close closes every anchor in the collection.
func (g Anchorage) Close() {
	for _, a := range g {
		a.Close()
	}
}
