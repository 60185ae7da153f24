package bus

import (
	"fmt"
	"io"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/shape"
)

// Bus is an in-process publish/subscribe bus over typed event tuples.
// Subscriptions filter by content: each handler parameter position carries a
// selector, and a publish invokes exactly the handlers whose selector tuples
// match the event, synchronously on the publishing goroutine.
type Bus struct {
	db  *database
	log zerolog.Logger
}

// Option configures a Bus.
type Option func(*busOptions)

type busOptions struct {
	debug  io.Writer
	prune  bool
	logger zerolog.Logger
}

// WithDebugSink directs one-line subscription and match diagnostics to w.
func WithDebugSink(w io.Writer) Option {
	return func(o *busOptions) { o.debug = w }
}

// WithPruneEmptyGroups removes emptied index groups during teardown instead
// of keeping them for reuse.
func WithPruneEmptyGroups() Option {
	return func(o *busOptions) { o.prune = true }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *busOptions) { o.logger = l }
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	o := busOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Bus{
		db:  newDatabase(o.debug, o.prune, o.logger),
		log: o.logger,
	}
}

// MakeAnchor creates an anchor for grouping subscriptions under one
// lifetime.
func (b *Bus) MakeAnchor() *Anchor {
	return &Anchor{link: newLinker(b.db)}
}

// MakeAnchorage creates n anchors closed together as a unit.
func (b *Bus) MakeAnchorage(n int) Anchorage {
	g := make(Anchorage, n)
	for i := range g {
		g[i] = b.MakeAnchor()
	}
	return g
}

// Subscribe registers the handler under a fresh anchor and returns it. The
// selectors apply positionally; see Anchor.Add.
func (b *Bus) Subscribe(handler any, selectors ...any) (*Anchor, error) {
	a := b.MakeAnchor()
	if err := a.Add(handler, selectors...); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// Publish delivers the event tuple to every matching subscription, invoking
// handlers synchronously in group order before returning. Handlers may
// publish, subscribe and terminate their own anchor. Publish panics on an
// untyped nil argument, since it carries no element type to match on.
func (b *Bus) Publish(args ...any) {
	timer := metrics.NewTimer()
	metrics.PublishesTotal.Inc()

	vals := make([]reflect.Value, len(args))
	types := make([]reflect.Type, len(args))
	for i, arg := range args {
		rv := reflect.ValueOf(arg)
		if !rv.IsValid() {
			panic(fmt.Sprintf("bus: untyped nil at publish position %d", i))
		}
		vals[i] = rv
		types[i] = rv.Type()
	}
	tok := shape.ForTypes(types...)

	var matches matchList
	b.db.match(tok, args, &matches)

	for i := 0; i < matches.len(); i++ {
		b.dispatch(matches.at(i), vals)
	}
	timer.ObserveDuration(metrics.PublishDuration)
}

// dispatch runs one handler under its linker's shared lock. The dead re-check
// after acquisition guarantees no handler starts once teardown has begun.
func (b *Bus) dispatch(e *entry, vals []reflect.Value) {
	l := e.link
	if acquired := l.mark(); acquired {
		defer l.unmark()
	}
	if l.dead.Load() {
		return
	}

	metrics.HandlersInvoked.Inc()
	defer func() {
		if r := recover(); r != nil {
			metrics.HandlerPanics.Inc()
			b.log.Error().
				Interface("panic", r).
				Str("anchor_id", l.id).
				Str("shape", e.eventShape.String()).
				Msg("handler panicked")
			panic(r)
		}
	}()
	e.invoke(vals)
}

// Close drops every subscription on the bus. Anchors remain safe to close
// afterwards; publishes after Close match nothing.
func (b *Bus) Close() {
	b.db.close()
}
