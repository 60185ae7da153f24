package bus

import "github.com/cuemby/burrow/pkg/metrics"

// Chan bridges single-value events of type T into a buffered channel. The
// forwarding handler never blocks the publisher: when the buffer is full the
// event is dropped and counted. Closing the returned anchor stops
// forwarding; the channel itself is never closed, so drained readers block
// rather than observe a spurious zero value.
func Chan[T any](b *Bus, buffer int, selectors ...any) (<-chan T, *Anchor, error) {
	ch := make(chan T, buffer)
	a, err := b.Subscribe(func(v T) {
		select {
		case ch <- v:
		default:
			metrics.ChanDropped.Inc()
		}
	}, selectors...)
	if err != nil {
		return nil, nil, err
	}
	return ch, a, nil
}
