package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Dispatch metrics
	PublishesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_publishes_total",
			Help: "Total number of published events",
		},
	)

	HandlersInvoked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_handlers_invoked_total",
			Help: "Total number of handler invocations",
		},
	)

	HandlerPanics = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_handler_panics_total",
			Help: "Total number of panics recovered from handlers",
		},
	)

	PublishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "burrow_publish_duration_seconds",
			Help:    "Time taken to match and dispatch a publish in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Subscription metrics
	SubscriptionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "burrow_subscriptions_active",
			Help: "Current number of live subscription entries",
		},
	)

	AnchorsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "burrow_anchors_active",
			Help: "Current number of live anchors",
		},
	)

	// Channel bridge metrics
	ChanDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_chan_dropped_total",
			Help: "Total number of events dropped by full channel bridges",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(PublishesTotal)
	prometheus.MustRegister(HandlersInvoked)
	prometheus.MustRegister(HandlerPanics)
	prometheus.MustRegister(PublishDuration)
	prometheus.MustRegister(SubscriptionsActive)
	prometheus.MustRegister(AnchorsActive)
	prometheus.MustRegister(ChanDropped)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer measures elapsed time for histogram observations
type Timer struct {
	start time.Time
}

// NewTimer creates a timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the time elapsed since the timer started
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed time in the given histogram
func (t *Timer) ObserveDuration(h prometheus.Histogram) {
	h.Observe(t.Duration().Seconds())
}

// ObserveDurationVec records the elapsed time in the given histogram vec
func (t *Timer) ObserveDurationVec(h *prometheus.HistogramVec, labels ...string) {
	h.WithLabelValues(labels...).Observe(t.Duration().Seconds())
}
