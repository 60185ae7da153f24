/*
Package metrics provides Prometheus metrics and health checking for Burrow.

The metrics package exposes dispatch counters, subscription gauges and publish
latency histograms through the standard Prometheus client, plus HTTP health
endpoints for liveness and readiness probes. All collectors are registered at
init time and updated directly by the bus hot path.

# Architecture

	┌──────────────────── METRICS SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │          Prometheus Collectors              │          │
	│  │  - burrow_publishes_total                   │          │
	│  │  - burrow_handlers_invoked_total            │          │
	│  │  - burrow_handler_panics_total              │          │
	│  │  - burrow_publish_duration_seconds          │          │
	│  │  - burrow_subscriptions_active              │          │
	│  │  - burrow_anchors_active                    │          │
	│  │  - burrow_chan_dropped_total                │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           HTTP Endpoints                    │          │
	│  │  - /metrics  (Prometheus scrape)            │          │
	│  │  - /health   (overall health)               │          │
	│  │  - /ready    (critical components ready)    │          │
	│  │  - /live     (process alive)                │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Collectors:
  - PublishesTotal: counter, one per Publish call
  - HandlersInvoked: counter, one per handler dispatch
  - HandlerPanics: counter, panics recovered during dispatch
  - PublishDuration: histogram, match plus dispatch latency
  - SubscriptionsActive: gauge, live subscription entries
  - AnchorsActive: gauge, live anchors
  - ChanDropped: counter, events dropped by full channel bridges

Timer:
  - Measures elapsed time from creation
  - ObserveDuration records into a histogram
  - ObserveDurationVec records with label values

Health Checker:
  - Components register their health status
  - /health aggregates all components
  - /ready checks the critical component set
  - /live reports process liveness and uptime

# Usage

Recording dispatch metrics:

	timer := metrics.NewTimer()
	// ... match and dispatch ...
	timer.ObserveDuration(metrics.PublishDuration)
	metrics.PublishesTotal.Inc()

Serving endpoints:

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())

Registering component health:

	metrics.SetVersion("1.0.0")
	metrics.RegisterComponent("bus", true, "running")

# Integration Points

This package integrates with:

  - pkg/bus: counters and gauges updated on subscribe, publish and teardown
  - cmd/burrow-bench: serves the scrape and health endpoints

# Performance Characteristics

Counter increment: ~10ns (atomic add)
Gauge set: ~10ns (atomic store)
Histogram observe: ~50ns (bucket search plus atomic add)
Scrape encoding: proportional to collector count, off the hot path

# Best Practices

Do:
  - Update gauges at state transitions, not by polling
  - Use Timer for histogram observations
  - Register component health at startup

Don't:
  - Add per-event labels (cardinality explosion)
  - Block dispatch on scrape handlers

# See Also

  - Prometheus client: https://github.com/prometheus/client_golang
  - Metric naming: https://prometheus.io/docs/practices/naming/
*/
package metrics
