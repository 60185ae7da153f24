package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cuemby/burrow/pkg/bus"
	"github.com/cuemby/burrow/pkg/log"
	"github.com/cuemby/burrow/pkg/metrics"
	"github.com/cuemby/burrow/pkg/selector"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a bus benchmark scenario",
	Long: `Run a benchmark scenario from a YAML file.

Examples:
  # Run a scenario
  burrow-bench bench -f scenario.yaml

  # Run with Prometheus metrics exposed
  burrow-bench bench -f scenario.yaml --metrics-addr :9090`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringP("file", "f", "", "YAML scenario file (required)")
	benchCmd.Flags().String("metrics-addr", "", "Address to serve /metrics and /health on (optional)")
	_ = benchCmd.MarkFlagRequired("file")
}

// Scenario describes one benchmark run
type Scenario struct {
	Name        string          `yaml:"name"`
	Duration    Duration        `yaml:"duration"`
	Keyspace    int             `yaml:"keyspace"`
	Publishers  int             `yaml:"publishers"`
	Subscribers []SubscriberSet `yaml:"subscribers"`
}

// Duration accepts Go duration strings like "5s" in YAML
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %v", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// SubscriberSet describes a population of identical subscribers
type SubscriberSet struct {
	Count int    `yaml:"count"`
	Kind  string `yaml:"kind"` // eq, ge, le, any
	Bound int    `yaml:"bound,omitempty"`
}

func runBench(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read scenario: %v", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("failed to parse scenario: %v", err)
	}
	if sc.Duration <= 0 {
		sc.Duration = Duration(5 * time.Second)
	}
	if sc.Keyspace <= 0 {
		sc.Keyspace = 1000
	}
	if sc.Publishers <= 0 {
		sc.Publishers = 1
	}

	runID := uuid.NewString()
	logger := log.WithComponent("bench")
	logger.Info().Str("run_id", runID).Str("scenario", sc.Name).Msg("Starting benchmark")

	if metricsAddr != "" {
		metrics.SetVersion(Version)
		metrics.RegisterComponent("bus", true, "running")
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		mux.HandleFunc("/health", metrics.HealthHandler())
		mux.HandleFunc("/ready", metrics.ReadyHandler())
		mux.HandleFunc("/live", metrics.LivenessHandler())
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Error().Err(err).Msg("Metrics server failed")
			}
		}()
		fmt.Printf("  Metrics: http://%s/metrics\n", metricsAddr)
	}

	b := bus.New(bus.WithLogger(log.WithComponent("bus")))
	defer b.Close()

	var delivered atomic.Int64
	handler := func(key int) { delivered.Add(1) }

	var anchors bus.Anchorage
	defer func() { anchors.Close() }()
	total := 0
	for _, set := range sc.Subscribers {
		for i := 0; i < set.Count; i++ {
			sel, err := subscriberSelector(set, i, sc.Keyspace)
			if err != nil {
				return err
			}
			a, err := b.Subscribe(handler, sel)
			if err != nil {
				return fmt.Errorf("failed to subscribe: %v", err)
			}
			anchors = append(anchors, a)
			total++
		}
	}

	fmt.Printf("Running scenario %q\n", sc.Name)
	fmt.Printf("  Run ID: %s\n", runID)
	fmt.Printf("  Subscribers: %d\n", total)
	fmt.Printf("  Publishers: %d\n", sc.Publishers)
	fmt.Printf("  Duration: %s\n", time.Duration(sc.Duration))
	fmt.Println()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			fmt.Println("\nInterrupted")
		case <-time.After(time.Duration(sc.Duration)):
		}
		close(stop)
	}()

	var published atomic.Int64
	var wg sync.WaitGroup
	start := time.Now()
	for p := 0; p < sc.Publishers; p++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
				}
				b.Publish(rng.Intn(sc.Keyspace))
				published.Add(1)
			}
		}(int64(p) + 1)
	}
	wg.Wait()
	elapsed := time.Since(start)

	pub, del := published.Load(), delivered.Load()
	fmt.Println("✓ Benchmark complete")
	fmt.Printf("  Published: %d (%.0f/s)\n", pub, float64(pub)/elapsed.Seconds())
	fmt.Printf("  Delivered: %d (%.0f/s)\n", del, float64(del)/elapsed.Seconds())
	logger.Info().
		Str("run_id", runID).
		Int64("published", pub).
		Int64("delivered", del).
		Dur("elapsed", elapsed).
		Msg("Benchmark complete")
	return nil
}

func subscriberSelector(set SubscriberSet, i, keyspace int) (any, error) {
	switch set.Kind {
	case "", "eq":
		return i % keyspace, nil
	case "ge":
		return selector.GE(set.Bound), nil
	case "le":
		return selector.LE(set.Bound), nil
	case "any":
		return selector.Any, nil
	default:
		return nil, fmt.Errorf("unsupported subscriber kind: %s", set.Kind)
	}
}
