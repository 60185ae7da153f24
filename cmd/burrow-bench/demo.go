package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuemby/burrow/pkg/bus"
	"github.com/cuemby/burrow/pkg/selector"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the bus API with printed output",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	b := bus.New(bus.WithDebugSink(os.Stdout))
	defer b.Close()

	fmt.Println("Keyed subscription on (int, string), key 42:")
	keyed, err := b.Subscribe(func(key int, state string) {
		fmt.Printf("  keyed handler: %d %s\n", key, state)
	}, 42)
	if err != nil {
		return err
	}
	defer keyed.Close()

	b.Publish(42, "on")
	b.Publish(7, "off") // same shape, no match

	fmt.Println("\nRange subscription, temperature > 30.0:")
	hot, err := b.Subscribe(func(temp float64) {
		fmt.Printf("  hot handler: %.1f\n", temp)
	}, selector.GT(30.0))
	if err != nil {
		return err
	}
	defer hot.Close()

	b.Publish(25.0)
	b.Publish(31.5)

	fmt.Println("\nSelf-terminating subscription past a deadline:")
	deadline := time.Now()
	a := b.MakeAnchor()
	term := a.Terminator()
	if err := a.Add(func(now time.Time) {
		fmt.Println("  expired, removing subscription")
		term.Terminate()
	}, selector.GEFunc(deadline, time.Time.Before)); err != nil {
		return err
	}
	defer a.Close()

	b.Publish(time.Now())
	b.Publish(time.Now()) // already removed, no output

	fmt.Println("\n✓ Demo complete")
	return nil
}
