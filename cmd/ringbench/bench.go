package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ringkit/ring"
)

var (
	benchNodes      int
	benchRounds     int
	benchStrategies []string
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time list workloads per allocation strategy",
		Long: `The bench command times three workloads against each selected
strategy: sequential fill-and-drain, random positional removal, and full
traversal. Results are printed per strategy in milliseconds.

Example:
  ringbench bench
  ringbench bench --nodes 10000 --rounds 5 --strategy stack --strategy heap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
	cmd.Flags().IntVar(&benchNodes, "nodes", 2000, "Nodes per round")
	cmd.Flags().IntVar(&benchRounds, "rounds", 3, "Rounds per workload")
	cmd.Flags().StringArrayVar(&benchStrategies, "strategy", nil,
		"Strategy to bench (repeatable; default all)")
	return cmd
}

func runBench() error {
	if benchNodes < 1 || benchRounds < 1 {
		return fmt.Errorf("nodes and rounds must be positive")
	}
	strategies := benchStrategies
	if len(strategies) == 0 {
		strategies = allStrategies
	}
	for _, s := range strategies {
		if err := benchStrategy(s); err != nil {
			return fmt.Errorf("strategy %s: %w", s, err)
		}
	}
	return nil
}

func benchStrategy(strategy string) error {
	opts, err := optionsFor(strategy, benchNodes)
	if err != nil {
		return err
	}
	if opts.Mode == ring.ModeArenaGrowable {
		// Start small so the bench exercises growth.
		opts.Capacity = 16
	}
	printInfo("\n--- %s (%d nodes, %d rounds) ---\n", strategy, benchNodes, benchRounds)

	fill, err := timeRounds(opts, benchFillDrain)
	if err != nil {
		return err
	}
	printInfo("  fill+drain:     %8.3f ms/round\n", fill)

	random, err := timeRounds(opts, benchRandomRemove)
	if err != nil {
		return err
	}
	printInfo("  random remove:  %8.3f ms/round\n", random)

	traverse, err := timeRounds(opts, benchTraverse)
	if err != nil {
		return err
	}
	printInfo("  traverse:       %8.3f ms/round\n", traverse)
	return nil
}

// timeRounds runs workload benchRounds times on fresh rings and returns the
// mean wall time per round in milliseconds.
func timeRounds(opts ring.Options, workload func(r *ring.Ring) error) (float64, error) {
	var total time.Duration
	for i := 0; i < benchRounds; i++ {
		r, err := ring.New(opts)
		if err != nil {
			return 0, err
		}
		start := time.Now()
		err = workload(r)
		total += time.Since(start)
		r.Destroy()
		if err != nil {
			return 0, err
		}
	}
	return float64(total.Microseconds()) / 1000.0 / float64(benchRounds), nil
}

func benchFillDrain(r *ring.Ring) error {
	for i := 0; i < benchNodes; i++ {
		if _, err := r.PushBack(i); err != nil {
			return err
		}
	}
	for r.Size() > 0 {
		if _, err := r.PopFront(); err != nil {
			return err
		}
	}
	return nil
}

func benchRandomRemove(r *ring.Ring) error {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < benchNodes; i++ {
		if _, err := r.PushBack(i); err != nil {
			return err
		}
	}
	for size := r.Size(); size > 0; size-- {
		if err := r.RemoveAt(rng.Intn(size)); err != nil {
			return err
		}
	}
	return nil
}

func benchTraverse(r *ring.Ring) error {
	for i := 0; i < benchNodes; i++ {
		if _, err := r.PushBack(i); err != nil {
			return err
		}
	}
	count := 0
	for i := 0; i < benchRounds; i++ {
		r.ForEach(func(*ring.Node) bool {
			count++
			return true
		})
	}
	if count != benchNodes*benchRounds {
		return fmt.Errorf("traversal visited %d nodes, want %d", count, benchNodes*benchRounds)
	}
	return nil
}
