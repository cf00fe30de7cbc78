package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ringkit/ring"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "ringbench",
	Short: "Exercise and benchmark the ringkit allocation strategies",
	Long: `ringbench drives the ringkit circular list through its allocation
strategies. The demo command walks through typical usage; the bench command
times insertion, traversal, and removal workloads per strategy.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// optionsFor maps a strategy name from the command line to ring options.
func optionsFor(strategy string, capacity int) (ring.Options, error) {
	opts := ring.Options{Capacity: capacity, TrackSize: true}
	switch strategy {
	case "heap":
		opts.Mode = ring.ModeHeap
	case "scan":
		opts.Mode = ring.ModeArenaFixed
	case "stack":
		opts.Mode = ring.ModeArenaFixed
		opts.FastAlloc = true
	case "fallback":
		opts.Mode = ring.ModeArenaFixed
		opts.FastAlloc = true
		opts.HeapFallback = true
	case "growable":
		opts.Mode = ring.ModeArenaGrowable
		opts.IndexWidth = 32
	default:
		return opts, fmt.Errorf("unknown strategy %q (heap, scan, stack, fallback, growable)", strategy)
	}
	return opts, nil
}

var allStrategies = []string{"heap", "scan", "stack", "fallback", "growable"}
