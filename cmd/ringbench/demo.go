package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ringkit/ring"
)

type person struct {
	ID   int
	Name string
}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through typical list usage per allocation strategy",
		Long: `The demo command builds small rings of person records and runs the
core operations against them: pushes, positional insertion, search, removal,
reversal, and clearing. One section runs per allocation strategy.

Example:
  ringbench demo
  ringbench demo --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	if err := demoFixed(); err != nil {
		return err
	}
	if err := demoFallback(); err != nil {
		return err
	}
	return demoGrowable()
}

func printRing(label string, r *ring.Ring) {
	printInfo("%s\n", label)
	r.ForEach(func(n *ring.Node) bool {
		p := n.Payload().(*person)
		printInfo("  [%02d] %s\n", p.ID, p.Name)
		return true
	})
}

func people(count int) []*person {
	out := make([]*person, count)
	for i := range out {
		out[i] = &person{ID: i + 1, Name: fmt.Sprintf("User_%d", i+1)}
	}
	return out
}

func demoFixed() error {
	printInfo("\n========== Fixed arena ==========\n")
	opts, err := optionsFor("stack", 32)
	if err != nil {
		return err
	}
	r, err := ring.New(opts)
	if err != nil {
		return err
	}
	defer r.Destroy()

	ps := people(10)
	for _, p := range ps[:5] {
		if _, err := r.PushBack(p); err != nil {
			return err
		}
	}
	if _, err := r.PushFront(ps[5]); err != nil {
		return err
	}
	printRing("after pushes:", r)

	// Splice a record in front of a found node.
	target, err := r.FindFunc(3, func(payload, id any) bool {
		return payload.(*person).ID == id.(int)
	})
	if err != nil {
		return err
	}
	if _, err := r.InsertBefore(target, ps[6]); err != nil {
		return err
	}
	printRing("after insert before ID 3:", r)

	if err := r.RemoveFunc(3, func(payload, id any) bool {
		return payload.(*person).ID == id.(int)
	}); err != nil {
		return err
	}
	printRing("after removing ID 3:", r)

	r.Reverse()
	printRing("after reverse:", r)

	front, err := r.PopFront()
	if err != nil {
		return err
	}
	back, err := r.PopBack()
	if err != nil {
		return err
	}
	printInfo("popped front %s, back %s, %d remain\n",
		front.(*person).Name, back.(*person).Name, r.Size())

	r.Clear()
	printInfo("after clear: size=%d capacity=%d\n", r.Size(), r.Capacity())
	return nil
}

func demoFallback() error {
	printInfo("\n========== Fixed arena with heap fallback ==========\n")
	opts, err := optionsFor("fallback", 4)
	if err != nil {
		return err
	}
	r, err := ring.New(opts)
	if err != nil {
		return err
	}
	defer r.Destroy()

	// Push past the arena to show the overflow is seamless.
	for _, p := range people(7) {
		if _, err := r.PushBack(p); err != nil {
			return err
		}
	}
	printInfo("capacity %d, size %d (3 nodes heap-backed)\n", r.Capacity(), r.Size())
	printRing("contents:", r)
	return nil
}

func demoGrowable() error {
	printInfo("\n========== Growable arena ==========\n")
	opts, err := optionsFor("growable", 4)
	if err != nil {
		return err
	}
	r, err := ring.New(opts)
	if err != nil {
		return err
	}
	defer r.Destroy()

	for _, p := range people(64) {
		if _, err := r.PushBack(p); err != nil {
			return err
		}
		printVerbose("size %2d capacity %2d\n", r.Size(), r.Capacity())
	}
	printInfo("grew to capacity %d holding %d nodes\n", r.Capacity(), r.Size())

	for r.Size() > 8 {
		if _, err := r.PopBack(); err != nil {
			return err
		}
	}
	if err := r.Shrink(1); err != nil {
		return err
	}
	printInfo("after popping to %d nodes and shrinking: capacity %d\n",
		r.Size(), r.Capacity())
	printRing("survivors:", r)
	return nil
}
