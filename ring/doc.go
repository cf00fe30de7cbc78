// Package ring implements a circular doubly-linked list whose node storage
// is pluggable.
//
// # Overview
//
// A Ring links payload-carrying nodes into a closed cycle: every node has a
// predecessor and a successor, and a single node links to itself. Nodes are
// provisioned by an allocation strategy chosen at construction time — plain
// heap allocation, a fixed arena with scan or free-stack acquisition, a
// fixed arena that falls back to the heap when full, or a growable arena
// that doubles up to a capacity bound and rebases live links when its
// buffer moves.
//
// # Usage
//
//	r, err := ring.New(ring.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer r.Destroy()
//
//	r.PushBack("a")
//	r.PushBack("b")
//	r.PushFront("c") // c, a, b
//
//	r.ForEach(func(n *ring.Node) bool {
//		fmt.Println(n.Payload())
//		return true
//	})
//
// Rings are not safe for concurrent use.
package ring
