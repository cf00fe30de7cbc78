package ring

import "github.com/joshuapare/ringkit/ring/alloc"

// Node is a ring node. Payloads are read and written through Payload and
// SetPayload; neighbor navigation through Next and Prev.
type Node = alloc.Node

// Allocator provisions and reclaims nodes for a ring.
type Allocator = alloc.Allocator
