package alloc

// HeapAllocator provisions every node with its own heap allocation. It only
// fails on out-of-memory, which the Go runtime does not surface as a
// recoverable condition, so Acquire never returns an error in practice.
type HeapAllocator struct{}

// NewHeap creates a per-node heap allocator.
func NewHeap() *HeapAllocator { return &HeapAllocator{} }

func (h *HeapAllocator) Acquire() (*Node, error) {
	n := &Node{inUse: true, slot: noSlot}
	n.selfLink()
	return n, nil
}

// Release clears the node so the payload can be collected independently of
// any lingering reference to the node itself.
func (h *HeapAllocator) Release(n *Node) {
	if n == nil {
		return
	}
	n.inUse = false
	n.reset()
}

func (h *HeapAllocator) Arena() *Arena { return nil }

func (h *HeapAllocator) Reset() {}

func (h *HeapAllocator) Destroy() {}

func (h *HeapAllocator) Reinit(int) error { return nil }
