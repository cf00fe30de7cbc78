package alloc

// FallbackAllocator serves nodes from a free-stack arena until it is
// exhausted, then falls back to individual heap allocations. A ring built on
// it can therefore interleave arena-backed and heap-backed nodes.
//
// Release routes each node by asking the arena whether it owns it; the node
// carries no authoritative marker of its origin.
type FallbackAllocator struct {
	arena *Arena
	heap  HeapAllocator
}

// NewFallback creates a fallback allocator over a. The arena must have been
// built with a free stack.
func NewFallback(a *Arena) *FallbackAllocator { return &FallbackAllocator{arena: a} }

func (f *FallbackAllocator) Acquire() (*Node, error) {
	if n := f.arena.popFree(); n != nil {
		return n, nil
	}
	logAllocf("arena full at capacity %d, falling back to heap", f.arena.Capacity())
	return f.heap.Acquire()
}

func (f *FallbackAllocator) Release(n *Node) {
	if n == nil {
		return
	}
	if f.arena.Owns(n) {
		f.arena.release(n)
		return
	}
	f.heap.Release(n)
}

func (f *FallbackAllocator) Arena() *Arena { return f.arena }

// Reset frees every arena slot. Heap-backed nodes are not tracked here; the
// ring walks its own structure to release them.
func (f *FallbackAllocator) Reset() { f.arena.Reset() }

func (f *FallbackAllocator) Destroy() { f.arena.Reset() }

func (f *FallbackAllocator) Reinit(int) error {
	f.arena.Reset()
	return nil
}
