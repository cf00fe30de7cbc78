package alloc

// Allocator acquires and releases node storage. Exactly one implementation is
// active per ring, selected once at construction; the ring never inspects
// which one it is talking to.
//
// Implementations:
//   - HeapAllocator: one heap allocation per node
//   - ScanAllocator: fixed arena, linear scan
//   - StackAllocator: fixed arena, free-index stack
//   - FallbackAllocator: free-stack arena with heap fallback
//   - GrowableAllocator: free-stack arena with automatic doubling
type Allocator interface {
	// Acquire returns a free, self-linked node ready to be spliced into a
	// ring, or ErrExhausted when the strategy cannot provision one.
	Acquire() (*Node, error)

	// Release returns a node obtained from Acquire to its backing store.
	Release(n *Node)

	// Arena exposes the backing arena, or nil when every node is an
	// individual heap allocation.
	Arena() *Arena

	// Reset frees every node in a single pass without touching backing
	// memory.
	Reset()

	// Destroy tears the strategy down. Growable strategies drop their
	// buffers; fixed arenas keep theirs, since the buffer may be owned by
	// the caller, and only reset bookkeeping.
	Destroy()

	// Reinit makes a destroyed strategy usable again. capacity is the
	// fresh initial capacity for growable strategies and is ignored by
	// the others.
	Reinit(capacity int) error
}
