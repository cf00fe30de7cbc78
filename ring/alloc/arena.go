package alloc

// Arena is a contiguous store of node slots. With a free-index stack it hands
// out and takes back slots in O(1); without one, acquisition scans for the
// first free slot.
type Arena struct {
	slots     []Node
	freeStack []uint32
	freeTop   int
}

// NewArena allocates an arena of capacity slots, all free. When fast is true
// the arena carries a free-index stack.
func NewArena(capacity int, fast bool) (*Arena, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}
	a := &Arena{slots: make([]Node, capacity)}
	if fast {
		a.freeStack = make([]uint32, capacity)
	}
	a.Reset()
	return a, nil
}

// Capacity returns the arena's slot count. Zero for a nil or torn-down arena.
func (a *Arena) Capacity() int {
	if a == nil {
		return 0
	}
	return len(a.slots)
}

// FreeCount returns the number of slots currently available for acquisition.
func (a *Arena) FreeCount() int {
	if a == nil {
		return 0
	}
	if a.freeStack != nil {
		return a.freeTop
	}
	free := 0
	for i := range a.slots {
		if !a.slots[i].inUse {
			free++
		}
	}
	return free
}

// LiveCount returns the number of slots currently allocated, counted from the
// slots themselves rather than derived from the free stack.
func (a *Arena) LiveCount() int {
	if a == nil {
		return 0
	}
	live := 0
	for i := range a.slots {
		if a.slots[i].inUse {
			live++
		}
	}
	return live
}

// At returns the node occupying slot i, or nil when i is out of range.
func (a *Arena) At(i uint32) *Node {
	if a == nil || uint64(i) >= uint64(len(a.slots)) {
		return nil
	}
	return &a.slots[i]
}

// Owns reports whether n is one of the arena's slots. The check is an
// owns-index lookup: n's stored slot index must address n itself inside the
// current buffer. A heap-provisioned node can never satisfy it, which makes
// Owns the authoritative discriminator for fallback release routing.
func (a *Arena) Owns(n *Node) bool {
	if a == nil || n == nil {
		return false
	}
	i := n.slot
	return uint64(i) < uint64(len(a.slots)) && &a.slots[i] == n
}

// Reset marks every slot free, self-linked, and payload-free, and rebuilds
// the free stack so slot 0 is the next slot handed out.
func (a *Arena) Reset() {
	for i := range a.slots {
		s := &a.slots[i]
		s.inUse = false
		s.slot = uint32(i)
		s.reset()
	}
	if a.freeStack != nil {
		a.freeTop = len(a.slots)
		for i := range a.freeStack {
			a.freeStack[i] = uint32(len(a.slots) - 1 - i)
		}
	}
}

// popFree pops the top free index and claims its slot. Returns nil when the
// stack is empty.
func (a *Arena) popFree() *Node {
	if a.freeTop == 0 {
		return nil
	}
	a.freeTop--
	return a.claim(a.freeStack[a.freeTop])
}

// scanFree claims the first free slot, lowest index first. Returns nil when
// every slot is in use.
func (a *Arena) scanFree() *Node {
	for i := range a.slots {
		if !a.slots[i].inUse {
			return a.claim(uint32(i))
		}
	}
	return nil
}

func (a *Arena) claim(idx uint32) *Node {
	s := &a.slots[idx]
	s.inUse = true
	s.slot = idx
	s.reset()
	return s
}

// release returns slot-backed node n to the arena. The node is cleared and
// its index pushed back onto the free stack when one is present.
func (a *Arena) release(n *Node) {
	n.inUse = false
	n.reset()
	if a.freeStack != nil && a.freeTop < len(a.freeStack) {
		a.freeStack[a.freeTop] = n.slot
		a.freeTop++
	}
}

// rebase rewrites the neighbor links of every live slot against the arena's
// current buffer after a relocating resize. Each neighbor's position is
// recovered from its stored slot index; an index outside the new capacity is
// clamped back to the node's own slot, which can only arise while shrinking.
func (a *Arena) rebase() {
	n := uint32(len(a.slots))
	for i := range a.slots {
		s := &a.slots[i]
		if !s.inUse {
			continue
		}
		pi := s.prev.slot
		ni := s.next.slot
		if pi >= n {
			pi = uint32(i)
		}
		if ni >= n {
			ni = uint32(i)
		}
		s.prev = &a.slots[pi]
		s.next = &a.slots[ni]
	}
}
