package alloc

import "fmt"

// GrowableAllocator serves nodes from a free-stack arena and doubles the
// arena when it runs out, saturating at a configured capacity bound. A
// growable arena owns its buffers; Destroy releases them and Reinit
// provisions fresh ones.
type GrowableAllocator struct {
	arena  *Arena
	maxCap int

	// onRelocate is invoked after any resize that moved the backing buffer,
	// with a translate function mapping stale node references to their
	// post-move equivalents.
	onRelocate func(translate func(*Node) *Node)

	// Resize allocation hooks. nil means allocate with make. Tests inject
	// failures here to exercise the rollback path, since Go gives no
	// recoverable out-of-memory signal.
	newSlots func(n int) ([]Node, error)
	newStack func(n int) ([]uint32, error)
}

// NewGrowable creates a growable allocator with the given initial capacity,
// saturating growth at maxCapacity.
func NewGrowable(initial, maxCapacity int) (*GrowableAllocator, error) {
	if initial < 1 || maxCapacity < initial {
		return nil, ErrCapacity
	}
	a, err := NewArena(initial, true)
	if err != nil {
		return nil, err
	}
	return &GrowableAllocator{arena: a, maxCap: maxCapacity}, nil
}

// OnRelocate registers fn to run whenever a resize moves the arena's backing
// buffer. The owning ring uses it to rebase its head reference; node links
// inside the arena are rebased before fn runs. Only one hook is held:
// registering again replaces the previous fn, so the allocator supports a
// single owner.
func (g *GrowableAllocator) OnRelocate(fn func(translate func(*Node) *Node)) {
	g.onRelocate = fn
}

func (g *GrowableAllocator) Acquire() (*Node, error) {
	if g.arena.Capacity() == 0 {
		return nil, ErrExhausted
	}
	if n := g.arena.popFree(); n != nil {
		return n, nil
	}
	cur := g.arena.Capacity()
	if cur >= g.maxCap {
		logAllocf("arena at capacity bound %d, acquisition fails", g.maxCap)
		return nil, ErrExhausted
	}
	next := cur << 1
	if next <= cur || next > g.maxCap {
		next = g.maxCap
	}
	if err := g.Grow(next); err != nil {
		return nil, err
	}
	n := g.arena.popFree()
	if n == nil {
		return nil, ErrExhausted
	}
	return n, nil
}

func (g *GrowableAllocator) Release(n *Node) {
	if n != nil {
		g.arena.release(n)
	}
}

func (g *GrowableAllocator) Arena() *Arena { return g.arena }

func (g *GrowableAllocator) Reset() { g.arena.Reset() }

// Destroy drops the arena's buffers. The allocator is unusable until Reinit.
func (g *GrowableAllocator) Destroy() {
	g.arena.slots = nil
	g.arena.freeStack = nil
	g.arena.freeTop = 0
}

// Reinit provisions a fresh arena of the given capacity.
func (g *GrowableAllocator) Reinit(capacity int) error {
	if capacity < 1 || capacity > g.maxCap {
		return ErrCapacity
	}
	a, err := NewArena(capacity, true)
	if err != nil {
		return err
	}
	g.arena = a
	return nil
}

// Grow resizes the arena up to newCap slots. New slots are initialized free
// and pushed onto the free stack. If the buffer must move, live links are
// rebased and the relocation hook fires; if the free-stack resize fails
// afterwards, the buffer resize is rolled back before the failure is
// reported, so the arena is never left partially migrated. Requests at or
// below the current capacity are no-ops.
func (g *GrowableAllocator) Grow(newCap int) error {
	a := g.arena
	oldCap := a.Capacity()
	if newCap <= oldCap {
		return nil
	}

	oldSlots := a.slots
	moved := false
	if newCap <= cap(a.slots) {
		// The backing array already has room: extend in place.
		a.slots = a.slots[:newCap]
	} else {
		ns, err := g.makeSlots(newCap)
		if err != nil {
			logAllocf("grow %d -> %d: slot buffer allocation failed: %v", oldCap, newCap, err)
			return fmt.Errorf("grow %d -> %d: %w", oldCap, newCap, ErrGrowFail)
		}
		copy(ns, oldSlots)
		a.slots = ns
		moved = true
		a.rebase()
		g.notifyRelocate()
	}

	st, err := g.makeStack(newCap)
	if err != nil {
		logAllocf("grow %d -> %d: free stack allocation failed, rolling back: %v", oldCap, newCap, err)
		if moved {
			// The old buffer's links were never touched and are still
			// self-consistent; restoring it only requires translating
			// outside references back.
			a.slots = oldSlots
			g.notifyRelocate()
		} else {
			a.slots = a.slots[:oldCap]
		}
		return fmt.Errorf("grow %d -> %d: %w", oldCap, newCap, ErrGrowFail)
	}
	copy(st, a.freeStack[:a.freeTop])
	a.freeStack = st

	for i := oldCap; i < newCap; i++ {
		s := &a.slots[i]
		s.inUse = false
		s.slot = uint32(i)
		s.reset()
		a.freeStack[a.freeTop] = uint32(i)
		a.freeTop++
	}
	logAllocf("grew arena %d -> %d (moved=%v)", oldCap, newCap, moved)
	return nil
}

// Shrink resizes the arena down toward newCap slots, never dropping a live
// node: the request is raised to keep at least double the live population
// and to keep every occupied slot in range. Surviving slots are copied and
// rebased, and the free stack is rebuilt by scanning. Requests at or above
// the current capacity are no-ops.
func (g *GrowableAllocator) Shrink(newCap int) error {
	a := g.arena
	oldCap := a.Capacity()
	live := a.LiveCount()
	if newCap <= live {
		newCap = live * 2
	}
	if hi := g.highestLiveSlot(); newCap < hi+1 {
		newCap = hi + 1
	}
	if newCap < 1 {
		newCap = 1
	}
	if newCap >= oldCap {
		return nil
	}

	oldSlots := a.slots
	ns, err := g.makeSlots(newCap)
	if err != nil {
		logAllocf("shrink %d -> %d: slot buffer allocation failed: %v", oldCap, newCap, err)
		return fmt.Errorf("shrink %d -> %d: %w", oldCap, newCap, ErrGrowFail)
	}
	copy(ns, oldSlots[:newCap])
	a.slots = ns
	a.rebase()
	g.notifyRelocate()

	st, err := g.makeStack(newCap)
	if err != nil {
		logAllocf("shrink %d -> %d: free stack allocation failed, rolling back: %v", oldCap, newCap, err)
		a.slots = oldSlots
		g.notifyRelocate()
		return fmt.Errorf("shrink %d -> %d: %w", oldCap, newCap, ErrGrowFail)
	}
	a.freeStack = st
	a.freeTop = 0
	for i := 0; i < newCap; i++ {
		if !a.slots[i].inUse {
			a.freeStack[a.freeTop] = uint32(i)
			a.freeTop++
		}
	}
	logAllocf("shrank arena %d -> %d", oldCap, newCap)
	return nil
}

func (g *GrowableAllocator) highestLiveSlot() int {
	hi := -1
	for i := range g.arena.slots {
		if g.arena.slots[i].inUse {
			hi = i
		}
	}
	return hi
}

func (g *GrowableAllocator) notifyRelocate() {
	if g.onRelocate == nil {
		return
	}
	a := g.arena
	g.onRelocate(func(n *Node) *Node {
		if n == nil {
			return nil
		}
		return a.At(n.slot)
	})
}

func (g *GrowableAllocator) makeSlots(n int) ([]Node, error) {
	if g.newSlots != nil {
		return g.newSlots(n)
	}
	return make([]Node, n), nil
}

func (g *GrowableAllocator) makeStack(n int) ([]uint32, error) {
	if g.newStack != nil {
		return g.newStack(n)
	}
	return make([]uint32, n), nil
}
