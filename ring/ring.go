package ring

import "github.com/joshuapare/ringkit/ring/alloc"

// Ring is a circular doubly-linked list over allocator-provisioned nodes.
// The zero value is not usable; construct with New or NewWith.
type Ring struct {
	opts Options
	al   Allocator
	head *Node
	size int
}

// New creates a ring with an allocator built from opts.
func New(opts Options) (*Ring, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	var al Allocator
	switch opts.Mode {
	case ModeHeap:
		al = alloc.NewHeap()
	case ModeArenaFixed:
		a, err := alloc.NewArena(opts.Capacity, opts.FastAlloc)
		if err != nil {
			return nil, err
		}
		switch {
		case opts.HeapFallback:
			al = alloc.NewFallback(a)
		case opts.FastAlloc:
			al = alloc.NewStack(a)
		default:
			al = alloc.NewScan(a)
		}
	case ModeArenaGrowable:
		g, err := alloc.NewGrowable(opts.Capacity, maxCapacity(opts.IndexWidth))
		if err != nil {
			return nil, err
		}
		al = g
	}
	return NewWith(al, opts)
}

// NewWith creates a ring over a caller-provided allocator. opts.Mode and
// capacity fields are informational here; the allocator is used as given.
// A growable allocator must be owned by exactly one ring: construction
// claims its relocation hook, so sharing one would leave every other
// reference with a stale head after a resize.
func NewWith(al Allocator, opts Options) (*Ring, error) {
	if al == nil {
		return nil, ErrInvalidArgument
	}
	if opts.Capacity == 0 {
		if a := al.Arena(); a != nil {
			opts.Capacity = a.Capacity()
		}
	}
	r := &Ring{opts: opts, al: al}
	if g, ok := al.(*alloc.GrowableAllocator); ok {
		g.OnRelocate(func(translate func(*Node) *Node) {
			r.head = translate(r.head)
		})
	}
	return r, nil
}

// ready reports whether the allocator can serve requests. A destroyed
// growable allocator has a zero-capacity arena until Reinit.
func (r *Ring) ready() bool {
	if r.al == nil {
		return false
	}
	a := r.al.Arena()
	return a == nil || a.Capacity() > 0
}

// insert acquires a node carrying payload and splices it relative to pos.
// pos is re-resolved through its slot index after acquisition, since a
// growable allocator may relocate its buffer mid-call. With adoptHead, the
// new node becomes the head when spliced in front of it, which is how a
// front push differs from a back push on a circle.
func (r *Ring) insert(pos *Node, payload any, before, adoptHead bool) (*Node, error) {
	if !r.ready() {
		return nil, ErrInvalidArgument
	}
	var posIdx uint32
	tracked := false
	if pos != nil {
		if a := r.al.Arena(); a.Owns(pos) {
			posIdx = pos.Slot()
			tracked = true
		}
	}
	n, err := r.al.Acquire()
	if err != nil {
		return nil, err
	}
	n.SetPayload(payload)
	if tracked {
		if a := r.al.Arena(); !a.Owns(pos) {
			pos = a.At(posIdx)
		}
	}
	if r.head == nil {
		r.head = n
	} else {
		if pos == nil {
			pos = r.head
		}
		if before {
			n.LinkBefore(pos)
			if adoptHead && pos == r.head {
				r.head = n
			}
		} else {
			n.LinkAfter(pos)
		}
	}
	if r.opts.TrackSize {
		r.size++
	}
	return n, nil
}

// detach splices n out of the ring, fixing up the head when n carries it.
func (r *Ring) detach(n *Node) {
	if n.Next() == n {
		r.head = nil
	} else if n == r.head {
		r.head = n.Next()
	}
	n.Unlink()
}

// removeNode detaches n, releases it, and returns the payload it carried.
func (r *Ring) removeNode(n *Node) any {
	p := n.Payload()
	r.detach(n)
	r.al.Release(n)
	if r.opts.TrackSize {
		r.size--
	}
	return p
}

// PushFront inserts payload at the head of the ring.
func (r *Ring) PushFront(payload any) (*Node, error) {
	return r.insert(r.head, payload, true, true)
}

// PushBack inserts payload at the tail of the ring.
func (r *Ring) PushBack(payload any) (*Node, error) {
	return r.insert(r.head, payload, true, false)
}

// InsertBefore inserts payload immediately before target, which must be a
// node of this ring. Inserting before the head yields the new front node.
func (r *Ring) InsertBefore(target *Node, payload any) (*Node, error) {
	if target == nil {
		return nil, ErrInvalidArgument
	}
	return r.insert(target, payload, true, true)
}

// InsertAfter inserts payload immediately after target, which must be a node
// of this ring.
func (r *Ring) InsertAfter(target *Node, payload any) (*Node, error) {
	if target == nil {
		return nil, ErrInvalidArgument
	}
	return r.insert(target, payload, false, false)
}

// PopFront removes the head node and returns its payload. ErrNotFound when
// the ring is empty.
func (r *Ring) PopFront() (any, error) {
	if r.head == nil {
		return nil, ErrNotFound
	}
	return r.removeNode(r.head), nil
}

// PopBack removes the tail node and returns its payload. ErrNotFound when
// the ring is empty.
func (r *Ring) PopBack() (any, error) {
	if r.head == nil {
		return nil, ErrNotFound
	}
	return r.removeNode(r.head.Prev()), nil
}

// PopAt removes the node at position i from the head and returns its
// payload. ErrIndexRange when i is negative or at or beyond the size.
func (r *Ring) PopAt(i int) (any, error) {
	n, err := r.nodeAt(i)
	if err != nil {
		return nil, err
	}
	return r.removeNode(n), nil
}

// RemoveAt removes the node at position i from the head.
func (r *Ring) RemoveAt(i int) error {
	_, err := r.PopAt(i)
	return err
}

// Remove removes the first node, scanning from the head, whose payload
// equals target. Payloads must be comparable. ErrNotFound when no node
// matches.
func (r *Ring) Remove(target any) error {
	return r.RemoveFunc(target, func(payload, target any) bool {
		return payload == target
	})
}

// RemoveFunc removes the first node, scanning from the head, for which
// eq(payload, target) reports true.
func (r *Ring) RemoveFunc(target any, eq func(payload, target any) bool) error {
	if eq == nil {
		return ErrInvalidArgument
	}
	n, err := r.FindFunc(target, eq)
	if err != nil {
		return err
	}
	r.removeNode(n)
	return nil
}

// RemoveNode removes n, which must be a node of this ring, and returns its
// payload.
func (r *Ring) RemoveNode(n *Node) (any, error) {
	if n == nil || !n.InUse() {
		return nil, ErrInvalidArgument
	}
	return r.removeNode(n), nil
}

// Size returns the number of nodes in the ring. O(1) with TrackSize,
// otherwise a full traversal.
func (r *Ring) Size() int {
	if r.opts.TrackSize {
		return r.size
	}
	if r.head == nil {
		return 0
	}
	size := 1
	for n := r.head.Next(); n != r.head; n = n.Next() {
		size++
	}
	return size
}

// Head returns the ring's head node, or nil when the ring is empty.
func (r *Ring) Head() *Node { return r.head }

// Capacity returns the allocator's current arena capacity, or 0 for pure
// heap provisioning.
func (r *Ring) Capacity() int {
	if r.al == nil {
		return 0
	}
	return r.al.Arena().Capacity()
}

// Reverse reverses the ring in place by swapping every node's neighbor
// links; the old tail becomes the head.
func (r *Ring) Reverse() {
	if r.head == nil {
		return
	}
	oldTail := r.head.Prev()
	n := r.head
	for {
		next := n.Next()
		n.SwapLinks()
		if next == r.head {
			break
		}
		n = next
	}
	r.head = oldTail
}

// Clear removes every node. Arena-backed rings reclaim all slots in a single
// allocator reset; rings that may hold heap nodes walk the structure and
// release node by node. Safe to call repeatedly.
func (r *Ring) Clear() {
	if r.al == nil || r.head == nil {
		r.head = nil
		r.size = 0
		return
	}
	if a := r.al.Arena(); a != nil && !r.mayHoldHeapNodes() {
		r.al.Reset()
	} else {
		n := r.head
		for {
			next := n.Next()
			r.al.Release(n)
			if next == r.head || next == n {
				break
			}
			n = next
		}
	}
	r.head = nil
	r.size = 0
}

func (r *Ring) mayHoldHeapNodes() bool {
	_, ok := r.al.(*alloc.FallbackAllocator)
	return ok
}

// Destroy clears the ring and tears down its allocator. A growable ring must
// be reinitialized with Reinit before reuse; other rings are immediately
// reusable.
func (r *Ring) Destroy() {
	r.Clear()
	if r.al != nil {
		r.al.Destroy()
	}
}

// Reinit restores a destroyed ring to an empty, usable state. capacity is
// the fresh initial capacity for growable rings and ignored otherwise.
func (r *Ring) Reinit(capacity int) error {
	if r.al == nil {
		return ErrInvalidArgument
	}
	if err := r.al.Reinit(capacity); err != nil {
		return err
	}
	r.head = nil
	r.size = 0
	return nil
}

// Shrink reduces a growable ring's arena toward capacity slots. The request
// is raised as needed so no live node is dropped. ErrInvalidArgument on
// rings without a growable allocator.
func (r *Ring) Shrink(capacity int) error {
	g, ok := r.al.(*alloc.GrowableAllocator)
	if !ok {
		return ErrInvalidArgument
	}
	return g.Shrink(capacity)
}
