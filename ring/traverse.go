package ring

// ForEach visits every node from the head in ring order, stopping early when
// fn returns false. fn must not remove the visited node; use ForEachSafe for
// that.
func (r *Ring) ForEach(fn func(n *Node) bool) {
	if r.head == nil {
		return
	}
	n := r.head
	for {
		if !fn(n) {
			return
		}
		n = n.Next()
		if n == r.head {
			return
		}
	}
}

// ForEachSafe visits every node from the head in ring order, capturing each
// successor before fn runs so fn may remove the visited node. Stops early
// when fn returns false or the ring empties.
func (r *Ring) ForEachSafe(fn func(n *Node) bool) {
	if r.head == nil {
		return
	}
	first := r.head
	n := first
	for {
		next := n.Next()
		if !fn(n) {
			return
		}
		if r.head == nil || next == first {
			return
		}
		if n == first && first.Next() == first {
			// fn removed the starting node; it self-linked on release, so
			// the lap now closes at its successor instead.
			first = next
		}
		n = next
	}
}

// Find returns the first node, scanning from the head, whose payload equals
// target. Payloads must be comparable. ErrNotFound when no node matches.
func (r *Ring) Find(target any) (*Node, error) {
	return r.FindFunc(target, func(payload, target any) bool {
		return payload == target
	})
}

// FindFunc returns the first node, scanning from the head, for which
// eq(payload, target) reports true.
func (r *Ring) FindFunc(target any, eq func(payload, target any) bool) (*Node, error) {
	if eq == nil {
		return nil, ErrInvalidArgument
	}
	var found *Node
	r.ForEach(func(n *Node) bool {
		if eq(n.Payload(), target) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// At returns the node at position i from the head. ErrIndexRange when i is
// negative or at or beyond the size.
func (r *Ring) At(i int) (*Node, error) {
	return r.nodeAt(i)
}

func (r *Ring) nodeAt(i int) (*Node, error) {
	if i < 0 || r.head == nil {
		return nil, ErrIndexRange
	}
	if r.opts.TrackSize && i >= r.size {
		return nil, ErrIndexRange
	}
	n := r.head
	for step := 0; step < i; step++ {
		n = n.Next()
		if n == r.head {
			// Wrapped without reaching i: the index is beyond the size.
			return nil, ErrIndexRange
		}
	}
	return n, nil
}
