package alloc

// noSlot marks a node provisioned outside any arena.
const noSlot = ^uint32(0)

// Node is the intrusive cell of a circular doubly-linked list. A node always
// carries valid neighbor links: a free or solitary node links to itself, so a
// reachable link is never nil. The list structurally owns the linkage; the
// payload is an unowned reference to caller data and is never interpreted or
// freed by the list.
type Node struct {
	payload any
	prev    *Node
	next    *Node
	inUse   bool
	slot    uint32
}

// Payload returns the caller data carried by the node.
func (n *Node) Payload() any { return n.payload }

// SetPayload replaces the caller data carried by the node.
func (n *Node) SetPayload(v any) { n.payload = v }

// Next returns the node's successor in the ring.
func (n *Node) Next() *Node { return n.next }

// Prev returns the node's predecessor in the ring.
func (n *Node) Prev() *Node { return n.prev }

// InUse reports whether the node is currently allocated.
func (n *Node) InUse() bool { return n.inUse }

// Slot returns the node's index within its arena. The value is meaningless
// for nodes provisioned on the heap.
func (n *Node) Slot() uint32 { return n.slot }

// LinkBefore splices n into the ring immediately before at.
func (n *Node) LinkBefore(at *Node) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}

// LinkAfter splices n into the ring immediately after at.
func (n *Node) LinkAfter(at *Node) {
	n.next = at.next
	n.prev = at
	at.next.prev = n
	at.next = n
}

// Unlink splices n out of its ring and leaves it self-linked. Safe on a
// solitary node, where it is a no-op.
func (n *Node) Unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = n
	n.next = n
}

// SwapLinks exchanges the node's neighbor references. Reversing a ring is a
// single SwapLinks pass over every node.
func (n *Node) SwapLinks() { n.prev, n.next = n.next, n.prev }

func (n *Node) selfLink() {
	n.prev = n
	n.next = n
}

// reset clears the payload and self-links the node so stale state can never
// leak into the node's next use.
func (n *Node) reset() {
	n.payload = nil
	n.selfLink()
}
