package alloc

import "testing"

func ringOf(t *testing.T, payloads ...any) (*HeapAllocator, []*Node) {
	t.Helper()
	h := NewHeap()
	nodes := make([]*Node, 0, len(payloads))
	var head *Node
	for _, p := range payloads {
		n, err := h.Acquire()
		if err != nil {
			t.Fatal(err)
		}
		n.SetPayload(p)
		if head == nil {
			head = n
		} else {
			n.LinkBefore(head)
		}
		nodes = append(nodes, n)
	}
	return h, nodes
}

func TestLinkBeforeBuildsCircle(t *testing.T) {
	_, ns := ringOf(t, "a", "b", "c")
	a, b, c := ns[0], ns[1], ns[2]
	if a.Next() != b || b.Next() != c || c.Next() != a {
		t.Fatal("forward links wrong")
	}
	if a.Prev() != c || c.Prev() != b || b.Prev() != a {
		t.Fatal("backward links wrong")
	}
}

func TestLinkAfter(t *testing.T) {
	_, ns := ringOf(t, "a", "c")
	a, c := ns[0], ns[1]
	h := NewHeap()
	b, _ := h.Acquire()
	b.SetPayload("b")
	b.LinkAfter(a)
	if a.Next() != b || b.Next() != c || b.Prev() != a || c.Prev() != b {
		t.Fatal("LinkAfter splice wrong")
	}
}

func TestUnlinkMiddle(t *testing.T) {
	_, ns := ringOf(t, "a", "b", "c")
	a, b, c := ns[0], ns[1], ns[2]
	b.Unlink()
	if a.Next() != c || c.Prev() != a {
		t.Fatal("neighbors not rejoined")
	}
	if b.Next() != b || b.Prev() != b {
		t.Fatal("unlinked node must self-link")
	}
}

func TestUnlinkSolitaryIsNoop(t *testing.T) {
	_, ns := ringOf(t, "a")
	a := ns[0]
	a.Unlink()
	if a.Next() != a || a.Prev() != a {
		t.Fatal("solitary node must stay self-linked")
	}
}

func TestSwapLinksReversesCircle(t *testing.T) {
	_, ns := ringOf(t, "a", "b", "c")
	for _, n := range ns {
		n.SwapLinks()
	}
	a, b, c := ns[0], ns[1], ns[2]
	if a.Next() != c || c.Next() != b || b.Next() != a {
		t.Fatal("reversed forward links wrong")
	}
}
