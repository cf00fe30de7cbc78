package alloc

import (
	"errors"
	"testing"
)

func TestNewGrowableRejectsBadBounds(t *testing.T) {
	cases := []struct{ initial, max int }{
		{0, 8},
		{-1, 8},
		{4, 2},
	}
	for _, c := range cases {
		if _, err := NewGrowable(c.initial, c.max); !errors.Is(err, ErrCapacity) {
			t.Fatalf("initial %d max %d: got %v, want ErrCapacity", c.initial, c.max, err)
		}
	}
}

func TestGrowableDoublesOnExhaustion(t *testing.T) {
	g, err := NewGrowable(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if _, err := g.Acquire(); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	if got := g.Arena().Capacity(); got != 8 {
		t.Fatalf("capacity %d after 8 acquisitions, want 8", got)
	}
	if _, err := g.Acquire(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("acquire past bound: got %v, want ErrExhausted", err)
	}
}

func TestGrowableCapacitySteps(t *testing.T) {
	g, err := NewGrowable(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	wantCaps := []int{2, 2, 4, 4, 8, 8, 8, 8}
	for i, want := range wantCaps {
		if _, err := g.Acquire(); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
		if got := g.Arena().Capacity(); got != want {
			t.Fatalf("capacity %d after acquire %d, want %d", got, i, want)
		}
	}
}

// growTestRing acquires len(payloads) nodes from g and links them into a
// circle, returning the head.
func growTestRing(t *testing.T, g *GrowableAllocator, payloads ...any) *Node {
	t.Helper()
	var head *Node
	for _, p := range payloads {
		n, err := g.Acquire()
		if err != nil {
			t.Fatal(err)
		}
		n.SetPayload(p)
		if head == nil {
			head = n
		} else {
			n.LinkBefore(head)
		}
	}
	return head
}

func collect(head *Node, count int) []any {
	out := make([]any, 0, count)
	n := head
	for i := 0; i < count; i++ {
		out = append(out, n.Payload())
		n = n.Next()
	}
	return out
}

func TestGrowRebasesLinksAndTranslatesReferences(t *testing.T) {
	g, err := NewGrowable(4, 16)
	if err != nil {
		t.Fatal(err)
	}
	var head *Node
	g.OnRelocate(func(translate func(*Node) *Node) {
		head = translate(head)
	})
	head = growTestRing(t, g, "a", "b", "c")

	// Force a relocating resize past the backing array.
	if err := g.Grow(8); err != nil {
		t.Fatal(err)
	}
	if got := g.Arena().Capacity(); got != 8 {
		t.Fatalf("capacity %d, want 8", got)
	}
	if !g.Arena().Owns(head) {
		t.Fatal("translated head must live in the new buffer")
	}
	got := collect(head, 3)
	want := []any{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ring order after grow: got %v, want %v", got, want)
		}
	}
	if head.Prev().Payload() != "c" {
		t.Fatalf("backward link after grow: got %v, want c", head.Prev().Payload())
	}
}

func TestGrowInPlaceWhenBackingArrayHasRoom(t *testing.T) {
	g, err := NewGrowable(2, 32)
	if err != nil {
		t.Fatal(err)
	}
	slotCalls := 0
	g.newSlots = func(n int) ([]Node, error) {
		slotCalls++
		return make([]Node, n, 32), nil
	}
	moved := false
	g.OnRelocate(func(func(*Node) *Node) { moved = true })

	if err := g.Grow(4); err != nil {
		t.Fatal(err)
	}
	if slotCalls != 1 || !moved {
		t.Fatalf("first grow: slotCalls=%d moved=%v, want relocation", slotCalls, moved)
	}
	moved = false
	if err := g.Grow(16); err != nil {
		t.Fatal(err)
	}
	if slotCalls != 1 {
		t.Fatalf("second grow reallocated slots (%d calls), want in-place", slotCalls)
	}
	if moved {
		t.Fatal("in-place grow must not report relocation")
	}
	if got := g.Arena().Capacity(); got != 16 {
		t.Fatalf("capacity %d, want 16", got)
	}
	if got := g.Arena().FreeCount(); got != 16 {
		t.Fatalf("free count %d, want 16", got)
	}
}

func TestGrowRollsBackWhenStackResizeFails(t *testing.T) {
	g, err := NewGrowable(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	var head *Node
	g.OnRelocate(func(translate func(*Node) *Node) {
		head = translate(head)
	})
	head = growTestRing(t, g, "a", "b")
	orig := head

	g.newStack = func(int) ([]uint32, error) {
		return nil, errors.New("no memory")
	}
	err = g.Grow(4)
	if !errors.Is(err, ErrGrowFail) {
		t.Fatalf("got %v, want ErrGrowFail", err)
	}
	if got := g.Arena().Capacity(); got != 2 {
		t.Fatalf("capacity %d after rollback, want 2", got)
	}
	if head != orig {
		t.Fatal("rollback must translate references back to the original buffer")
	}
	if head.Payload() != "a" || head.Next().Payload() != "b" || head.Next().Next() != head {
		t.Fatal("ring structure damaged by rollback")
	}

	// The allocator stays usable at its old capacity.
	g.newStack = nil
	if err := g.Grow(4); err != nil {
		t.Fatal(err)
	}
	if got := g.Arena().Capacity(); got != 4 {
		t.Fatalf("capacity %d after retry, want 4", got)
	}
}

func TestGrowNoopAtOrBelowCapacity(t *testing.T) {
	g, err := NewGrowable(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Grow(4); err != nil {
		t.Fatal(err)
	}
	if err := g.Grow(2); err != nil {
		t.Fatal(err)
	}
	if got := g.Arena().Capacity(); got != 4 {
		t.Fatalf("capacity %d, want 4", got)
	}
}

func TestShrinkReleasesSlack(t *testing.T) {
	g, err := NewGrowable(8, 16)
	if err != nil {
		t.Fatal(err)
	}
	head := growTestRing(t, g, "a", "b", "c", "d")
	// Drop the tail pair, leaving live slots 0 and 1.
	tail := head.Prev()
	tailPrev := tail.Prev()
	tail.Unlink()
	g.Release(tail)
	tailPrev.Unlink()
	g.Release(tailPrev)

	if err := g.Shrink(1); err != nil {
		t.Fatal(err)
	}
	// The request is raised to twice the live population.
	if got := g.Arena().Capacity(); got != 4 {
		t.Fatalf("capacity %d after shrink, want 4", got)
	}
	if got := g.Arena().LiveCount(); got != 2 {
		t.Fatalf("live count %d after shrink, want 2", got)
	}
	if got := g.Arena().FreeCount(); got != 2 {
		t.Fatalf("free count %d after shrink, want 2", got)
	}
}

func TestShrinkKeepsHighestLiveSlot(t *testing.T) {
	g, err := NewGrowable(8, 16)
	if err != nil {
		t.Fatal(err)
	}
	nodes := make([]*Node, 6)
	for i := range nodes {
		n, err := g.Acquire()
		if err != nil {
			t.Fatal(err)
		}
		nodes[i] = n
	}
	// Keep slots 0 and 5 live.
	for _, i := range []int{1, 2, 3, 4} {
		g.Release(nodes[i])
	}
	if err := g.Shrink(1); err != nil {
		t.Fatal(err)
	}
	// Slot 5 is live, so the arena cannot drop below 6 slots.
	if got := g.Arena().Capacity(); got != 6 {
		t.Fatalf("capacity %d after shrink, want 6", got)
	}
	if !g.Arena().slots[0].inUse || !g.Arena().slots[5].inUse {
		t.Fatal("live slots must survive the shrink")
	}
}

func TestShrinkNoopAtOrAboveCapacity(t *testing.T) {
	g, err := NewGrowable(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Shrink(8); err != nil {
		t.Fatal(err)
	}
	if got := g.Arena().Capacity(); got != 4 {
		t.Fatalf("capacity %d, want 4", got)
	}
}

func TestGrowableDestroyAndReinit(t *testing.T) {
	g, err := NewGrowable(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Acquire(); err != nil {
		t.Fatal(err)
	}
	g.Destroy()
	if got := g.Arena().Capacity(); got != 0 {
		t.Fatalf("capacity %d after destroy, want 0", got)
	}
	if _, err := g.Acquire(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("acquire after destroy: got %v, want ErrExhausted", err)
	}

	if err := g.Reinit(0); !errors.Is(err, ErrCapacity) {
		t.Fatalf("reinit 0: got %v, want ErrCapacity", err)
	}
	if err := g.Reinit(9); !errors.Is(err, ErrCapacity) {
		t.Fatalf("reinit past bound: got %v, want ErrCapacity", err)
	}
	if err := g.Reinit(3); err != nil {
		t.Fatal(err)
	}
	n, err := g.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if n.Slot() != 0 {
		t.Fatalf("first acquisition after reinit got slot %d, want 0", n.Slot())
	}
}
