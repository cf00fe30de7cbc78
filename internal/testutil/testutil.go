// Package testutil provides structural assertions shared by ring tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ringkit/ring"
	"github.com/joshuapare/ringkit/ring/alloc"
)

// RequireRingClosed asserts that r is a well-formed circle: walking Size
// steps forward or backward from the head returns to the head, and every
// adjacent pair agrees about each other.
func RequireRingClosed(t *testing.T, r *ring.Ring) {
	t.Helper()
	size := r.Size()
	head := r.Head()
	if size == 0 {
		require.Nil(t, head, "empty ring must have nil head")
		return
	}
	require.NotNil(t, head)

	n := head
	for i := 0; i < size; i++ {
		require.Same(t, n, n.Next().Prev(), "forward neighbor disagrees at step %d", i)
		require.Same(t, n, n.Prev().Next(), "backward neighbor disagrees at step %d", i)
		n = n.Next()
	}
	require.Same(t, head, n, "forward walk of %d steps did not close", size)

	n = head
	for i := 0; i < size; i++ {
		n = n.Prev()
	}
	require.Same(t, head, n, "backward walk of %d steps did not close", size)
}

// RequireArenaAccounted asserts the arena's slot accounting: free plus live
// slots always equal capacity.
func RequireArenaAccounted(t *testing.T, a *alloc.Arena) {
	t.Helper()
	require.NotNil(t, a)
	require.Equal(t, a.Capacity(), a.FreeCount()+a.LiveCount(),
		"free (%d) + live (%d) must equal capacity (%d)",
		a.FreeCount(), a.LiveCount(), a.Capacity())
}

// Payloads returns the ring's payloads in ring order from the head.
func Payloads(r *ring.Ring) []any {
	var out []any
	r.ForEach(func(n *ring.Node) bool {
		out = append(out, n.Payload())
		return true
	})
	return out
}
