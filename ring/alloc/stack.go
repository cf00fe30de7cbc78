package alloc

// StackAllocator provisions nodes from a fixed arena through its free-index
// stack: acquisition pops an index, release pushes it back. Both are O(1).
type StackAllocator struct {
	arena *Arena
}

// NewStack creates a free-stack allocator over a. The arena must have been
// built with a free stack.
func NewStack(a *Arena) *StackAllocator { return &StackAllocator{arena: a} }

func (s *StackAllocator) Acquire() (*Node, error) {
	n := s.arena.popFree()
	if n == nil {
		return nil, ErrExhausted
	}
	return n, nil
}

func (s *StackAllocator) Release(n *Node) {
	if n != nil {
		s.arena.release(n)
	}
}

func (s *StackAllocator) Arena() *Arena { return s.arena }

func (s *StackAllocator) Reset() { s.arena.Reset() }

func (s *StackAllocator) Destroy() { s.arena.Reset() }

func (s *StackAllocator) Reinit(int) error {
	s.arena.Reset()
	return nil
}
