package alloc

// ScanAllocator provisions nodes from a fixed arena by scanning for the first
// free slot, lowest index first. O(capacity) worst case; no free stack.
type ScanAllocator struct {
	arena *Arena
}

// NewScan creates a linear-scan allocator over a. The arena must have been
// built without a free stack.
func NewScan(a *Arena) *ScanAllocator { return &ScanAllocator{arena: a} }

func (s *ScanAllocator) Acquire() (*Node, error) {
	n := s.arena.scanFree()
	if n == nil {
		return nil, ErrExhausted
	}
	return n, nil
}

func (s *ScanAllocator) Release(n *Node) {
	if n != nil {
		s.arena.release(n)
	}
}

func (s *ScanAllocator) Arena() *Arena { return s.arena }

func (s *ScanAllocator) Reset() { s.arena.Reset() }

func (s *ScanAllocator) Destroy() { s.arena.Reset() }

func (s *ScanAllocator) Reinit(int) error {
	s.arena.Reset()
	return nil
}
