// Package alloc provides node provisioning for circular intrusive lists.
//
// # Overview
//
// A ring never creates its own node storage; it asks an Allocator for a node
// on every insertion and hands the node back on every removal. This package
// supplies the Node type, the Arena slot store, and one Allocator
// implementation per provisioning strategy:
//
//   - HeapAllocator: one heap allocation per node
//   - ScanAllocator: fixed arena, linear scan for a free slot
//   - StackAllocator: fixed arena, O(1) free-index stack
//   - FallbackAllocator: free-stack arena, heap allocation once full
//   - GrowableAllocator: free-stack arena that doubles itself when full
//
// # Arena accounting
//
// An arena slot is either free (on the free stack, not in use) or allocated
// (off the stack, in use) — never both, never neither. For free-stack arenas
// the invariant
//
//	free stack depth + live slots == capacity
//
// holds after every operation.
//
// # Growth and relocation
//
// GrowableAllocator resizes its arena by doubling, saturating at a configured
// capacity bound. A resize may move the backing buffer; when it does, every
// live slot's neighbor links are rebased against the new buffer using the
// neighbors' stored slot indices, and the relocation hook registered via
// OnRelocate fires so the owning ring can rebase its head reference. A resize
// that fails part-way is rolled back; the arena is never left partially
// migrated.
//
// # Logging
//
// Setting the RINGKIT_LOG_ALLOC environment variable logs growth, shrink,
// and rollback decisions to stderr.
package alloc
