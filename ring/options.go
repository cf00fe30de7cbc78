package ring

import "math"

// Mode selects the node provisioning strategy for a ring.
type Mode int

const (
	// ModeHeap provisions every node individually on the heap.
	ModeHeap Mode = iota

	// ModeArenaFixed provisions nodes from a fixed-capacity arena.
	ModeArenaFixed

	// ModeArenaGrowable provisions nodes from an arena that doubles its
	// capacity on exhaustion, up to the bound implied by IndexWidth.
	ModeArenaGrowable
)

// Options configures ring construction.
type Options struct {
	// Mode selects the provisioning strategy.
	Mode Mode

	// Capacity is the arena slot count for arena modes, and the initial
	// capacity for ModeArenaGrowable. Ignored by ModeHeap.
	Capacity int

	// FastAlloc gives arena modes an O(1) free-index stack instead of
	// first-free scanning. ModeArenaGrowable always uses the stack.
	FastAlloc bool

	// TrackSize keeps a node counter on the ring so Size is O(1). Without it
	// Size traverses the ring.
	TrackSize bool

	// HeapFallback lets a full fixed arena overflow onto the heap instead of
	// failing acquisition. Requires ModeArenaFixed with FastAlloc.
	HeapFallback bool

	// IndexWidth is the slot index width in bits (8, 16, or 32) and bounds
	// the largest usable capacity. Zero means 16.
	IndexWidth int
}

// DefaultOptions returns a fixed 64-slot arena ring with fast acquisition,
// size tracking, and 16-bit indices.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeArenaFixed,
		Capacity:   64,
		FastAlloc:  true,
		TrackSize:  true,
		IndexWidth: 16,
	}
}

// maxCapacity returns the largest capacity addressable with width-bit slot
// indices, reserving the all-ones pattern. Clamped to the int range so
// 32-bit indices stay usable on 32-bit platforms.
func maxCapacity(width int) int {
	bound := uint64(1)<<uint(width) - 1
	if bound > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(bound)
}

// normalize validates o and fills defaults, returning the effective options.
func (o Options) normalize() (Options, error) {
	if o.IndexWidth == 0 {
		o.IndexWidth = 16
	}
	switch o.IndexWidth {
	case 8, 16, 32:
	default:
		return o, ErrInvalidArgument
	}
	switch o.Mode {
	case ModeHeap:
		if o.HeapFallback {
			return o, ErrInvalidArgument
		}
	case ModeArenaFixed:
		if o.Capacity < 1 || o.Capacity > maxCapacity(o.IndexWidth) {
			return o, ErrCapacity
		}
		if o.HeapFallback && !o.FastAlloc {
			return o, ErrInvalidArgument
		}
	case ModeArenaGrowable:
		if o.HeapFallback {
			return o, ErrInvalidArgument
		}
		if o.Capacity < 1 || o.Capacity > maxCapacity(o.IndexWidth) {
			return o, ErrCapacity
		}
		o.FastAlloc = true
	default:
		return o, ErrInvalidArgument
	}
	return o, nil
}
