package alloc

import "errors"

var (
	// ErrExhausted indicates the strategy could not provision a node: the
	// arena is full and no fallback or further growth is available.
	ErrExhausted = errors.New("alloc: no free node available")

	// ErrGrowFail indicates an arena resize could not be completed. The
	// arena is left in its prior, fully consistent state.
	ErrGrowFail = errors.New("alloc: arena resize failed")

	// ErrCapacity indicates an arena capacity outside the usable range.
	ErrCapacity = errors.New("alloc: capacity out of range")
)
