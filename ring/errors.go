package ring

import (
	"errors"

	"github.com/joshuapare/ringkit/ring/alloc"
)

var (
	// ErrIndexRange is returned when a positional operation addresses an
	// index at or beyond the ring's size.
	ErrIndexRange = errors.New("ring: index out of range")

	// ErrNotFound is returned when the ring is empty or a lookup matches no
	// node.
	ErrNotFound = errors.New("ring: node not found")

	// ErrInvalidArgument is returned when an operation is given a nil or
	// otherwise unusable argument.
	ErrInvalidArgument = errors.New("ring: invalid argument")
)

// Allocation failures surface unchanged from the provisioning layer.
var (
	ErrExhausted = alloc.ErrExhausted
	ErrGrowFail  = alloc.ErrGrowFail
	ErrCapacity  = alloc.ErrCapacity
)
