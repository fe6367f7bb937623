package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free block fits and the arena cannot grow enough.
	ErrNoSpace = errors.New("alloc: no free block large enough and the arena cannot grow")

	// ErrBadRef indicates a reference that is not a live payload position.
	ErrBadRef = errors.New("alloc: bad payload reference")

	// ErrNotAllocated indicates an attempt to free a block that is already free.
	ErrNotAllocated = errors.New("alloc: block is not allocated")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("alloc: size must be non-negative")

	// ErrCorrupt indicates the block chain failed an integrity check.
	ErrCorrupt = errors.New("alloc: corrupt block chain")
)
