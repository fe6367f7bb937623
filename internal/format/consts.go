// Package format houses the low-level codec for the simulated heap's block
// metadata. The goal is to keep header encoding focused, allocation-free, and
// independent from the public API so higher-level packages can orchestrate
// the block chain in a more ergonomic form.
package format

const (
	// HeaderSize is the number of bytes used by the metadata header that
	// precedes every block (free or occupied) in the arena.
	// Layout (little-endian):
	//   0x00  8  payload size in bytes (the header itself is not included)
	//   0x08  1  status marker (StatusFree or StatusOccupied)
	HeaderSize = 9

	// StatusFree marks a block whose payload is available for reuse.
	StatusFree = byte('f')

	// StatusOccupied marks a block whose payload belongs to a live
	// allocation.
	StatusOccupied = byte('o')

	// SizeOffset and StatusOffset locate the header fields relative to the
	// block start.
	SizeOffset   = 0x00
	StatusOffset = 0x08

	// DefaultHeapSize is the arena capacity in bytes used when the caller
	// does not pick one.
	DefaultHeapSize = 8000
)
