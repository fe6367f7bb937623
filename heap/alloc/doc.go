// Package alloc implements block allocation over a simulated heap arena.
//
// # Overview
//
// This package interprets the region of a heap.Heap below its break cursor
// as a linear chain of variable-size blocks, each prefixed by a 9-byte
// metadata header (see internal/format). It provides the classic textbook
// malloc trio on top of that chain: first-fit allocation with in-place
// splitting, constant-time free, and an explicit coalescing pass that merges
// adjacent free blocks.
//
// # Engine
//
// The core type is Engine, created with New over an open heap:
//
//	h, err := heap.Open(format.DefaultHeapSize)
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	e := alloc.New(h)
//	ref, buf, err := e.Alloc(100)
//	if err != nil {
//	    return err
//	}
//	// Write payload bytes to buf...
//
//	err = e.Free(ref)
//	e.Coalesce()
//
// # Allocation Strategy
//
// Alloc scans the chain from the arena start and takes the first free block
// whose payload fits the request. When the match leaves room for another
// header behind the requested bytes, the block is split and the remainder
// becomes a new free block (possibly with a zero-byte payload). When no free
// block fits, the engine grows the break: either by appending a fresh block,
// or, when the chain ends in a free block that is merely too small, by
// claiming only the shortfall and extending that tail block in place.
//
// Free only flips the block's status marker. Fragmentation is repaired by
// the separate Coalesce pass, which is idempotent.
//
// # References
//
// Payload positions are exposed as Ref values: integer offsets of the
// payload within the arena, with the header sitting immediately below. The
// engine validates incoming refs against the chain and rejects positions
// that are not live payload starts.
//
// # Thread Safety
//
// Engine is not thread-safe; there is exactly one logical actor in the
// simulated design. LockedEngine wraps an Engine with a single mutex for
// callers that need to share one heap between goroutines.
package alloc
