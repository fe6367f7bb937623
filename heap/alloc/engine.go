package alloc

import (
	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
)

// Engine manages the block chain of a single heap arena.
type Engine struct {
	h *heap.Heap
}

// New creates an Engine over an open heap. The engine assumes exclusive
// ownership of the region below the heap's break.
func New(h *heap.Heap) *Engine {
	return &Engine{h: h}
}

// Alloc obtains a payload of exactly size bytes and returns its position
// plus a slice aliasing it. A size of 0 is legal and yields a distinct block
// with an empty payload.
//
// The search is first-fit from the arena start. A matched free block is
// split when the spare capacity can hold another header; otherwise the whole
// block is used as-is. When no free block fits, the break is grown - either
// by a full new block, or by just the shortfall when the chain already ends
// in a free tail.
func (e *Engine) Alloc(size int) (Ref, []byte, error) {
	if size < 0 {
		return 0, nil, ErrBadSize
	}
	brk, err := e.h.Sbrk(0)
	if err != nil {
		return 0, nil, err
	}
	data := e.h.Bytes()

	last := -1
	var lastHdr format.Header
	for off := 0; off < brk; {
		hdr := format.ReadHeader(data, off)
		if hdr.Free && hdr.Size >= size {
			if hdr.Size-size >= format.HeaderSize {
				// Enough spare capacity for another header: shrink the
				// match to exactly size and describe the remainder as a
				// fresh free block. The remainder payload may be zero
				// bytes.
				remainder := format.Header{Size: hdr.Size - size - format.HeaderSize, Free: true}
				format.PutHeader(data, off+format.HeaderSize+size, remainder)
				hdr.Size = size
			}
			hdr.Free = false
			format.PutHeader(data, off, hdr)
			ref := off + format.HeaderSize
			return ref, data[ref : ref+size], nil
		}
		last, lastHdr = off, hdr
		off = format.Next(off, hdr)
	}

	// No fitting free block. When the chain is empty or ends in an occupied
	// block, claim a whole new block from the break.
	if last < 0 || !lastHdr.Free {
		base, err := e.h.Sbrk(format.HeaderSize + size)
		if err != nil {
			WARN("alloc %d failed: break at %d, cap %d\n", size, brk, e.h.Cap())
			return 0, nil, ErrNoSpace
		}
		if DBGon() {
			DBG("grew break by %d for new block at %d\n", format.HeaderSize+size, base)
		}
		format.PutHeader(data, base, format.Header{Size: size})
		ref := base + format.HeaderSize
		return ref, data[ref : ref+size], nil
	}

	// The chain ends in a free block that is merely too small. Claim only
	// the shortfall and extend that tail block in place, so its existing
	// capacity is not wasted.
	if _, err := e.h.Sbrk(size - lastHdr.Size); err != nil {
		WARN("alloc %d failed: break at %d, cap %d\n", size, brk, e.h.Cap())
		return 0, nil, ErrNoSpace
	}
	if DBGon() {
		DBG("extended free tail at %d from %d to %d\n", last, lastHdr.Size, size)
	}
	format.PutHeader(data, last, format.Header{Size: size})
	ref := last + format.HeaderSize
	return ref, data[ref : ref+size], nil
}

// Free marks the block owning ref as free. No merging happens here;
// fragmentation is repaired by the separate Coalesce pass.
//
// The chain is consulted to reject positions that are not live payload
// starts, since flipping a status byte inside some payload would corrupt the
// chain.
func (e *Engine) Free(ref Ref) error {
	brk, err := e.h.Sbrk(0)
	if err != nil {
		return err
	}
	data := e.h.Bytes()
	target := ref - format.HeaderSize
	if target < 0 || ref > brk {
		return ErrBadRef
	}
	for off := 0; off < brk && off <= target; {
		hdr := format.ReadHeader(data, off)
		if off == target {
			if hdr.Free {
				return ErrNotAllocated
			}
			hdr.Free = true
			format.PutHeader(data, off, hdr)
			return nil
		}
		off = format.Next(off, hdr)
	}
	return ErrBadRef
}
