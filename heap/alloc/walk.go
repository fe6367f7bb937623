package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/format"
)

// Blocks walks the chain from the arena start to the break and reports each
// block in positional order. The walk is read-only.
func (e *Engine) Blocks() []Block {
	brk, err := e.h.Sbrk(0)
	if err != nil {
		return nil
	}
	data := e.h.Bytes()

	var blocks []Block
	for off, i := 0, 1; off < brk; i++ {
		hdr := format.ReadHeader(data, off)
		blocks = append(blocks, Block{Index: i, Offset: off, Size: hdr.Size, Free: hdr.Free})
		off = format.Next(off, hdr)
	}
	return blocks
}

// Stats summarizes the current chain.
func (e *Engine) Stats() Stats {
	st := Stats{Cap: e.h.Cap()}
	brk, err := e.h.Sbrk(0)
	if err != nil {
		return st
	}
	st.Break = brk
	for _, b := range e.Blocks() {
		st.Blocks++
		st.HeaderBytes += format.HeaderSize
		if b.Free {
			st.FreeBlocks++
			st.FreeBytes += b.Size
		} else {
			st.UsedBlocks++
			st.UsedBytes += b.Size
		}
	}
	return st
}

// Validate checks chain integrity: every header parses, every block lies
// fully below the break, and the walk from the arena start lands exactly on
// the break with no gap and no overlap.
func (e *Engine) Validate() error {
	brk, err := e.h.Sbrk(0)
	if err != nil {
		return err
	}
	data := e.h.Bytes()

	off := 0
	for off < brk {
		hdr, err := format.ParseHeader(data, off, brk)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		off = format.Next(off, hdr)
	}
	if off != brk {
		return fmt.Errorf("%w: walk ends at %d, break is %d", ErrCorrupt, off, brk)
	}
	return nil
}
