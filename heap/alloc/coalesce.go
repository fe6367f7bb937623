package alloc

import "github.com/joshuapare/heapkit/internal/format"

// Coalesce merges every maximal run of adjacent free blocks into a single
// free block and reports how many blocks were absorbed. Absorbed headers
// simply stop being chain entries; their bytes become part of the merged
// payload. Running Coalesce twice in a row is a no-op.
func (e *Engine) Coalesce() int {
	brk, err := e.h.Sbrk(0)
	if err != nil {
		return 0
	}
	data := e.h.Bytes()

	absorbed := 0
	for off := 0; off < brk; {
		hdr := format.ReadHeader(data, off)
		if hdr.Free {
			grown := false
			for {
				next := format.Next(off, hdr)
				if next >= brk {
					break
				}
				nextHdr := format.ReadHeader(data, next)
				if !nextHdr.Free {
					break
				}
				hdr.Size += format.HeaderSize + nextHdr.Size
				absorbed++
				grown = true
			}
			if grown {
				format.PutHeader(data, off, hdr)
			}
		}
		off = format.Next(off, hdr)
	}
	return absorbed
}
