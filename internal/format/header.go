package format

import "fmt"

// Header represents the metadata prefix of a single block (free or occupied)
// within the arena.
//
// Blocks carry no embedded links; the block after a header at off begins at
// off + HeaderSize + Size. Walking headers from the arena start therefore
// recovers the whole chain positionally.
type Header struct {
	Size int  // Payload length in bytes, header excluded
	Free bool // True when the block is marked as free
}

// ReadHeader decodes the header at off, trusting that off points at a block
// start inside the buffer. Hot paths use it after the chain invariants have
// already been established; ParseHeader is the checked variant.
func ReadHeader(b []byte, off int) Header {
	return Header{
		Size: int(ReadU64(b, off+SizeOffset)),
		Free: b[off+StatusOffset] == StatusFree,
	}
}

// PutHeader encodes h at off. The caller must ensure off+HeaderSize is within
// the buffer.
func PutHeader(b []byte, off int, h Header) {
	PutU64(b, off+SizeOffset, uint64(h.Size))
	status := StatusOccupied
	if h.Free {
		status = StatusFree
	}
	b[off+StatusOffset] = status
}

// ParseHeader decodes the header at off with full validation. limit is the
// exclusive upper bound the block must fit below (normally the break cursor).
func ParseHeader(b []byte, off, limit int) (Header, error) {
	if limit > len(b) {
		limit = len(b)
	}
	if off < 0 || off+HeaderSize > limit {
		return Header{}, fmt.Errorf("header at %d: %w", off, ErrTruncated)
	}
	status := b[off+StatusOffset]
	if status != StatusFree && status != StatusOccupied {
		return Header{}, fmt.Errorf("header at %d: %w (0x%02x)", off, ErrBadStatus, status)
	}
	size := ReadU64(b, off+SizeOffset)
	if size > uint64(limit-off-HeaderSize) {
		return Header{}, fmt.Errorf("header at %d: %w (%d)", off, ErrBadSize, size)
	}
	return Header{Size: int(size), Free: status == StatusFree}, nil
}

// Next returns the offset of the block that positionally follows a header h
// located at off.
func Next(off int, h Header) int {
	return off + HeaderSize + h.Size
}
