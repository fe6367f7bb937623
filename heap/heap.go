package heap

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/mmarena"
)

// Heap is the reserved arena, backed by an anonymous mapping (unix) or a
// byte slice (others), plus the current break cursor.
type Heap struct {
	data    []byte
	brk     int
	release func() error
}

// Open reserves an arena of capacity bytes with the break at the arena start.
func Open(capacity int) (*Heap, error) {
	data, release, err := mmarena.Reserve(capacity)
	if err != nil {
		return nil, fmt.Errorf("heap: reserve arena: %w", err)
	}
	return &Heap{data: data, release: release}, nil
}

// Sbrk queries or moves the break cursor and returns the break position
// before the move.
//
//   - delta == 0 reports the current break without mutation.
//   - delta > 0 advances the break, failing with ErrOutOfSpace when the move
//     would pass the arena end. The returned offset is the base of the newly
//     claimed span.
//   - delta < 0 retreats the break, failing with ErrUnderflow when the move
//     would pass the arena start.
//
// Bounds failures never clamp; the break is left exactly where it was.
func (h *Heap) Sbrk(delta int) (int, error) {
	if h == nil || h.data == nil {
		return 0, ErrClosed
	}
	switch {
	case delta > 0:
		if h.brk+delta > len(h.data) {
			return 0, ErrOutOfSpace
		}
	case delta < 0:
		if h.brk+delta < 0 {
			return 0, ErrUnderflow
		}
	}
	prev := h.brk
	h.brk += delta
	return prev, nil
}

// Bytes returns the arena. The slice aliases the mapping; it must not be
// used after Close.
func (h *Heap) Bytes() []byte { return h.data }

// Cap returns the fixed arena capacity in bytes, or 0 when closed.
func (h *Heap) Cap() int {
	if h == nil {
		return 0
	}
	return len(h.data)
}

// Close releases the arena. Closing an already-closed heap is a no-op.
func (h *Heap) Close() error {
	if h == nil || h.data == nil {
		return nil
	}
	h.data = nil
	h.brk = 0
	release := h.release
	h.release = nil
	if release == nil {
		return nil
	}
	if err := release(); err != nil {
		return fmt.Errorf("heap: release arena: %w", err)
	}
	return nil
}
