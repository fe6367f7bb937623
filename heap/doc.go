// Package heap owns the simulated process heap: a fixed-size anonymous
// memory arena and the movable break cursor inside it.
//
// # Overview
//
// A Heap is reserved once with Open and released once with Close. Between
// those two calls the arena never moves or resizes; all addressing is done
// with plain integer offsets into Bytes(). The single mutating primitive is
// Sbrk, which mimics the classic sbrk(2) contract:
//
//	brk, _ := h.Sbrk(0)     // query the current break
//	base, _ := h.Sbrk(100)  // claim 100 bytes, base is the old break
//	_, _ = h.Sbrk(-100)     // give them back
//
// Everything below the break belongs to the block chain managed by
// heap/alloc; everything above it is raw unused capacity. Sbrk never touches
// arena bytes, it only moves the boundary.
//
// # Thread Safety
//
// Heap is not thread-safe. Callers must synchronize access externally; see
// alloc.LockedEngine for a guarded front end.
package heap
