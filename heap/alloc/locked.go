package alloc

import (
	"sync"

	"github.com/Jille/easymutex"
)

// LockedEngine guards every engine operation with a single mutex. The core
// Engine stays lock-free because the simulated design has exactly one
// logical actor; use this wrapper when sharing one heap between goroutines.
type LockedEngine struct {
	mtx sync.Mutex
	e   *Engine
}

// Locked wraps an Engine with mutual exclusion.
func Locked(e *Engine) *LockedEngine {
	return &LockedEngine{e: e}
}

// Alloc calls Engine.Alloc under the lock.
func (l *LockedEngine) Alloc(size int) (Ref, []byte, error) {
	em := easymutex.LockMutex(&l.mtx)
	defer em.Unlock()
	return l.e.Alloc(size)
}

// Free calls Engine.Free under the lock.
func (l *LockedEngine) Free(ref Ref) error {
	em := easymutex.LockMutex(&l.mtx)
	defer em.Unlock()
	return l.e.Free(ref)
}

// Coalesce calls Engine.Coalesce under the lock.
func (l *LockedEngine) Coalesce() int {
	em := easymutex.LockMutex(&l.mtx)
	defer em.Unlock()
	return l.e.Coalesce()
}

// Blocks calls Engine.Blocks under the lock.
func (l *LockedEngine) Blocks() []Block {
	em := easymutex.LockMutex(&l.mtx)
	defer em.Unlock()
	return l.e.Blocks()
}

// Stats calls Engine.Stats under the lock.
func (l *LockedEngine) Stats() Stats {
	em := easymutex.LockMutex(&l.mtx)
	defer em.Unlock()
	return l.e.Stats()
}

// Validate calls Engine.Validate under the lock.
func (l *LockedEngine) Validate() error {
	em := easymutex.LockMutex(&l.mtx)
	defer em.Unlock()
	return l.e.Validate()
}
