package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/format"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestEngine opens a heap of the given capacity and returns an engine
// over it. The heap is closed when the test finishes.
func newTestEngine(t testing.TB, capacity int) (*Engine, *heap.Heap) {
	t.Helper()
	h, err := heap.Open(capacity)
	require.NoError(t, err, "Open should succeed")
	t.Cleanup(func() {
		require.NoError(t, h.Close())
	})
	return New(h), h
}

// blockSpec describes one desired chain entry for buildChain/assertChain.
type blockSpec struct {
	size int
	free bool
}

// buildChain lays out a chain with the given payload sizes and statuses by
// allocating every block in order (appending, since the heap starts empty)
// and then freeing the ones marked free. Returns the payload refs in chain
// order.
func buildChain(t testing.TB, e *Engine, specs []blockSpec) []Ref {
	t.Helper()
	refs := make([]Ref, len(specs))
	for i, s := range specs {
		ref, _, err := e.Alloc(s.size)
		require.NoError(t, err, "Alloc(%d) for chain block %d", s.size, i)
		refs[i] = ref
	}
	for i, s := range specs {
		if s.free {
			require.NoError(t, e.Free(refs[i]), "Free chain block %d", i)
		}
	}
	return refs
}

// assertChain verifies the walk reports exactly the expected blocks.
func assertChain(t testing.TB, e *Engine, want []blockSpec) {
	t.Helper()
	got := e.Blocks()
	require.Len(t, got, len(want), "chain length mismatch")
	for i, b := range got {
		assert.Equal(t, i+1, b.Index, "block %d: 1-based index", i)
		assert.Equal(t, want[i].size, b.Size, "block %d: payload size", i)
		assert.Equal(t, want[i].free, b.Free, "block %d: free status", i)
	}
}

// assertInvariants checks the structural invariants that must hold after any
// operation: the chain parses, blocks are adjacent with no gap or overlap,
// and the accounted bytes land exactly on the break.
func assertInvariants(t testing.TB, e *Engine, h *heap.Heap) {
	t.Helper()
	require.NoError(t, e.Validate(), "chain must validate")

	brk, err := h.Sbrk(0)
	require.NoError(t, err)

	blocks := e.Blocks()
	off := 0
	for i, b := range blocks {
		require.Equal(t, off, b.Offset, "block %d must start where block %d ended", i, i-1)
		off += format.HeaderSize + b.Size
	}
	require.Equal(t, brk, off, "chain walk must land exactly on the break")

	st := e.Stats()
	require.Equal(t, brk, st.HeaderBytes+st.FreeBytes+st.UsedBytes,
		"accounted bytes must equal the break offset")
	require.LessOrEqual(t, brk, st.Cap, "break must stay within the arena")
}
