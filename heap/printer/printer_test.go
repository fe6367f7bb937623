package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
)

// newTestDump builds a small chain: 100 occupied, 1 free, 0 occupied.
func newTestDump(t *testing.T) *alloc.Engine {
	t.Helper()
	h, err := heap.Open(8000)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close()) })

	e := alloc.New(h)
	refs := make([]alloc.Ref, 0, 3)
	for _, size := range []int{100, 1, 0} {
		ref, _, err := e.Alloc(size)
		require.NoError(t, err)
		refs = append(refs, ref)
	}
	require.NoError(t, e.Free(refs[1]))
	return e
}

func TestPrintChainText(t *testing.T) {
	e := newTestDump(t)
	var buf bytes.Buffer

	p := New(e, &buf, DefaultOptions())
	require.NoError(t, p.PrintChain())

	want := "Block 01: [OCCP] size =  100 bytes\n" +
		"Block 02: [FREE] size =    1 byte\n" +
		"Block 03: [OCCP] size =    0 bytes\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintChainTextWideSizes(t *testing.T) {
	h, err := heap.Open(100000)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close()) })
	e := alloc.New(h)
	_, _, err = e.Alloc(12345)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(e, &buf, DefaultOptions()).PrintChain())
	assert.Equal(t, "Block 01: [OCCP] size = 12345 bytes\n", buf.String(),
		"sizes wider than the pad column print unpadded")
}

func TestPrintChainJSON(t *testing.T) {
	e := newTestDump(t)
	var buf bytes.Buffer

	p := New(e, &buf, Options{Format: FormatJSON, ShowStats: true})
	require.NoError(t, p.PrintChain())

	var doc struct {
		Blocks []struct {
			Index  int
			Offset int
			Size   int
			Free   bool
		}
		Stats struct {
			Blocks     int
			FreeBlocks int
			FreeBytes  int
			UsedBytes  int
			Break      int
			Cap        int
		}
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Blocks, 3)
	assert.Equal(t, 1, doc.Blocks[0].Index)
	assert.Equal(t, 0, doc.Blocks[0].Offset)
	assert.Equal(t, 100, doc.Blocks[0].Size)
	assert.False(t, doc.Blocks[0].Free)
	assert.True(t, doc.Blocks[1].Free)
	assert.Equal(t, 1, doc.Blocks[1].Size)

	assert.Equal(t, 3, doc.Stats.Blocks)
	assert.Equal(t, 1, doc.Stats.FreeBlocks)
	assert.Equal(t, 1, doc.Stats.FreeBytes)
	assert.Equal(t, 100, doc.Stats.UsedBytes)
	assert.Equal(t, 8000, doc.Stats.Cap)
}

func TestPrintStats(t *testing.T) {
	e := newTestDump(t)
	var buf bytes.Buffer

	p := New(e, &buf, DefaultOptions())
	require.NoError(t, p.PrintStats())

	out := buf.String()
	assert.Contains(t, out, "Blocks:  3 (1 free)")
	assert.Contains(t, out, "100 bytes used, 1 bytes free")
	assert.Contains(t, out, "8,000 bytes", "large counts print with digit grouping")
}

func TestPrintChainEmptyHeap(t *testing.T) {
	h, err := heap.Open(100)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close()) })
	e := alloc.New(h)

	var buf bytes.Buffer
	require.NoError(t, New(e, &buf, DefaultOptions()).PrintChain())
	assert.Empty(t, buf.String(), "an empty chain prints nothing")
}

func TestLockedEngineSatisfiesDumper(t *testing.T) {
	h, err := heap.Open(100)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close()) })

	var d Dumper = alloc.Locked(alloc.New(h))
	var buf bytes.Buffer
	require.NoError(t, New(d, &buf, DefaultOptions()).PrintChain())
}
