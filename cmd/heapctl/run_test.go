package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/script"
)

func runGolden(t *testing.T, in string, heapSize int) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := runScript(strings.NewReader(in), &buf, heapSize)
	return buf.String(), err
}

func TestRunScriptWorkload(t *testing.T) {
	in := `7
malloc a 100
malloc b 42
free a
malloc c 20
malloc a 100
free b
combine_nearby_free
`
	// The 100-byte block freed in step 3 is split by the 20-byte request
	// in step 4, leaving a 71-byte remainder (100 - 20 - one header).
	want := `=== malloc a 100 ===
Block 01: [OCCP] size =  100 bytes
=== malloc b 42 ===
Block 01: [OCCP] size =  100 bytes
Block 02: [OCCP] size =   42 bytes
=== free a ===
Block 01: [FREE] size =  100 bytes
Block 02: [OCCP] size =   42 bytes
=== malloc c 20 ===
Block 01: [OCCP] size =   20 bytes
Block 02: [FREE] size =   71 bytes
Block 03: [OCCP] size =   42 bytes
=== malloc a 100 ===
Block 01: [OCCP] size =   20 bytes
Block 02: [FREE] size =   71 bytes
Block 03: [OCCP] size =   42 bytes
Block 04: [OCCP] size =  100 bytes
=== free b ===
Block 01: [OCCP] size =   20 bytes
Block 02: [FREE] size =   71 bytes
Block 03: [FREE] size =   42 bytes
Block 04: [OCCP] size =  100 bytes
=== Combine nearby free blocks ===
Block 01: [OCCP] size =   20 bytes
Block 02: [FREE] size =  122 bytes
Block 03: [OCCP] size =  100 bytes
`
	got, err := runGolden(t, in, format.DefaultHeapSize)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunScriptHandleErrors(t *testing.T) {
	in := `4
free a
malloc a 10
malloc a 5
free a
`
	want := `=== free a ===
free Error: a is pointing to NULL
=== malloc a 10 ===
Block 01: [OCCP] size =   10 bytes
=== malloc a 5 ===
malloc Error: a is pointing to some memory address
=== free a ===
Block 01: [FREE] size =   10 bytes
`
	got, err := runGolden(t, in, format.DefaultHeapSize)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunScriptExhaustion(t *testing.T) {
	// 50-byte heap: the 30-byte block consumes 39 bytes, so the second
	// request cannot grow. The handle stays unbound and the chain is
	// printed unchanged.
	in := `3
malloc a 30
malloc b 10
free b
`
	want := `=== malloc a 30 ===
Block 01: [OCCP] size =   30 bytes
=== malloc b 10 ===
Block 01: [OCCP] size =   30 bytes
=== free b ===
free Error: b is pointing to NULL
`
	got, err := runGolden(t, in, 50)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunScriptJSONOutput(t *testing.T) {
	jsonOut = true
	t.Cleanup(func() { jsonOut = false })

	got, err := runGolden(t, "1 malloc a 5", format.DefaultHeapSize)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "=== malloc a 5 ===", lines[0])

	var doc struct {
		Blocks []struct {
			Index int
			Size  int
			Free  bool
		}
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &doc))
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, 5, doc.Blocks[0].Size)
	assert.False(t, doc.Blocks[0].Free)
}

func TestRunScriptParseError(t *testing.T) {
	_, err := runGolden(t, "1 realloc a 5", format.DefaultHeapSize)
	require.ErrorIs(t, err, script.ErrBadOp)
}

func TestRunScriptEmptyWorkload(t *testing.T) {
	got, err := runGolden(t, "0", format.DefaultHeapSize)
	require.NoError(t, err)
	assert.Empty(t, got)
}
