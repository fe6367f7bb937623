package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/printer"
	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/internal/script"
)

var (
	runHeapSize  int
	runShowStats bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runHeapSize, "heap-size", format.DefaultHeapSize, "Arena capacity in bytes")
	cmd.Flags().BoolVar(&runShowStats, "stats", false, "Append a chain summary after each dump")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Execute a heap workload script",
		Long: `The run command parses a workload script and replays it against a
fresh heap, printing the block chain after every operation. The script is
read from the given file, or from stdin when no file is given.

A script starts with the operation count, followed by that many
operations: "malloc <name> <size>", "free <name>", or
"combine_nearby_free". Names are single letters a-z.

Example:
  heapctl run workload.txt
  heapctl run workload.txt --heap-size 16000 --stats
  echo "2 malloc a 100 free a" | heapctl run --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runScript(in, os.Stdout, runHeapSize)
		},
	}
}

// runScript replays a parsed workload against a fresh heap, writing the
// chain dump after each operation to w.
func runScript(r io.Reader, w io.Writer, heapSize int) error {
	ops, err := script.Parse(r)
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}
	printVerbose("Parsed %d operation(s)\n", len(ops))

	h, err := heap.Open(heapSize)
	if err != nil {
		return fmt.Errorf("open heap: %w", err)
	}
	defer h.Close()

	e := alloc.New(h)
	if verbose {
		alloc.EnableDebug()
	}

	opts := printer.DefaultOptions()
	opts.ShowStats = runShowStats
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	p := printer.New(e, w, opts)

	// Handle table: one slot per letter, -1 when unbound.
	var handles [script.MaxHandles]alloc.Ref
	for i := range handles {
		handles[i] = -1
	}

	for _, op := range ops {
		if err := step(e, p, w, &handles, op); err != nil {
			return err
		}
		if verbose {
			e.LogStatus()
		}
	}
	return nil
}

func step(e *alloc.Engine, p *printer.Printer, w io.Writer, handles *[script.MaxHandles]alloc.Ref, op script.Op) error {
	switch op.Kind {
	case script.KindMalloc:
		slot := script.Index(op.Name)
		if handles[slot] >= 0 {
			fmt.Fprintf(w, "=== %s ===\n", op)
			fmt.Fprintf(w, "malloc Error: %c is pointing to some memory address\n", op.Name)
			return nil
		}
		ref, payload, err := e.Alloc(op.Size)
		switch {
		case err == nil:
			// Filling the payload proves the returned region is writable
			// without clobbering any neighboring header.
			for i := range payload {
				payload[i] = ' '
			}
			handles[slot] = ref
		case !errors.Is(err, alloc.ErrNoSpace):
			return err
		}
		// On exhaustion the handle stays unbound and the unchanged chain
		// is printed.
		fmt.Fprintf(w, "=== %s ===\n", op)
		return p.PrintChain()

	case script.KindFree:
		slot := script.Index(op.Name)
		if handles[slot] < 0 {
			fmt.Fprintf(w, "=== %s ===\n", op)
			fmt.Fprintf(w, "free Error: %c is pointing to NULL\n", op.Name)
			return nil
		}
		if err := e.Free(handles[slot]); err != nil {
			return err
		}
		handles[slot] = -1
		fmt.Fprintf(w, "=== %s ===\n", op)
		return p.PrintChain()

	default: // script.KindCombine
		e.Coalesce()
		fmt.Fprintf(w, "=== Combine nearby free blocks ===\n")
		return p.PrintChain()
	}
}
