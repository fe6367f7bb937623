// Package printer renders block-chain dumps of a simulated heap in text or
// JSON form.
package printer

import (
	"io"

	"github.com/joshuapare/heapkit/heap/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the classic human-readable chain listing.
	FormatText Format = "text"

	// FormatJSON outputs a JSON document.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// ShowStats appends a chain summary after the block listing.
	// Default: false
	ShowStats bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{Format: FormatText}
}

// Dumper exposes the read-only chain views the printer needs. Both
// alloc.Engine and alloc.LockedEngine satisfy it.
type Dumper interface {
	Blocks() []alloc.Block
	Stats() alloc.Stats
}

// Printer handles formatted output of the block chain.
type Printer struct {
	opts Options
	w    io.Writer
	d    Dumper
}

// New creates a new Printer reading from d and writing to w.
func New(d Dumper, w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{opts: opts, w: w, d: d}
}

// PrintChain writes the full chain dump in the configured format.
func (p *Printer) PrintChain() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printChainJSON()
	default:
		return p.printChainText()
	}
}

// PrintStats writes the chain summary in the configured format.
func (p *Printer) PrintStats() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printStatsJSON()
	default:
		return p.printStatsText()
	}
}
