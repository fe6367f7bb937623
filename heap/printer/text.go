package printer

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// msgPrinter groups digits in large byte counts (1,048,576).
var msgPrinter = message.NewPrinter(language.English)

// printChainText prints one line per block, counting positions from the
// arena's low end:
//
//	Block 01: [FREE] size =  100 bytes
func (p *Printer) printChainText() error {
	for _, b := range p.d.Blocks() {
		status := "OCCP"
		if b.Free {
			status = "FREE"
		}
		unit := "bytes"
		if b.Size == 1 {
			unit = "byte"
		}
		if _, err := fmt.Fprintf(p.w, "Block %02d: [%s] size = %4d %s\n",
			b.Index, status, b.Size, unit); err != nil {
			return err
		}
	}
	if p.opts.ShowStats {
		return p.printStatsText()
	}
	return nil
}

// printStatsText prints the chain summary in human-readable text format.
func (p *Printer) printStatsText() error {
	st := p.d.Stats()
	_, err := msgPrinter.Fprintf(p.w,
		"Blocks:  %d (%d free)\nPayload: %d bytes used, %d bytes free\nHeaders: %d bytes\nBreak:   %d of %d bytes\n",
		st.Blocks, st.FreeBlocks, st.UsedBytes, st.FreeBytes,
		st.HeaderBytes, st.Break, st.Cap)
	return err
}
