package printer

import (
	"io"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/joshuapare/heapkit/heap/alloc"
)

// printChainJSON writes the chain as a single JSON object with a Blocks
// array and, when enabled, a Stats object.
func (p *Printer) printChainJSON() error {
	w := jwriter.NewWriter()
	obj := w.Object()

	arr := obj.Name("Blocks").Array()
	for _, b := range p.d.Blocks() {
		bo := arr.Object()
		bo.Name("Index").Int(b.Index)
		bo.Name("Offset").Int(b.Offset)
		bo.Name("Size").Int(b.Size)
		bo.Name("Free").Bool(b.Free)
		bo.End()
	}
	arr.End()

	if p.opts.ShowStats {
		so := obj.Name("Stats").Object()
		writeStats(so, p.d.Stats())
		so.End()
	}
	obj.End()

	return p.flush(&w)
}

// printStatsJSON writes only the chain summary object.
func (p *Printer) printStatsJSON() error {
	w := jwriter.NewWriter()
	obj := w.Object()
	writeStats(obj, p.d.Stats())
	obj.End()
	return p.flush(&w)
}

func writeStats(obj jwriter.ObjectState, st alloc.Stats) {
	obj.Name("Blocks").Int(st.Blocks)
	obj.Name("FreeBlocks").Int(st.FreeBlocks)
	obj.Name("FreeBytes").Int(st.FreeBytes)
	obj.Name("UsedBlocks").Int(st.UsedBlocks)
	obj.Name("UsedBytes").Int(st.UsedBytes)
	obj.Name("HeaderBytes").Int(st.HeaderBytes)
	obj.Name("Break").Int(st.Break)
	obj.Name("Cap").Int(st.Cap)
}

func (p *Printer) flush(w *jwriter.Writer) error {
	if err := w.Error(); err != nil {
		return err
	}
	if _, err := p.w.Write(w.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}
