package align

// Output is the immutable result of an alignment run: for every
// sentence of each text, the anchor partners in the other text, plus
// the per-cycle coverage trace.
type Output struct {
	aTo      map[int][]int // A-sentence index → sorted B-sentence indices
	bTo      map[int][]int // B-sentence index → sorted A-sentence indices
	coverage []float64
}

// newOutput snapshots the final anchors. Walking the anchors in (X, Y)
// order keeps every partner list sorted without a second pass.
func newOutput(t *alignTable, trace []float64) *Output {
	out := &Output{
		aTo:      make(map[int][]int),
		bTo:      make(map[int][]int),
		coverage: trace,
	}
	for _, c := range t.anchorList() {
		out.aTo[c.Y] = append(out.aTo[c.Y], c.X)
		out.bTo[c.X] = append(out.bTo[c.X], c.Y)
	}

	return out
}

// AAlignments returns the B-sentence indices anchored to A-sentence i,
// in ascending order. Unaligned sentences yield an empty result.
func (o *Output) AAlignments(i int) []int {
	return append([]int(nil), o.aTo[i]...)
}

// BAlignments returns the A-sentence indices anchored to B-sentence i,
// in ascending order. Unaligned sentences yield an empty result.
func (o *Output) BAlignments(i int) []int {
	return append([]int(nil), o.bTo[i]...)
}

// Coverage returns the per-cycle coverage trace, one entry per
// completed cycle, non-decreasing by construction.
func (o *Output) Coverage() []float64 {
	return append([]float64(nil), o.coverage...)
}
