package align

import (
	"math"
	"sort"
)

// region is the cycle-scoped alignable sentence table: the set of
// sentence pairs eligible for new word evidence this cycle. It is
// rebuilt from scratch each cycle from the current anchors and
// discarded at cycle end.
type region struct {
	cells map[int]map[int]struct{} // x → set of y
}

// buildRegion derives the candidate region by walking consecutive
// anchor pairs from the synthetic origin until nextAnchor stops
// advancing (the table end has been reached), banding each segment.
func buildRegion(t *alignTable) *region {
	r := &region{cells: make(map[int]map[int]struct{})}

	start := t.nextAnchor(nil)
	end := t.nextAnchor(&start)
	for start != end {
		r.fillBand(start, end)
		start = end
		end = t.nextAnchor(&start)
	}

	return r
}

// fillBand adds a lens-shaped corridor between two consecutive anchors:
// the band is widest (≈ √longer-span) at the segment midpoint and
// narrows to a single cell at both ends, where the alignment is pinned
// by a known anchor. The shorter axis is scanned; at each step the band
// is centered on the linear interpolation along the longer axis and
// clamped to the segment.
//
// Degenerate segments avoid the division by zero explicitly: a
// zero-length segment is the single point itself, and a segment flat on
// the scanned axis degrades to a width-1 line along the other axis.
func (r *region) fillBand(start, end Coord) {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)

	switch {
	case dx == 0 && dy == 0:
		r.insert(start)
	case dx > dy:
		if dy == 0 {
			for x := start.X; x <= end.X; x++ {
				r.insert(Coord{X: x, Y: start.Y})
			}

			return
		}
		for y := start.Y; y <= end.Y; y++ {
			progress := float64(y-start.Y) / dy
			lo, hi := bandBounds(progress, dx, start.X, end.X)
			for x := lo; x <= hi; x++ {
				r.insert(Coord{X: x, Y: y})
			}
		}
	default:
		if dx == 0 {
			for y := start.Y; y <= end.Y; y++ {
				r.insert(Coord{X: start.X, Y: y})
			}

			return
		}
		for x := start.X; x <= end.X; x++ {
			progress := float64(x-start.X) / dx
			lo, hi := bandBounds(progress, dy, start.Y, end.Y)
			for y := lo; y <= hi; y++ {
				r.insert(Coord{X: x, Y: y})
			}
		}
	}
}

// bandBounds computes the inclusive band interval on the inner axis for
// one outer-axis step: width = max(1, ⌊√span·(1−taper)⌋) where taper is
// 0 at the midpoint and 1 at either end, centered on the interpolated
// diagonal and clamped to [lo, hi] of the segment.
func bandBounds(progress, span float64, lo, hi int) (int, int) {
	taper := math.Abs(0.5-progress) / 0.5
	width := math.Sqrt(span) * (1 - taper)
	if width < 1 {
		width = 1
	}
	half := float64(int(width)) / 2

	center := float64(lo) + progress*span
	bandLo := int(math.Max(math.Floor(center-half), float64(lo)))
	bandHi := int(math.Min(math.Floor(center+half), float64(hi)))

	return bandLo, bandHi
}

func (r *region) insert(c Coord) {
	ys := r.cells[c.X]
	if ys == nil {
		ys = make(map[int]struct{})
		r.cells[c.X] = ys
	}
	ys[c.Y] = struct{}{}
}

// contains reports whether the sentence pair c is alignable this cycle.
func (r *region) contains(c Coord) bool {
	_, ok := r.cells[c.X][c.Y]

	return ok
}

// all returns every region coordinate in (X, Y) order.
func (r *region) all() []Coord {
	var out []Coord
	for x, ys := range r.cells {
		for y := range ys {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
