package align

import "sort"

// alignTable is the sparse sentence alignment table: the run-long
// accumulator of alignment evidence between sentence pairs.
//
// Scores live in a map-of-maps keyed x → y → Score; entries exist only
// once scored, so an absent entry is an implicit zero. Alongside the
// score map, every coordinate whose Score has reached anchorThreshold
// is kept in a lexicographically sorted slice, so anchor scans
// (nextAnchor, crossover) never touch the full score map.
type alignTable struct {
	anchorThreshold Score
	scores          map[int]map[int]Score
	anchors         []Coord // sorted by (X, Y)
	end             Coord
}

// newAlignTable builds an empty table for texts of aLen and bLen
// sentences. Callers guarantee both lengths are >= 1.
func newAlignTable(aLen, bLen int, anchorThreshold Score) *alignTable {
	return &alignTable{
		anchorThreshold: anchorThreshold,
		scores:          make(map[int]map[int]Score),
		end:             Coord{X: bLen - 1, Y: aLen - 1},
	}
}

// score returns the accumulated Score at c, zero when unscored.
func (t *alignTable) score(c Coord) Score {
	return t.scores[c.X][c.Y]
}

// increment adds one unit of evidence at c, creating the entry if
// absent. The coordinate joins the anchor index the moment it first
// reaches the anchor threshold.
func (t *alignTable) increment(c Coord) {
	ys := t.scores[c.X]
	if ys == nil {
		ys = make(map[int]Score)
		t.scores[c.X] = ys
	}
	ys[c.Y]++
	if ys[c.Y] == t.anchorThreshold {
		t.insertAnchor(c)
	}
}

// insertAnchor splices c into the sorted anchor slice.
func (t *alignTable) insertAnchor(c Coord) {
	i := sort.Search(len(t.anchors), func(i int) bool { return !t.anchors[i].Less(c) })
	t.anchors = append(t.anchors, Coord{})
	copy(t.anchors[i+1:], t.anchors[i:])
	t.anchors[i] = c
}

// crossover reports whether accepting c as an anchor would cross an
// existing one: an anchor strictly right of c with a strictly smaller
// Y, or strictly left of c with a strictly larger Y. Only the anchor
// index is scanned, never the full score map.
func (t *alignTable) crossover(c Coord) bool {
	i := sort.Search(len(t.anchors), func(i int) bool { return !t.anchors[i].Less(c) })
	for _, a := range t.anchors[i:] {
		if a.X > c.X && a.Y < c.Y {
			return true
		}
	}
	for _, a := range t.anchors[:i] {
		if a.X < c.X && a.Y > c.Y {
			return true
		}
	}

	return false
}

// nextAnchor returns the first anchor, in (X, Y) order, strictly
// greater than from on both axes, or the table's end coordinate when
// none remains. A nil from yields the synthetic origin (0,0), which
// need not itself be an anchor. The both-axes-strict step is what lets
// the region builder walk anchors as a staircase with non-negative
// spans on both axes.
func (t *alignTable) nextAnchor(from *Coord) Coord {
	if from == nil {
		return Coord{}
	}
	i := sort.Search(len(t.anchors), func(i int) bool { return t.anchors[i].X > from.X })
	for _, a := range t.anchors[i:] {
		if a.Y > from.Y {
			return a
		}
	}

	return t.end
}

// anchorList returns the current anchors in (X, Y) order. The returned
// slice is a copy and stays valid across further increments.
func (t *alignTable) anchorList() []Coord {
	out := make([]Coord, len(t.anchors))
	copy(out, t.anchors)

	return out
}
