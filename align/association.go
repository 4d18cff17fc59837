package align

import (
	"cmp"
	"math"
	"sort"

	"github.com/tverian/bitext/hirschberg"
)

// wordAssociation is one cycle-scoped candidate pairing of a word from
// text A with a word from text B, with its similarity and the words'
// global occurrence counts. Forced associations carry similarity 1.0
// and maximal counts so they outrank every statistical pair.
type wordAssociation[W cmp.Ordered] struct {
	a, b         W
	similarity   float64
	aOccurrences int
	bOccurrences int
}

// rankLess orders associations for promotion: descending similarity,
// then descending combined occurrence count, then ascending word A,
// and finally ascending word B. The last step resolves pairs that tie
// on the same A word, keeping the ranking a strict total order.
func rankLess[W cmp.Ordered](p, q wordAssociation[W]) bool {
	if p.similarity != q.similarity {
		return p.similarity > q.similarity
	}
	ps := uint64(p.aOccurrences) + uint64(p.bOccurrences)
	qs := uint64(q.aOccurrences) + uint64(q.bOccurrences)
	if ps != qs {
		return ps > qs
	}
	if p.a != q.a {
		return p.a < q.a
	}

	return p.b < q.b
}

// associate builds the wordAssociation for one (a, b) word pair against
// the current region.
func (p *aligner[W]) associate(r *region, a, b W) wordAssociation[W] {
	if p.opts.Association != nil && p.opts.Association(a, b) {
		return wordAssociation[W]{
			a:            a,
			b:            b,
			similarity:   1.0,
			aOccurrences: math.MaxInt,
			bOccurrences: math.MaxInt,
		}
	}

	return wordAssociation[W]{
		a:            a,
		b:            b,
		similarity:   p.similarity(r, a, b),
		aOccurrences: p.aIndex.occurrences(a),
		bOccurrences: p.bIndex.occurrences(b),
	}
}

// similarity scores one word pair as a Dice-style coefficient: the two
// occurrence lists are globally aligned under a compatibility predicate
// that accepts a (y, x) candidate pair iff the sentence pair lies in
// the alignable region. With match 1 and mismatch/gap 0 the alignment
// score c is the maximum count of monotonically ordered, region-
// compatible occurrence pairs, and the result is 2c/(occA+occB).
//
// Pure function of the region and the (immutable) indexes: rescoring an
// unchanged pair yields an identical float.
func (p *aligner[W]) similarity(r *region, a, b W) float64 {
	opts := hirschberg.DefaultOptions[int, int]()
	opts.Compare = func(y, x int) bool { return r.contains(Coord{X: x, Y: y}) }

	c, err := hirschberg.Score(p.aIndex.sentences(a), p.bIndex.sentences(b), opts)
	if err != nil {
		return 0 // unreachable: Compare is always set
	}

	return float64(2*c) / float64(p.aIndex.occurrences(a)+p.bIndex.occurrences(b))
}

// alignSentences applies one ranked association: every region-contained
// (x, y) sentence pair where both words co-occur is collected into a
// bipartite candidate map, and only mutual unique matches — x pairing
// with exactly one y which pairs back with exactly that x — survive.
// If any surviving candidate is unscored and would cross an existing
// anchor, the whole batch is rejected; otherwise every candidate is
// incremented and returned in (X, Y) order.
func (p *aligner[W]) alignSentences(r *region, t *alignTable, assoc wordAssociation[W]) []Coord {
	aCandidates := make(map[int]map[int]struct{}) // y → set of x
	bCandidates := make(map[int]map[int]struct{}) // x → set of y
	for _, y := range p.aIndex.sentences(assoc.a) {
		for _, x := range p.bIndex.sentences(assoc.b) {
			if !r.contains(Coord{X: x, Y: y}) {
				continue
			}
			if aCandidates[y] == nil {
				aCandidates[y] = make(map[int]struct{})
			}
			if bCandidates[x] == nil {
				bCandidates[x] = make(map[int]struct{})
			}
			aCandidates[y][x] = struct{}{}
			bCandidates[x][y] = struct{}{}
		}
	}

	var batch []Coord
	for x, ys := range bCandidates {
		if len(ys) != 1 {
			continue
		}
		var y int
		for only := range ys {
			y = only
		}
		if len(aCandidates[y]) != 1 {
			continue
		}
		if _, mutual := aCandidates[y][x]; !mutual {
			continue
		}
		batch = append(batch, Coord{X: x, Y: y})
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].Less(batch[j]) })

	// All-or-nothing guard: one crossing candidate drops the batch.
	for _, c := range batch {
		if t.score(c) == 0 && t.crossover(c) {
			return nil
		}
	}
	for _, c := range batch {
		t.increment(c)
	}

	return batch
}
