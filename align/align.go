package align

import (
	"cmp"
	"math"
	"sort"
)

// aligner carries one in-progress run: the two texts, their immutable
// word indexes, and the configuration. All state is exclusively owned
// by the run; nothing is shared across runs.
type aligner[W cmp.Ordered] struct {
	opts   Options[W]
	a, b   []Sentence[W]
	aIndex *wordIndex[W]
	bIndex *wordIndex[W]
}

// Align — unsupervised bitext sentence alignment
//
// Description:
//
//	Align discovers which sentences of text a correspond to which
//	sentences of text b, using only statistical co-occurrence of
//	words. It iterates cycles of region rebuilding, word-pair scoring,
//	and ranked promotion until the coverage target or the cycle cap is
//	reached, then snapshots the anchors into an immutable Output.
//
// Algorithm Outline:
//  1. Index both texts: word → ordered sentence indices.
//  2. While coverage < MinCoverage and cycle < MaxCycles:
//     a. rebuild the alignable region from the current anchors
//     b. taper thresholds: max(floor, base − cycle·taper)
//     c. score and rank every unseen word pair inside the region
//     d. apply the ranking in order; each promoted sentence pair adds
//     its A and B indices to the running aligned sets
//     e. coverage = (|alignedA| + |alignedB|) / (|A| + |B|)
//  3. Build the Output from the final anchors and the coverage trace.
//
// A cycle that promotes nothing still counts toward the cap: the next
// cycle re-scores everything at slightly lower thresholds, which is
// what lets tapering surface new candidates.
//
// Complexity:
//
//	Each cycle is O(|region| · pairs-per-cell) for scoring plus the
//	ranking sort; for near-diagonal alignments the region stays roughly
//	linear in sentence count.
//
// Errors:
//   - ErrEmptyText  — either text has no sentences.
//   - ErrBadOptions — AnchorThreshold < 1 or MaxCycles < 0.
//
// A nil opts uses DefaultOptions.
func Align[W cmp.Ordered](a, b []Sentence[W], opts *Options[W]) (*Output, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyText
	}
	o := DefaultOptions[W]()
	if opts != nil {
		o = *opts
	}
	if o.AnchorThreshold < 1 || o.MaxCycles < 0 {
		return nil, ErrBadOptions
	}

	p := &aligner[W]{
		opts:   o,
		a:      a,
		b:      b,
		aIndex: newWordIndex(a),
		bIndex: newWordIndex(b),
	}

	table := newAlignTable(len(a), len(b), Score(o.AnchorThreshold))
	alignedA := make(map[int]struct{})
	alignedB := make(map[int]struct{})
	coverage := 0.0
	trace := make([]float64, 0, o.MaxCycles)

	for cycle := 0; coverage < o.MinCoverage && cycle < o.MaxCycles; cycle++ {
		r := buildRegion(table)

		similarityThreshold := math.Max(
			o.WordSimilarityMinimum,
			o.WordSimilarityThreshold-float64(cycle)*o.WordSimilarityTaper,
		)
		frequencyThreshold := o.WordFrequencyThreshold - cycle*o.WordFrequencyTaper
		if frequencyThreshold < o.WordFrequencyMinimum {
			frequencyThreshold = o.WordFrequencyMinimum
		}

		for _, assoc := range p.rank(r, similarityThreshold, frequencyThreshold) {
			for _, c := range p.alignSentences(r, table, assoc) {
				alignedA[c.Y] = struct{}{}
				alignedB[c.X] = struct{}{}
			}
		}

		coverage = float64(len(alignedA)+len(alignedB)) / float64(len(a)+len(b))
		trace = append(trace, coverage)
	}

	return newOutput(table, trace), nil
}

// rank scores every word pair co-occurring inside the region, each pair
// at most once per cycle, keeps those meeting both thresholds, and
// returns them in processing order (see rankLess).
func (p *aligner[W]) rank(r *region, similarityThreshold float64, frequencyThreshold int) []wordAssociation[W] {
	type pair struct{ a, b W }
	visited := make(map[pair]struct{})

	var ranked []wordAssociation[W]
	for _, c := range r.all() {
		for _, aw := range p.a[c.Y].Words() {
			for _, bw := range p.b[c.X].Words() {
				if _, seen := visited[pair{aw, bw}]; seen {
					continue
				}
				visited[pair{aw, bw}] = struct{}{}

				assoc := p.associate(r, aw, bw)
				if assoc.similarity >= similarityThreshold &&
					assoc.aOccurrences >= frequencyThreshold &&
					assoc.bOccurrences >= frequencyThreshold {
					ranked = append(ranked, assoc)
				}
			}
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return rankLess(ranked[i], ranked[j]) })

	return ranked
}
