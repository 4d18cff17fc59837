package align

import "cmp"

// Options configures an alignment run.
//
// Fields:
//   - AnchorThreshold — Score required for a sentence pair to count as an
//     anchor and shape the next cycle's alignable region.
//   - MaxCycles — hard cap on the number of cycles; the sole runtime bound.
//   - WordFrequencyThreshold — occurrence count a word needs (in its own
//     text) for its pairs to enter the ranking.
//   - WordFrequencyTaper — per-cycle decrease of the frequency threshold.
//   - WordFrequencyMinimum — floor below which the frequency threshold
//     never tapers.
//   - WordSimilarityThreshold — similarity a word pair needs to enter
//     the ranking.
//   - WordSimilarityTaper — per-cycle decrease of the similarity threshold.
//   - WordSimilarityMinimum — floor below which the similarity threshold
//     never tapers.
//   - MinCoverage — coverage at which the run is considered finished; the
//     loop stops at whichever of MinCoverage or MaxCycles comes first.
//   - Association — optional predicate forcing maximal-confidence word
//     pairs (similarity 1.0, maximal occurrence counts), e.g. a seed
//     bilingual dictionary. nil rejects every pair.
//
// Example:
//
//	opts := align.DefaultOptions[string]()
//	opts.AnchorThreshold = 2
//	opts.Association = func(a, b string) bool { return dict[a] == b }
//
//	out, err := align.Align(textA, textB, &opts)
type Options[W cmp.Ordered] struct {
	AnchorThreshold         int
	MaxCycles               int
	WordFrequencyThreshold  int
	WordFrequencyTaper      int
	WordFrequencyMinimum    int
	WordSimilarityThreshold float64
	WordSimilarityTaper     float64
	WordSimilarityMinimum   float64
	MinCoverage             float64
	Association             func(a, b W) bool
}

// DefaultOptions returns Options with the standard settings:
// AnchorThreshold=3, MaxCycles=20, frequency 5/0/0 (threshold/taper/minimum),
// similarity 0.8/0.05/0.3, MinCoverage=0.95, no forced associations.
func DefaultOptions[W cmp.Ordered]() Options[W] {
	return Options[W]{
		AnchorThreshold:         3,
		MaxCycles:               20,
		WordFrequencyThreshold:  5,
		WordFrequencyTaper:      0,
		WordFrequencyMinimum:    0,
		WordSimilarityThreshold: 0.8,
		WordSimilarityTaper:     0.05,
		WordSimilarityMinimum:   0.3,
		MinCoverage:             0.95,
	}
}
