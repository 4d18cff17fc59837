// Package hirschberg computes optimal global sequence-alignment scores
// between two generic sequences in linear space.
//
// 🚀 What is global sequence alignment?
//
//	Needleman–Wunsch-family alignment matches up two whole sequences,
//	charging configurable scores for matches, mismatches, and gaps, and
//	maximizing the total.  It is widely used in:
//	  • Bioinformatics (DNA / protein alignment)
//	  • Diff engines & merge tools
//	  • Ordered-evidence matching (e.g. co-occurrence scoring)
//
// ✨ Key features:
//   - score-only API: returns the optimal score, never the path
//   - linear-space DP: two rows over the shorter sequence, the
//     score-only half of Hirschberg's method
//   - generic element types for both sequences
//   - pluggable compatibility predicate — "match" need not mean "equal"
//
// ⚙️ Usage:
//
//	import "github.com/tverian/bitext/hirschberg"
//
//	opts := hirschberg.DefaultOptions[int, int]() // Match=1, Mismatch=0, Gap=0
//	opts.Compare = func(a, b int) bool { return a == b }
//
//	score, err := hirschberg.Score(seqA, seqB, opts)
//
// Under the default scoring (1/0/0) the result equals the length of the
// longest compatible common subsequence of the two inputs.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(min(N, M))
//
// See hirschberg_test.go and example_test.go for worked examples.
package hirschberg
