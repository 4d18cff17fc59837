// Package hirschberg defines options and sentinel errors for the
// hirschberg subpackage of github.com/tverian/bitext.
package hirschberg

import "errors"

// Sentinel errors for hirschberg operations.
var (
	// ErrNilCompare indicates Options.Compare was left unset.
	ErrNilCompare = errors.New("hirschberg: Options.Compare must not be nil")
)

// Options configures global sequence alignment between a []A and a []B.
//
// Fields:
//   - Match    — score awarded when Compare reports two elements compatible.
//   - Mismatch — score charged when two elements are aligned but incompatible.
//   - Gap      — score charged per unaligned element (insertion/deletion).
//   - Compare  — element compatibility predicate. Not necessarily equality:
//     any pure function of one element from each sequence is valid.
//
// Example:
//
//	opts := hirschberg.DefaultOptions[rune, rune]()
//	opts.Compare = func(a, b rune) bool { return a == b }
//
//	score, err := hirschberg.Score([]rune("kitten"), []rune("sitting"), opts)
//	if err != nil {
//	  // handle ErrNilCompare
//	}
type Options[A, B any] struct {
	Match    int
	Mismatch int
	Gap      int
	Compare  func(A, B) bool
}

// DefaultOptions returns Options with Match=1, Mismatch=0, Gap=0 and a nil
// Compare. Callers must set Compare before calling Score. Under this scoring
// the optimal alignment score equals the length of the longest compatible
// common subsequence.
func DefaultOptions[A, B any]() Options[A, B] {
	return Options[A, B]{
		Match:    1,
		Mismatch: 0,
		Gap:      0,
	}
}
