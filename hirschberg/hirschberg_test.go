package hirschberg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tverian/bitext/hirschberg"
)

// TestScore_NilCompare verifies that Score returns ErrNilCompare when
// the compatibility predicate was left unset.
func TestScore_NilCompare(t *testing.T) {
	opts := hirschberg.DefaultOptions[int, int]()

	_, err := hirschberg.Score([]int{1}, []int{1}, opts)
	assert.ErrorIs(t, err, hirschberg.ErrNilCompare, "unset Compare must error ErrNilCompare")
}

// TestScore_EmptyInputs verifies that empty sequences are valid and
// score as pure gap runs.
func TestScore_EmptyInputs(t *testing.T) {
	opts := hirschberg.DefaultOptions[int, int]()
	opts.Compare = func(a, b int) bool { return a == b }

	score, err := hirschberg.Score(nil, []int{1, 2, 3}, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, score, "empty vs non-empty under Gap=0 scores zero")

	opts.Gap = -2
	score, err = hirschberg.Score([]int{1, 2, 3}, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, -6, score, "three unmatched elements at Gap=-2")

	score, err = hirschberg.Score[int, int](nil, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 0, score, "two empty sequences align for free")
}

// TestScore_LCSEquivalence verifies that under the default 1/0/0
// scoring the result equals the classic LCS length.
func TestScore_LCSEquivalence(t *testing.T) {
	opts := hirschberg.DefaultOptions[rune, rune]()
	opts.Compare = func(a, b rune) bool { return a == b }

	// LCS("ABCBDAB", "BDCABA") = 4 ("BCBA" / "BDAB").
	score, err := hirschberg.Score([]rune("ABCBDAB"), []rune("BDCABA"), opts)
	require.NoError(t, err)
	assert.Equal(t, 4, score)

	// Identical sequences: LCS is the whole sequence.
	score, err = hirschberg.Score([]rune("GATTACA"), []rune("GATTACA"), opts)
	require.NoError(t, err)
	assert.Equal(t, 7, score)

	// Disjoint alphabets: nothing matches.
	score, err = hirschberg.Score([]rune("AAAA"), []rune("BBBB"), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

// TestScore_NeedlemanWunsch verifies a classic match/mismatch/gap
// configuration against a hand-computed optimum.
func TestScore_NeedlemanWunsch(t *testing.T) {
	opts := hirschberg.Options[byte, byte]{
		Match:    2,
		Mismatch: -1,
		Gap:      -2,
		Compare:  func(a, b byte) bool { return a == b },
	}

	// GAT vs GTT: G-G (2), A-T (-1), T-T (2) = 3; any gapped
	// alternative scores lower.
	score, err := hirschberg.Score([]byte("GAT"), []byte("GTT"), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, score)
}

// TestScore_PredicateNotEquality verifies that Compare is a free
// compatibility predicate, not equality: here elements match when
// their parities agree.
func TestScore_PredicateNotEquality(t *testing.T) {
	opts := hirschberg.DefaultOptions[int, int]()
	opts.Compare = func(a, b int) bool { return a%2 == b%2 }

	score, err := hirschberg.Score([]int{1, 2, 3}, []int{7, 4, 9}, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, score, "parity-compatible elements all pair up")
}

// TestScore_ArgumentOrder verifies the internal sequence swap (rows
// span the shorter input) never changes the result.
func TestScore_ArgumentOrder(t *testing.T) {
	opts := hirschberg.DefaultOptions[rune, rune]()
	opts.Compare = func(a, b rune) bool { return a == b }

	long := []rune("ABCBDABAB")
	short := []rune("BDCA")

	fwd, err := hirschberg.Score(long, short, opts)
	require.NoError(t, err)
	rev, err := hirschberg.Score(short, long, opts)
	require.NoError(t, err)
	assert.Equal(t, fwd, rev, "global alignment score is symmetric under equality compare")
}
