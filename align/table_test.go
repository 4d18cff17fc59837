package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchorAt drives a coordinate to anchor status by incrementing it up
// to the table's threshold.
func anchorAt(t *alignTable, c Coord) {
	for t.score(c) < t.anchorThreshold {
		t.increment(c)
	}
}

// TestAlignTable_ScoreAndIncrement verifies the implicit-zero default
// and monotone accumulation.
func TestAlignTable_ScoreAndIncrement(t *testing.T) {
	tbl := newAlignTable(4, 4, 3)

	c := Coord{X: 1, Y: 2}
	assert.Equal(t, Score(0), tbl.score(c), "unscored coordinates read as zero")

	tbl.increment(c)
	tbl.increment(c)
	assert.Equal(t, Score(2), tbl.score(c))
	assert.Empty(t, tbl.anchorList(), "below threshold, not yet an anchor")

	tbl.increment(c)
	assert.Equal(t, []Coord{c}, tbl.anchorList(), "reaching the threshold promotes to anchor")
}

// TestAlignTable_NextAnchorStaircase verifies the both-axes-strict
// anchor walk: anchors not strictly greater on both axes are skipped,
// and the table end is the sentinel when none remains.
func TestAlignTable_NextAnchorStaircase(t *testing.T) {
	tbl := newAlignTable(6, 6, 1)
	anchorAt(tbl, Coord{X: 1, Y: 1})
	anchorAt(tbl, Coord{X: 2, Y: 0}) // never reachable: Y not greater than 1's
	anchorAt(tbl, Coord{X: 3, Y: 3})

	origin := tbl.nextAnchor(nil)
	require.Equal(t, Coord{}, origin, "nil start yields the synthetic origin")

	first := tbl.nextAnchor(&origin)
	assert.Equal(t, Coord{X: 1, Y: 1}, first)

	second := tbl.nextAnchor(&first)
	assert.Equal(t, Coord{X: 3, Y: 3}, second, "(2,0) is skipped: Y not strictly greater")

	last := tbl.nextAnchor(&second)
	assert.Equal(t, Coord{X: 5, Y: 5}, last, "exhausted walk returns the table end")

	again := tbl.nextAnchor(&last)
	assert.Equal(t, last, again, "the end sentinel is a fixed point")
}

// TestAlignTable_Crossover verifies both crossing directions and that
// equal-axis coordinates never cross.
func TestAlignTable_Crossover(t *testing.T) {
	tbl := newAlignTable(8, 8, 1)
	anchorAt(tbl, Coord{X: 3, Y: 3})

	assert.True(t, tbl.crossover(Coord{X: 1, Y: 5}), "anchor strictly right and below crosses")
	assert.True(t, tbl.crossover(Coord{X: 5, Y: 1}), "anchor strictly left and above crosses")

	assert.False(t, tbl.crossover(Coord{X: 5, Y: 5}), "consistent continuation does not cross")
	assert.False(t, tbl.crossover(Coord{X: 1, Y: 1}), "consistent predecessor does not cross")
	assert.False(t, tbl.crossover(Coord{X: 3, Y: 6}), "equal X never crosses")
	assert.False(t, tbl.crossover(Coord{X: 6, Y: 3}), "equal Y never crosses")
}

// TestAlignTable_CrossoverIgnoresSubThreshold verifies that scored but
// sub-threshold coordinates do not participate in crossover checks.
func TestAlignTable_CrossoverIgnoresSubThreshold(t *testing.T) {
	tbl := newAlignTable(8, 8, 3)
	tbl.increment(Coord{X: 3, Y: 3}) // evidence, not an anchor

	assert.False(t, tbl.crossover(Coord{X: 1, Y: 5}), "only anchors constrain new coordinates")
}
