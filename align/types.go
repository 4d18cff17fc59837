// Package align defines core types for the align subpackage of
// github.com/tverian/bitext.
package align

import "cmp"

// Coord addresses one sentence pair: X indexes a sentence of text B,
// Y a sentence of text A. Coordinates are totally ordered
// lexicographically by (X, Y) for deterministic scans.
type Coord struct {
	X, Y int
}

// Less reports whether c precedes o in lexicographic (X, Y) order.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}

	return c.Y < o.Y
}

// Score counts corroborating evidence for a coordinate. Scores start
// at zero and only ever increase within a run.
type Score int

// Sentence is the capability the engine requires of caller sentences:
// an ordered, finite sequence of tokens. Tokens must be cmp.Ordered —
// equality for indexing, ordering for deterministic tie-breaks.
type Sentence[W cmp.Ordered] interface {
	Words() []W
}

// Tokens adapts a plain token slice to the Sentence capability.
//
// Example:
//
//	s := align.Tokens[string]{"the", "cat", "sat"}
type Tokens[W cmp.Ordered] []W

// Words returns the token slice itself.
func (t Tokens[W]) Words() []W { return t }
