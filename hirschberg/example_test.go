package hirschberg_test

import (
	"fmt"

	"github.com/tverian/bitext/hirschberg"
)

// ExampleScore demonstrates score-only global alignment under the
// default 1/0/0 scoring, where the result equals the length of the
// longest common subsequence.
func ExampleScore() {
	opts := hirschberg.DefaultOptions[rune, rune]()
	opts.Compare = func(a, b rune) bool { return a == b }

	score, err := hirschberg.Score([]rune("kitten"), []rune("sitting"), opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("score:", score)
	// Output:
	// score: 4
}
