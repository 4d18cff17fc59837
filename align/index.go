package align

import "cmp"

// wordIndex maps every word of one text to the ordered list of sentence
// indices containing it, one entry per occurrence. Built in a single
// pass and immutable afterwards.
type wordIndex[W cmp.Ordered] struct {
	postings map[W][]int
}

func newWordIndex[W cmp.Ordered](text []Sentence[W]) *wordIndex[W] {
	idx := &wordIndex[W]{postings: make(map[W][]int)}
	for i, s := range text {
		for _, w := range s.Words() {
			idx.postings[w] = append(idx.postings[w], i)
		}
	}

	return idx
}

// sentences returns the sentence indices containing w, in appearance
// order. Unseen words yield nil; callers must not mutate the result.
func (idx *wordIndex[W]) sentences(w W) []int { return idx.postings[w] }

// occurrences returns how many times w occurs in the text, 0 if unseen.
func (idx *wordIndex[W]) occurrences(w W) int { return len(idx.postings[w]) }
