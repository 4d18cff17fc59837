// Package bitext aligns the sentences of two parallel texts — a bitext —
// without dictionaries, using only statistical co-occurrence of words.
//
// 🚀 What is bitext?
//
//	An unsupervised, iterative sentence-alignment engine:
//	  • it alternates between inferring sentence anchors and word
//	    associations, each round sharpening the other
//	  • anchors accumulate in a sparse table under a strict
//	    non-crossing (monotonicity) invariant
//	  • a lens-shaped corridor around known anchors bounds the search,
//	    keeping each cycle roughly linear for near-diagonal alignments
//	  • word similarity is scored with a generic global
//	    sequence-alignment primitive in linear space
//
// ✨ Why choose bitext?
//
//   - No training data, no dictionaries — only the two texts
//   - Deterministic: ranked processing with total tie-breaking
//   - Pure Go — no cgo, no hidden deps
//   - Generic over the token type (any cmp.Ordered works)
//
// Everything is organized under two subpackages:
//
//	align/      — the alignment engine: anchor table, alignable region,
//	              word-association scoring, cycle orchestration, output
//	hirschberg/ — generic global sequence alignment (score only,
//	              linear-space DP, pluggable compatibility predicate)
//
// Dive into align/doc.go for the algorithm walkthrough and the
// example_test.go files for runnable examples.
//
//	go get github.com/tverian/bitext/align
package bitext
