// Package align discovers which sentences of two parallel texts
// correspond, using only statistical co-occurrence of their words.
//
// 🚀 How does it work?
//
//	The engine alternates between two inferences until a coverage
//	target is met or a cycle budget runs out:
//	  • sentence pairs with enough accumulated word evidence become
//	    anchors in a sparse alignment table
//	  • word pairs whose occurrence patterns line up inside the
//	    corridor between known anchors become new evidence
//
//	Each cycle:
//	  1. a lens-shaped alignable region is rebuilt around the current
//	     anchors (wide mid-segment, narrowing to 1 at each anchor)
//	  2. every word pair co-occurring inside the region is scored with
//	     a global sequence alignment of its two occurrence lists,
//	     restricted to the region (see the hirschberg package)
//	  3. surviving pairs are ranked and applied highest first; each
//	     pair may promote its mutually-unique sentence pairs, and a
//	     batch is dropped whole if it would cross an existing anchor
//	  4. similarity and frequency thresholds taper toward their
//	     configured floors, admitting weaker evidence in later cycles
//
// ✨ Key properties:
//   - anchors never cross: x and y stay mutually monotone
//   - the per-cycle coverage trace is non-decreasing
//   - processing order is a strict total order — results are
//     deterministic for a given input and configuration
//   - generic over the token type (any cmp.Ordered)
//
// ⚙️ Usage:
//
//	import "github.com/tverian/bitext/align"
//
//	a := []align.Sentence[string]{
//	  align.Tokens[string]{"the", "cat", "sat"},
//	  align.Tokens[string]{"it", "purred"},
//	}
//	b := []align.Sentence[string]{
//	  align.Tokens[string]{"le", "chat", "assis"},
//	  align.Tokens[string]{"il", "ronronnait"},
//	}
//
//	opts := align.DefaultOptions[string]()
//	out, err := align.Align(a, b, &opts)
//	if err != nil {
//	  // handle ErrEmptyText / ErrBadOptions
//	}
//	_ = out.AAlignments(0) // B-sentence indices aligned to A-sentence 0
//	_ = out.Coverage()     // per-cycle coverage trace
//
// Note that word identity never enters the scoring: two words associate
// because they occur in alignable sentences, not because they are equal.
// A bilingual seed dictionary can be injected through
// Options.Association, which forces maximal-confidence pairs.
//
// Performance: for near-diagonal alignments the region stays roughly
// linear in sentence count, so each cycle is far below the naive
// O(|A|·|B|) sweep.
//
// See align_test.go and example_test.go for end-to-end scenarios.
package align
