package align_test

import (
	"fmt"
	"testing"

	"github.com/tverian/bitext/align"
)

// benchmarkAlign aligns two identical n-sentence texts, three unique
// words per sentence, until full coverage.
func benchmarkAlign(b *testing.B, n int) {
	sentences := make([]align.Sentence[string], n)
	for i := 0; i < n; i++ {
		sentences[i] = align.Tokens[string]{
			fmt.Sprintf("a%04d", i),
			fmt.Sprintf("b%04d", i),
			fmt.Sprintf("c%04d", i),
		}
	}
	opts := align.DefaultOptions[string]()
	opts.WordFrequencyThreshold = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(sentences, sentences, &opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks 50-sentence texts.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 50) }

// BenchmarkAlign_Medium benchmarks 200-sentence texts.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 200) }
