package hirschberg

// Score — optimal global sequence-alignment score
//
// Description:
//
//	Score aligns the whole of a against the whole of b, maximizing
//	the sum of per-pair scores: Match where opts.Compare holds,
//	Mismatch where it does not, and Gap for every unaligned element.
//	Only the optimal total is computed; the alignment itself is never
//	materialized.
//
// Algorithm Outline (two-row DP):
//  1. Let n = len(a), m = len(b). Keep two rows of length m+1.
//  2. Initialize: row[j] = j·Gap for j=0..m (aligning a prefix of b
//     against nothing).
//  3. For i = 1..n:
//     curr[0] = i·Gap
//     For j = 1..m:
//     sub = Match if Compare(a[i-1], b[j-1]) else Mismatch
//     curr[j] = max(prev[j-1] + sub, prev[j] + Gap, curr[j-1] + Gap)
//  4. score = last row's final cell.
//
// The longer sequence is scanned on the outer axis so the rows span the
// shorter one, giving O(min(n,m)) memory — the score-only half of
// Hirschberg's linear-space method.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(min(n, m))
//
// Errors:
//   - ErrNilCompare — if opts.Compare is nil.
//
// Empty sequences are valid input: the score degrades to the gap cost of
// the non-empty side (zero under the default Gap).
func Score[A, B any](a []A, b []B, opts Options[A, B]) (int, error) {
	if opts.Compare == nil {
		return 0, ErrNilCompare
	}
	if len(b) > len(a) {
		flipped := Options[B, A]{
			Match:    opts.Match,
			Mismatch: opts.Mismatch,
			Gap:      opts.Gap,
			Compare:  func(x B, y A) bool { return opts.Compare(y, x) },
		}
		return alignScore(b, a, flipped), nil
	}

	return alignScore(a, b, opts), nil
}

// alignScore fills the DP rows. Callers guarantee len(a) >= len(b) and a
// non-nil Compare.
func alignScore[A, B any](a []A, b []B, opts Options[A, B]) int {
	m := len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = j * opts.Gap
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i * opts.Gap
		for j := 1; j <= m; j++ {
			sub := opts.Mismatch
			if opts.Compare(a[i-1], b[j-1]) {
				sub = opts.Match
			}
			curr[j] = max3(prev[j-1]+sub, prev[j]+opts.Gap, curr[j-1]+opts.Gap)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// max3 returns the maximum of three int values.
func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}

	return a
}
