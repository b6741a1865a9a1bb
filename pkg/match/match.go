// Package match provides the string comparison primitives shared by the
// product search engine and the import column mapper.
package match

import (
	"strings"
	"unicode"
)

// Normalize lowercases a string and strips every non-alphanumeric rune, so
// "Batch No." and "batchno" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Levenshtein returns the classic edit distance (insert, delete, substitute,
// each costing 1) between a and b.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(br); i++ {
		curr[0] = i
		for j := 1; j <= len(ar); j++ {
			if br[i-1] == ar[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j-1]+1, min(curr[j-1]+1, prev[j]+1))
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(ar)]
}

// SubsequenceRatio scans target left to right for each query rune in order
// and returns the fraction of query runes found. It is a cheap measure of
// how much of the query appears, in order but not necessarily contiguously,
// inside the target. An empty query yields 0.
func SubsequenceRatio(query, target string) float64 {
	qr := []rune(query)
	if len(qr) == 0 {
		return 0
	}
	tr := []rune(target)

	found := 0
	lastIdx := -1
	for _, q := range qr {
		for i := lastIdx + 1; i < len(tr); i++ {
			if tr[i] == q {
				found++
				lastIdx = i
				break
			}
		}
	}
	return float64(found) / float64(len(qr))
}
