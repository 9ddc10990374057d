// Package ngram extracts contiguous token windows for frequency
// analysis.
package ngram

import "strings"

// Generate returns every contiguous window of n tokens as a single
// space-joined string. For len(tokens) >= n the result holds exactly
// len(tokens)-n+1 items; shorter inputs (or n < 1) yield nil.
func Generate(tokens []string, n int) []string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}
