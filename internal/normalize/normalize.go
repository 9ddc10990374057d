// Package normalize cleans raw review text into the lowercase,
// alphabetic-only form the rest of the pipeline consumes.
package normalize

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

// Normalize lowercases raw and removes every rune that is not a
// lowercase ASCII letter or whitespace. Digits, punctuation, and
// symbols are stripped rather than replaced, so removal can merge
// adjacent words when no whitespace separates them ("5-star" becomes
// "star", "good,bad" becomes "goodbad"). Downstream counts depend on
// that exact behavior.
//
// Normalize is idempotent: applying it twice yields the same string.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		if unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lower)
}

// StripStopwords removes English stopwords from already-normalized
// text. Optional: the baseline pipeline keeps function words so that
// bigram counts include phrases like "the flight".
func StripStopwords(normalized string) string {
	return strings.TrimSpace(stopwords.CleanString(normalized, "en", false))
}
