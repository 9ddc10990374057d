// Package sentiment assigns a rule-based sentiment label to
// normalized review text.
package sentiment

import "strings"

// Label is a sentiment classification.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

// Labels returns every label in display order.
func Labels() []Label {
	return []Label{Positive, Negative, Neutral}
}

// Classifier labels text by keyword containment. The keyword sets are
// configuration, not constants, so deployments can extend them.
type Classifier struct {
	positive []string
	negative []string
}

// NewClassifier creates a classifier with the given keyword sets.
// Keywords are matched against normalized text, so callers should
// supply them in lowercase.
func NewClassifier(positive, negative []string) *Classifier {
	return &Classifier{positive: positive, negative: negative}
}

// Classify labels normalized text. The positive check runs strictly
// before the negative one: text containing both "good" and "bad" is
// Positive. That ordering is policy, and the monthly aggregation
// depends on it staying deterministic.
//
// Matching is substring containment over the normalized text, so a
// keyword can match inside a longer word.
func (c *Classifier) Classify(normalized string) Label {
	for _, kw := range c.positive {
		if strings.Contains(normalized, kw) {
			return Positive
		}
	}
	for _, kw := range c.negative {
		if strings.Contains(normalized, kw) {
			return Negative
		}
	}
	return Neutral
}
