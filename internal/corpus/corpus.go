// Package corpus holds the review corpus model and its CSV loader.
package corpus

import (
	"time"

	"github.com/reviewlens/reviewlens/internal/nlp"
	"github.com/reviewlens/reviewlens/internal/sentiment"
)

// Review is one corpus record. It is constructed from a source row
// and progressively enriched by the pipeline; once a run completes it
// is treated as immutable.
type Review struct {
	// ID is the review's position in the source file. Insertion order
	// is significant: it breaks ties in frequency ranking.
	ID int

	// RawText is the original review body, nil when the source cell
	// was empty.
	RawText *string

	// PublishedRaw is the unparsed date cell; Published is nil when
	// it could not be parsed. Such reviews are excluded from monthly
	// aggregation but stay in every other table.
	PublishedRaw string
	Published    *time.Time

	// Enrichment fields, filled by the pipeline.
	NormalizedText string
	Tokens         []string
	NGrams         []string
	POSTags        []nlp.TaggedToken
	Entities       []nlp.Entity
	Sentiment      sentiment.Label
}

// Text returns the raw text, or the empty string when absent.
func (r *Review) Text() string {
	if r.RawText == nil {
		return ""
	}
	return *r.RawText
}

// Corpus is the ordered collection of reviews for one pipeline run.
type Corpus []*Review
