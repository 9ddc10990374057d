// Package nlp defines the pretrained-model capabilities the pipeline
// consumes and provides the prose-backed implementation. The pipeline
// never implements tokenization, tagging, or entity extraction
// itself; it depends only on the Provider contract.
package nlp

import "errors"

// ErrNotAcquired is returned when a capability is used before Acquire.
var ErrNotAcquired = errors.New("nlp: model not acquired")

// TaggedToken is a token paired with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Entity is a named-entity span with its type label.
type Entity struct {
	Text  string
	Label string
}

// Provider is the injected NLP model. Acquire loads the model once
// per run and Release frees it at run end; the three capability
// methods are safe for concurrent use between those calls. Any
// capability error is fatal to a pipeline run: partial tables would
// silently under-count.
type Provider interface {
	Acquire() error
	Release()

	// Tokenize splits text into word tokens using the model's
	// natural-language boundary rules. Empty text yields no tokens.
	Tokenize(text string) ([]string, error)

	// Tag assigns one part-of-speech tag per input token, order
	// preserved.
	Tag(tokens []string) ([]TaggedToken, error)

	// Entities extracts named-entity spans from raw (unnormalized)
	// text. Case and punctuation inform entity boundaries, so callers
	// pass the original text here.
	Entities(text string) ([]Entity, error)
}
