package nlp

import (
	"fmt"
	"strings"

	prose "github.com/tsawler/prose/v3"
)

// ProseProvider backs the Provider contract with the prose pretrained
// English model. The perceptron tagger and entity chunker only read
// model state during inference, so one acquired provider serves all
// enrichment workers.
type ProseProvider struct {
	model     *prose.Model
	tokenizer prose.Tokenizer
}

// NewProseProvider creates an unacquired provider.
func NewProseProvider() *ProseProvider {
	return &ProseProvider{}
}

// Acquire loads the pretrained tagger and entity model. prose loads
// its embedded model data with panics on failure, so this converts
// any load panic into an error.
func (p *ProseProvider) Acquire() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loading prose model: %v", r)
		}
	}()
	p.model = prose.ModelFromData("reviewlens")
	p.tokenizer = prose.NewIterTokenizer()
	return nil
}

// Release drops the loaded model.
func (p *ProseProvider) Release() {
	p.model = nil
	p.tokenizer = nil
}

// Tokenize splits text into word tokens.
func (p *ProseProvider) Tokenize(text string) ([]string, error) {
	if p.tokenizer == nil {
		return nil, ErrNotAcquired
	}
	if text == "" {
		return nil, nil
	}
	toks := p.tokenizer.TokenizeWithOffsets(text)
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out, nil
}

// Tag assigns one part-of-speech tag per token. The tokens are
// space-joined and re-tokenized for the tagger; tag input comes from
// normalized text (lowercase letters and whitespace only), where the
// tokenizer splits exactly on whitespace, so the output stays aligned
// one tag per input token.
func (p *ProseProvider) Tag(tokens []string) ([]TaggedToken, error) {
	if p.model == nil {
		return nil, ErrNotAcquired
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	doc, err := prose.NewDocument(
		strings.Join(tokens, " "),
		prose.UsingModel(p.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagging tokens: %w", err)
	}

	tagged := doc.Tokens()
	if len(tagged) != len(tokens) {
		return nil, fmt.Errorf("tagger returned %d tags for %d tokens", len(tagged), len(tokens))
	}

	out := make([]TaggedToken, 0, len(tagged))
	for _, tok := range tagged {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// Entities extracts named-entity spans from raw text.
func (p *ProseProvider) Entities(text string) ([]Entity, error) {
	if p.model == nil {
		return nil, ErrNotAcquired
	}
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.UsingModel(p.model))
	if err != nil {
		return nil, fmt.Errorf("extracting entities: %w", err)
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, ent := range ents {
		out = append(out, Entity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}
