package nlp

import "testing"

func acquireTestProvider(t *testing.T) *ProseProvider {
	t.Helper()
	p := NewProseProvider()
	if err := p.Acquire(); err != nil {
		t.Fatalf("acquiring prose model: %v", err)
	}
	t.Cleanup(p.Release)
	return p
}

func TestTokenize(t *testing.T) {
	p := acquireTestProvider(t)

	tokens, err := p.Tokenize("the flight was good")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"the", "flight", "was", "good"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok, want[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	p := acquireTestProvider(t)

	tokens, err := p.Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for empty text, got %v", tokens)
	}
}

func TestTagAlignment(t *testing.T) {
	p := acquireTestProvider(t)

	tokens := []string{"the", "crew", "served", "excellent", "food", "in", "doha"}
	tagged, err := p.Tag(tokens)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(tagged) != len(tokens) {
		t.Fatalf("got %d tags for %d tokens", len(tagged), len(tokens))
	}
	for i, tt := range tagged {
		if tt.Text != tokens[i] {
			t.Errorf("tag %d covers %q, want %q", i, tt.Text, tokens[i])
		}
		if tt.Tag == "" {
			t.Errorf("token %q received an empty tag", tt.Text)
		}
	}
}

func TestTagEmpty(t *testing.T) {
	p := acquireTestProvider(t)

	tagged, err := p.Tag(nil)
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if len(tagged) != 0 {
		t.Errorf("expected no tags for no tokens, got %v", tagged)
	}
}

func TestEntitiesEmpty(t *testing.T) {
	p := acquireTestProvider(t)

	ents, err := p.Entities("")
	if err != nil {
		t.Fatalf("Entities: %v", err)
	}
	if len(ents) != 0 {
		t.Errorf("expected no entities for empty text, got %v", ents)
	}
}

func TestCapabilitiesRequireAcquire(t *testing.T) {
	p := NewProseProvider()

	if _, err := p.Tokenize("text"); err != ErrNotAcquired {
		t.Errorf("Tokenize before Acquire: err = %v, want ErrNotAcquired", err)
	}
	if _, err := p.Tag([]string{"text"}); err != ErrNotAcquired {
		t.Errorf("Tag before Acquire: err = %v, want ErrNotAcquired", err)
	}
	if _, err := p.Entities("text"); err != ErrNotAcquired {
		t.Errorf("Entities before Acquire: err = %v, want ErrNotAcquired", err)
	}
}
