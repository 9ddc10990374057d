// Package analyze orchestrates the corpus analysis pipeline: a
// data-parallel enrichment pass over every review followed by a
// single-writer reduce into the output tables.
package analyze

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/reviewlens/reviewlens/internal/config"
	"github.com/reviewlens/reviewlens/internal/corpus"
	"github.com/reviewlens/reviewlens/internal/freq"
	"github.com/reviewlens/reviewlens/internal/ngram"
	"github.com/reviewlens/reviewlens/internal/nlp"
	"github.com/reviewlens/reviewlens/internal/normalize"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/internal/temporal"
)

// StepResult holds the result of a single pipeline step.
type StepResult struct {
	Name    string
	Summary string
}

// Tables are the derived, read-only outputs of one run.
type Tables struct {
	NGrams     *freq.Table           // n-gram text -> count
	POSTags    *freq.Table           // tag label -> count (full distribution)
	Entities   *freq.Table           // entity span text -> count
	Sentiments *freq.Table           // sentiment label -> count
	Monthly    temporal.MonthlyTable // month -> label -> count
}

// Result holds the outcome of a full pipeline run.
type Result struct {
	Reviews       int
	EmptyTexts    int
	ExcludedDates int // reviews absent from the monthly table
	Steps         []StepResult
	Tables        Tables
	Corpus        corpus.Corpus
}

// Pipeline runs the analysis stages over a loaded corpus. The NLP
// provider is injected; the pipeline acquires it at the start of a
// run and releases it at run end.
type Pipeline struct {
	cfg        *config.Config
	provider   nlp.Provider
	classifier *sentiment.Classifier
	log        zerolog.Logger
}

// New creates a pipeline.
func New(cfg *config.Config, provider nlp.Provider, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		provider:   provider,
		classifier: sentiment.NewClassifier(cfg.Sentiment.Positive, cfg.Sentiment.Negative),
		log:        logger,
	}
}

// Run executes the pipeline over reviews. A provider failure aborts
// the run: no partial tables are returned, since downstream
// aggregates would silently under-count.
func (p *Pipeline) Run(ctx context.Context, reviews corpus.Corpus) (*Result, error) {
	if err := p.provider.Acquire(); err != nil {
		return nil, fmt.Errorf("acquiring nlp model: %w", err)
	}
	defer p.provider.Release()

	r := &Result{Reviews: len(reviews), Corpus: reviews}

	p.log.Info().Int("reviews", len(reviews)).Int("workers", p.cfg.GetWorkers()).
		Msg("Step 1/2: enriching reviews")
	if err := p.enrich(ctx, reviews); err != nil {
		return nil, err
	}
	for _, review := range reviews {
		if review.Text() == "" {
			r.EmptyTexts++
		}
	}
	r.Steps = append(r.Steps, StepResult{
		Name:    "Enrich",
		Summary: fmt.Sprintf("Enriched %d reviews (%d with empty text)", r.Reviews, r.EmptyTexts),
	})

	p.log.Info().Msg("Step 2/2: aggregating tables")
	p.reduce(r)
	r.Steps = append(r.Steps, StepResult{
		Name: "Aggregate",
		Summary: fmt.Sprintf(
			"%d distinct %d-grams, %d POS tags, %d entities, %d months (%d reviews without a parseable date)",
			r.Tables.NGrams.Len(), p.cfg.Analysis.NGramSize, r.Tables.POSTags.Len(),
			r.Tables.Entities.Len(), len(r.Tables.Monthly), r.ExcludedDates,
		),
	})

	return r, nil
}

// enrich fills every review's derived fields. Each review depends
// only on its own fields, so the map phase fans out across workers
// with no shared mutable state.
func (p *Pipeline) enrich(ctx context.Context, reviews corpus.Corpus) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.GetWorkers())

	for _, review := range reviews {
		if err := ctx.Err(); err != nil {
			break
		}
		review := review
		g.Go(func() error {
			return p.enrichReview(review)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("enriching corpus: %w", err)
	}
	return nil
}

// enrichReview runs the per-review stages in dependency order:
// normalize -> tokenize -> {n-grams, POS tags}, raw text -> entities,
// normalized text -> sentiment.
func (p *Pipeline) enrichReview(review *corpus.Review) error {
	review.NormalizedText = normalize.Normalize(review.Text())

	tokenInput := review.NormalizedText
	if p.cfg.Analysis.FilterStopwords {
		tokenInput = normalize.StripStopwords(tokenInput)
	}

	tokens, err := p.provider.Tokenize(tokenInput)
	if err != nil {
		return fmt.Errorf("review %d: %w", review.ID, err)
	}
	review.Tokens = tokens
	review.NGrams = ngram.Generate(tokens, p.cfg.Analysis.NGramSize)

	review.POSTags, err = p.provider.Tag(tokens)
	if err != nil {
		return fmt.Errorf("review %d: %w", review.ID, err)
	}

	// Entity extraction runs on raw text: case and punctuation inform
	// entity boundaries.
	review.Entities, err = p.provider.Entities(review.Text())
	if err != nil {
		return fmt.Errorf("review %d: %w", review.ID, err)
	}

	review.Sentiment = p.classifier.Classify(review.NormalizedText)
	return nil
}

// reduce flattens per-review contributions into the output tables.
// It runs on a single goroutine after the map phase completes, so
// increments merge without races and first-appearance order follows
// corpus traversal order.
func (p *Pipeline) reduce(r *Result) {
	ngrams := freq.New()
	posTags := freq.New()
	entities := freq.New()
	sentiments := freq.New()

	for _, review := range r.Corpus {
		ngrams.AddAll(review.NGrams)
		for _, tt := range review.POSTags {
			posTags.Add(tt.Tag)
		}
		// Entity ranking is over the literal span text: identical
		// spellings count together even across entity types.
		for _, ent := range review.Entities {
			entities.Add(ent.Text)
		}
		sentiments.Add(string(review.Sentiment))
	}

	monthly, skipped := temporal.Aggregate(r.Corpus)
	r.ExcludedDates = skipped
	r.Tables = Tables{
		NGrams:     ngrams,
		POSTags:    posTags,
		Entities:   entities,
		Sentiments: sentiments,
		Monthly:    monthly,
	}
}
