// Package report composes the markdown analysis report from a
// pipeline result. It is pure presentation: it only reads the output
// tables, never the pipeline's internals.
package report

import (
	"fmt"
	"strings"

	"github.com/reviewlens/reviewlens/internal/analyze"
	"github.com/reviewlens/reviewlens/internal/sentiment"
)

// Compose renders the full markdown report. topK bounds the ranked
// n-gram and entity views; the POS distribution is always complete
// since the tag vocabulary is small and closed.
func Compose(result *analyze.Result, topK int) string {
	var b strings.Builder

	b.WriteString("# Review Corpus Analysis\n\n")
	writeSummary(&b, result)
	writeNGrams(&b, result, topK)
	writePOSTags(&b, result)
	writeEntities(&b, result, topK)
	writeSentiments(&b, result)
	writeMonthly(&b, result)
	writeSampleEntities(&b, result)

	return b.String()
}

func writeSummary(b *strings.Builder, result *analyze.Result) {
	b.WriteString("## Run Summary\n\n")
	fmt.Fprintf(b, "- Reviews analyzed: %d\n", result.Reviews)
	fmt.Fprintf(b, "- Reviews with empty text: %d\n", result.EmptyTexts)
	fmt.Fprintf(b, "- Reviews without a parseable date (excluded from the monthly series): %d\n", result.ExcludedDates)
	for _, step := range result.Steps {
		fmt.Fprintf(b, "- %s: %s\n", step.Name, step.Summary)
	}
	b.WriteString("\n")
}

func writeNGrams(b *strings.Builder, result *analyze.Result, topK int) {
	fmt.Fprintf(b, "## Top %d Word Patterns\n\n", topK)
	entries := result.Tables.NGrams.TopK(topK)
	if len(entries) == 0 {
		b.WriteString("No word patterns found.\n\n")
		return
	}
	b.WriteString("| Pattern | Count |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %d |\n", e.Item, e.Count)
	}
	b.WriteString("\n")
}

func writePOSTags(b *strings.Builder, result *analyze.Result) {
	b.WriteString("## POS Tag Distribution\n\n")
	total := result.Tables.POSTags.Total()
	if total == 0 {
		b.WriteString("No tagged tokens.\n\n")
		return
	}
	b.WriteString("| Tag | Count | Share |\n|---|---|---|\n")
	for _, e := range result.Tables.POSTags.TopK(0) {
		fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", e.Item, e.Count, 100*float64(e.Count)/float64(total))
	}
	b.WriteString("\n")
}

func writeEntities(b *strings.Builder, result *analyze.Result, topK int) {
	fmt.Fprintf(b, "## Top %d Named Entities\n\n", topK)
	entries := result.Tables.Entities.TopK(topK)
	if len(entries) == 0 {
		b.WriteString("No named entities found.\n\n")
		return
	}
	b.WriteString("| Entity | Mentions |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %d |\n", e.Item, e.Count)
	}
	b.WriteString("\n")
}

func writeSentiments(b *strings.Builder, result *analyze.Result) {
	b.WriteString("## Sentiment Totals\n\n")
	b.WriteString("| Sentiment | Reviews |\n|---|---|\n")
	for _, label := range sentiment.Labels() {
		fmt.Fprintf(b, "| %s | %d |\n", label, result.Tables.Sentiments.Count(string(label)))
	}
	b.WriteString("\n")
}

func writeMonthly(b *strings.Builder, result *analyze.Result) {
	b.WriteString("## Monthly Sentiment\n\n")
	months := result.Tables.Monthly.Months()
	if len(months) == 0 {
		b.WriteString("No reviews carried a parseable publication date.\n\n")
		return
	}
	b.WriteString("| Month | Positive | Negative | Neutral |\n|---|---|---|---|\n")
	for _, month := range months {
		row := result.Tables.Monthly[month]
		fmt.Fprintf(b, "| %s | %d | %d | %d |\n",
			month.Format("Jan 2006"),
			row[sentiment.Positive], row[sentiment.Negative], row[sentiment.Neutral])
	}
	b.WriteString("\n")
}

// writeSampleEntities shows the entities of the first review that has
// any, with their types inline.
func writeSampleEntities(b *strings.Builder, result *analyze.Result) {
	for _, review := range result.Corpus {
		if len(review.Entities) == 0 {
			continue
		}
		b.WriteString("## Sample Entity Mentions\n\n")
		fmt.Fprintf(b, "Review %d:\n\n", review.ID)
		for _, ent := range review.Entities {
			fmt.Fprintf(b, "- %s (%s)\n", ent.Text, ent.Label)
		}
		b.WriteString("\n")
		return
	}
}
