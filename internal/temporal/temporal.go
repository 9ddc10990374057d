// Package temporal buckets classified reviews by calendar month.
package temporal

import (
	"sort"
	"time"

	"github.com/reviewlens/reviewlens/internal/corpus"
	"github.com/reviewlens/reviewlens/internal/sentiment"
)

// MonthlyTable maps the first day of a calendar month (UTC) to the
// sentiment counts of that month. Only months containing at least one
// dated review appear; within a present month every label is present,
// possibly with a zero count.
type MonthlyTable map[time.Time]map[sentiment.Label]int

// Aggregate tabulates per-month sentiment counts over the corpus.
// Reviews without a parseable publication date are excluded here (and
// only here); the second return value counts them.
func Aggregate(reviews corpus.Corpus) (MonthlyTable, int) {
	table := make(MonthlyTable)
	skipped := 0

	for _, review := range reviews {
		if review.Published == nil {
			skipped++
			continue
		}
		key := MonthOf(*review.Published)
		row, ok := table[key]
		if !ok {
			row = make(map[sentiment.Label]int, len(sentiment.Labels()))
			for _, label := range sentiment.Labels() {
				row[label] = 0
			}
			table[key] = row
		}
		row[review.Sentiment]++
	}

	return table, skipped
}

// MonthOf truncates a timestamp to the first day of its month in UTC.
func MonthOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Months returns the table's month keys in ascending order.
func (t MonthlyTable) Months() []time.Time {
	months := make([]time.Time, 0, len(t))
	for m := range t {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

// TotalFor sums every label's count for one month.
func (t MonthlyTable) TotalFor(month time.Time) int {
	total := 0
	for _, count := range t[month] {
		total += count
	}
	return total
}
