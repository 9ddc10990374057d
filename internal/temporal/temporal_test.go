package temporal

import (
	"testing"
	"time"

	"github.com/reviewlens/reviewlens/internal/corpus"
	"github.com/reviewlens/reviewlens/internal/sentiment"
)

func datedReview(id int, date string, label sentiment.Label) *corpus.Review {
	ts, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &corpus.Review{ID: id, Published: &ts, Sentiment: label}
}

func TestAggregate(t *testing.T) {
	reviews := corpus.Corpus{
		datedReview(0, "2023-01-15", sentiment.Positive),
		datedReview(1, "2023-01-20", sentiment.Negative),
		datedReview(2, "2023-03-02", sentiment.Neutral),
	}

	table, skipped := Aggregate(reviews)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(table) != 2 {
		t.Fatalf("got %d months, want 2", len(table))
	}

	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	row := table[jan]
	if row == nil {
		t.Fatal("expected January bucket")
	}
	if row[sentiment.Positive] != 1 || row[sentiment.Negative] != 1 || row[sentiment.Neutral] != 0 {
		t.Errorf("January row = %v, want {Positive:1 Negative:1 Neutral:0}", row)
	}
}

func TestAggregateEveryLabelPresent(t *testing.T) {
	reviews := corpus.Corpus{datedReview(0, "2024-06-10", sentiment.Positive)}

	table, _ := Aggregate(reviews)
	row := table[time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)]
	for _, label := range sentiment.Labels() {
		if _, ok := row[label]; !ok {
			t.Errorf("label %s missing from month row", label)
		}
	}
}

func TestAggregateSkipsUndatedReviews(t *testing.T) {
	reviews := corpus.Corpus{
		datedReview(0, "2023-01-15", sentiment.Positive),
		{ID: 1, Sentiment: sentiment.Negative}, // no parseable date
	}

	table, skipped := Aggregate(reviews)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(table) != 1 {
		t.Errorf("got %d months, want 1", len(table))
	}
}

func TestAggregateNoFabricatedMonths(t *testing.T) {
	// January and April reviews must not fabricate February or March.
	reviews := corpus.Corpus{
		datedReview(0, "2023-01-05", sentiment.Neutral),
		datedReview(1, "2023-04-05", sentiment.Neutral),
	}

	table, _ := Aggregate(reviews)
	if len(table) != 2 {
		t.Errorf("got %d months, want 2", len(table))
	}
}

func TestMonthsSorted(t *testing.T) {
	reviews := corpus.Corpus{
		datedReview(0, "2023-05-01", sentiment.Neutral),
		datedReview(1, "2022-11-30", sentiment.Neutral),
		datedReview(2, "2023-01-10", sentiment.Neutral),
	}

	table, _ := Aggregate(reviews)
	months := table.Months()
	for i := 1; i < len(months); i++ {
		if !months[i-1].Before(months[i]) {
			t.Errorf("months not ascending: %v", months)
		}
	}
}

func TestMonthlySumsMatchDatedReviews(t *testing.T) {
	reviews := corpus.Corpus{
		datedReview(0, "2023-01-01", sentiment.Positive),
		datedReview(1, "2023-01-15", sentiment.Positive),
		datedReview(2, "2023-01-31", sentiment.Negative),
		datedReview(3, "2023-02-01", sentiment.Neutral),
	}

	table, _ := Aggregate(reviews)
	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := table.TotalFor(jan); got != 3 {
		t.Errorf("January total = %d, want 3", got)
	}
	feb := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := table.TotalFor(feb); got != 1 {
		t.Errorf("February total = %d, want 1", got)
	}
}
