package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"
)

// LoadResult holds the counts of a corpus load.
type LoadResult struct {
	Rows       int // data rows read
	Loaded     int // reviews added to the corpus
	EmptyTexts int // rows whose text cell was empty
	BadDates   int // rows whose date cell did not parse
	Malformed  int // rows skipped for a wrong field count
}

// Loader reads a review CSV into a Corpus. Column names are
// configuration; any other columns in the file are ignored.
type Loader struct {
	textColumn string
	dateColumn string
	log        zerolog.Logger
}

// NewLoader creates a loader for the given column names.
func NewLoader(textColumn, dateColumn string, logger zerolog.Logger) *Loader {
	return &Loader{textColumn: textColumn, dateColumn: dateColumn, log: logger}
}

// Load reads the CSV at path. The header row must contain the date
// column; the text column may be missing a value per row (the review
// degrades to empty text) but must exist in the header. File order
// becomes ID order.
func (l *Loader) Load(path string) (Corpus, *LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()
	return l.read(f)
}

func (l *Loader) read(r io.Reader) (Corpus, *LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	textIdx, dateIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case l.textColumn:
			textIdx = i
		case l.dateColumn:
			dateIdx = i
		}
	}
	if textIdx < 0 {
		return nil, nil, fmt.Errorf("column %q not found in header", l.textColumn)
	}
	if dateIdx < 0 {
		return nil, nil, fmt.Errorf("column %q not found in header", l.dateColumn)
	}

	var corpus Corpus
	result := &LoadResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading row %d: %w", result.Rows+1, err)
		}
		result.Rows++

		if textIdx >= len(record) || dateIdx >= len(record) {
			result.Malformed++
			l.log.Warn().Int("row", result.Rows).Msg("skipping row with missing fields")
			continue
		}

		review := &Review{ID: len(corpus)}

		text := record[textIdx]
		if strings.TrimSpace(text) == "" {
			result.EmptyTexts++
		} else {
			review.RawText = &text
		}

		review.PublishedRaw = strings.TrimSpace(record[dateIdx])
		if ts, ok := parseDate(review.PublishedRaw); ok {
			review.Published = &ts
		} else {
			result.BadDates++
			l.log.Debug().Int("row", result.Rows).Str("date", review.PublishedRaw).
				Msg("unparseable publication date")
		}

		corpus = append(corpus, review)
		result.Loaded++
	}

	l.log.Info().
		Int("rows", result.Rows).
		Int("loaded", result.Loaded).
		Int("empty_texts", result.EmptyTexts).
		Int("bad_dates", result.BadDates).
		Msg("corpus loaded")
	return corpus, result, nil
}

// parseDate parses a publication date, preferring day-first for
// ambiguous numeric forms since the review corpora use day-first
// conventions.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	ts, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
