package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func newTestLoader() *Loader {
	return NewLoader("Review Body", "Date Published", zerolog.Nop())
}

func TestLoad(t *testing.T) {
	path := writeFixture(t, `SlNo,Review Body,Date Published,Verified
1,Good flight good service,2023-01-15,true
2,Bad food bad crew,2023-01-20,false
3,Flight was okay,2023-02-03,true
`)

	corpus, result, err := newTestLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(corpus) != 3 {
		t.Fatalf("loaded %d reviews, want 3", len(corpus))
	}
	if result.Loaded != 3 || result.Rows != 3 {
		t.Errorf("result = %+v, want 3 rows loaded", result)
	}

	first := corpus[0]
	if first.ID != 0 {
		t.Errorf("first review ID = %d, want 0", first.ID)
	}
	if first.Text() != "Good flight good service" {
		t.Errorf("first review text = %q", first.Text())
	}
	if first.Published == nil {
		t.Fatal("expected first review date to parse")
	}
	if y, m, d := first.Published.Date(); y != 2023 || m != 1 || d != 15 {
		t.Errorf("first review date = %v", first.Published)
	}
}

func TestLoadDayFirstDates(t *testing.T) {
	path := writeFixture(t, `Review Body,Date Published
decent flight,05/02/2023
`)

	corpus, _, err := newTestLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if corpus[0].Published == nil {
		t.Fatal("expected day-first date to parse")
	}
	if _, m, d := corpus[0].Published.Date(); m != 2 || d != 5 {
		t.Errorf("05/02/2023 parsed as month=%d day=%d, want February 5", m, d)
	}
}

func TestLoadMissingText(t *testing.T) {
	path := writeFixture(t, `Review Body,Date Published
,2023-03-01
`)

	corpus, result, err := newTestLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.EmptyTexts != 1 {
		t.Errorf("EmptyTexts = %d, want 1", result.EmptyTexts)
	}
	if corpus[0].RawText != nil {
		t.Errorf("expected nil RawText, got %q", *corpus[0].RawText)
	}
	if corpus[0].Text() != "" {
		t.Errorf("Text() = %q, want empty", corpus[0].Text())
	}
}

func TestLoadBadDateStillLoads(t *testing.T) {
	path := writeFixture(t, `Review Body,Date Published
late departure,not a date
`)

	corpus, result, err := newTestLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.BadDates != 1 {
		t.Errorf("BadDates = %d, want 1", result.BadDates)
	}
	if corpus[0].Published != nil {
		t.Errorf("expected nil Published, got %v", corpus[0].Published)
	}
	if corpus[0].PublishedRaw != "not a date" {
		t.Errorf("PublishedRaw = %q", corpus[0].PublishedRaw)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeFixture(t, `Review Body,Published
text,2023-01-01
`)

	_, _, err := newTestLoader().Load(path)
	if err == nil {
		t.Fatal("expected error for missing date column")
	}
}

func TestLoadShortRowSkipped(t *testing.T) {
	path := writeFixture(t, `SlNo,Review Body,Date Published
1,first review,2023-01-01
2
3,second review,2023-01-02
`)

	corpus, result, err := newTestLoader().Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if result.Malformed != 1 {
		t.Errorf("Malformed = %d, want 1", result.Malformed)
	}
	if len(corpus) != 2 {
		t.Errorf("loaded %d reviews, want 2", len(corpus))
	}
	// IDs stay contiguous over loaded reviews.
	if corpus[1].ID != 1 {
		t.Errorf("second loaded review ID = %d, want 1", corpus[1].ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := newTestLoader().Load(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
