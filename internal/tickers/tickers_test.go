package tickers

import "testing"

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	return ix
}

func TestSearch_ExactNameWins(t *testing.T) {
	ix := newTestIndex(t)
	got := ix.Search("Apple Inc.", 3)
	if len(got) == 0 || got[0].Symbol != "AAPL" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestSearch_PartialName(t *testing.T) {
	ix := newTestIndex(t)
	got := ix.Search("procter", 3)
	if len(got) == 0 || got[0].Symbol != "PG" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestSearch_WordPrefixBeatsSubstring(t *testing.T) {
	ix := newTestIndex(t)
	got := ix.Search("bank", 5)
	if len(got) == 0 {
		t.Fatal("no matches for bank")
	}
	if got[0].Symbol != "BAC" {
		t.Fatalf("want Bank of America first, got %+v", got)
	}
}

func TestSearch_TickerPrefix(t *testing.T) {
	ix := newTestIndex(t)
	got := ix.Search("nvd", 3)
	found := false
	for _, m := range got {
		if m.Symbol == "NVDA" {
			found = true
		}
	}
	if !found {
		t.Fatalf("NVDA not found via ticker prefix: %+v", got)
	}
}

func TestSearch_LimitAndEmptyQuery(t *testing.T) {
	ix := newTestIndex(t)
	if got := ix.Search("", 5); got != nil {
		t.Fatalf("empty query must match nothing, got %+v", got)
	}
	if got := ix.Search("inc", 0); got != nil {
		t.Fatalf("zero limit must match nothing, got %+v", got)
	}
	got := ix.Search("corporation", 2)
	if len(got) > 2 {
		t.Fatalf("limit not applied: %d matches", len(got))
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ix := newTestIndex(t)
	upper := ix.Search("MICROSOFT", 1)
	lower := ix.Search("microsoft", 1)
	if len(upper) != 1 || len(lower) != 1 || upper[0].Symbol != lower[0].Symbol {
		t.Fatalf("case sensitivity leak: %+v vs %+v", upper, lower)
	}
}
