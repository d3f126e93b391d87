package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"stockmcp/internal/quote"
)

type fakeSource struct {
	calls atomic.Int64
	quote quote.Quote
	err   error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Quote(_ context.Context, symbol string) (quote.Quote, error) {
	f.calls.Add(1)
	if f.err != nil {
		return quote.Quote{}, f.err
	}
	q := f.quote
	q.Symbol = symbol
	return q, nil
}

func (f *fakeSource) History(_ context.Context, symbol string, days int) ([]quote.Bar, error) {
	f.calls.Add(1)
	return []quote.Bar{{Date: time.Now(), Close: 1}}, nil
}

func (f *fakeSource) Profile(_ context.Context, symbol string) (quote.Profile, error) {
	f.calls.Add(1)
	return quote.Profile{Symbol: symbol, Name: "Fake Co"}, nil
}

func (f *fakeSource) IncomeStatement(_ context.Context, symbol string) (quote.Statement, error) {
	f.calls.Add(1)
	return quote.Statement{Symbol: symbol}, nil
}

func TestQuote_SecondHitServedFromCache(t *testing.T) {
	f := &fakeSource{quote: quote.Quote{Price: 10, Currency: "USD"}}
	c := &Source{S: f, TTL: time.Minute}

	q1, err := c.Quote(t.Context(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	q2, err := c.Quote(t.Context(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.calls.Load(); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
	if q1 != q2 {
		t.Fatalf("cached quote differs: %+v vs %+v", q1, q2)
	}
}

func TestQuote_ExpiredEntryRefetches(t *testing.T) {
	f := &fakeSource{quote: quote.Quote{Price: 10, Currency: "USD"}}
	c := &Source{S: f, TTL: 10 * time.Millisecond}

	if _, err := c.Quote(t.Context(), "AAPL"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := c.Quote(t.Context(), "AAPL"); err != nil {
		t.Fatal(err)
	}
	if got := f.calls.Load(); got != 2 {
		t.Fatalf("upstream calls = %d, want 2", got)
	}
}

func TestQuote_ZeroTTLBypassesCache(t *testing.T) {
	f := &fakeSource{quote: quote.Quote{Price: 10, Currency: "USD"}}
	c := &Source{S: f}

	for range 3 {
		if _, err := c.Quote(t.Context(), "AAPL"); err != nil {
			t.Fatal(err)
		}
	}
	if got := f.calls.Load(); got != 3 {
		t.Fatalf("upstream calls = %d, want 3", got)
	}
}

func TestQuote_ErrorsAreNotCached(t *testing.T) {
	f := &fakeSource{err: quote.Unavailablef("boom")}
	c := &Source{S: f, TTL: time.Minute}

	for range 2 {
		if _, err := c.Quote(t.Context(), "AAPL"); err == nil {
			t.Fatal("expected error")
		}
	}
	if got := f.calls.Load(); got != 2 {
		t.Fatalf("upstream calls = %d, want 2 (errors must not be cached)", got)
	}
}

func TestDistinctSymbolsAndKindsHaveDistinctEntries(t *testing.T) {
	f := &fakeSource{quote: quote.Quote{Price: 10, Currency: "USD"}}
	c := &Source{S: f, TTL: time.Minute}

	if _, err := c.Quote(t.Context(), "AAPL"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Quote(t.Context(), "MSFT"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Profile(t.Context(), "AAPL"); err != nil {
		t.Fatal(err)
	}
	if got := f.calls.Load(); got != 3 {
		t.Fatalf("upstream calls = %d, want 3", got)
	}
}

func TestMaxItemsCapsCacheSize(t *testing.T) {
	f := &fakeSource{quote: quote.Quote{Price: 10, Currency: "USD"}}
	c := &Source{S: f, TTL: time.Minute, MaxItems: 2}

	for _, sym := range []string{"AAPL", "MSFT", "NVDA", "AMZN"} {
		if _, err := c.Quote(t.Context(), sym); err != nil {
			t.Fatal(err)
		}
	}
	c.mu.RLock()
	n := len(c.items)
	c.mu.RUnlock()
	if n > 2 {
		t.Fatalf("cache holds %d items, want <= 2", n)
	}
}
