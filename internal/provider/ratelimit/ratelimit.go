package ratelimit

import (
	"context"
	"sync"
	"time"

	"stockmcp/internal/quote"
)

// MinInterval wraps a source and enforces a minimum time between upstream
// calls. Concurrent calls wait until the interval has elapsed since the last
// call, or return early if the context is canceled.
type MinInterval struct {
	S        quote.Source
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func (m *MinInterval) Name() string { return m.S.Name() }

func (m *MinInterval) gate(ctx context.Context) error {
	if m.Interval <= 0 {
		return nil
	}
	m.mu.Lock()
	wait := time.Until(m.last.Add(m.Interval))
	m.mu.Unlock()
	if wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

func (m *MinInterval) done() {
	if m.Interval <= 0 {
		return
	}
	m.mu.Lock()
	m.last = time.Now()
	m.mu.Unlock()
}

func (m *MinInterval) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
	if err := m.gate(ctx); err != nil {
		return quote.Quote{}, err
	}
	defer m.done()
	return m.S.Quote(ctx, symbol)
}

func (m *MinInterval) History(ctx context.Context, symbol string, days int) ([]quote.Bar, error) {
	if err := m.gate(ctx); err != nil {
		return nil, err
	}
	defer m.done()
	return m.S.History(ctx, symbol, days)
}

func (m *MinInterval) Profile(ctx context.Context, symbol string) (quote.Profile, error) {
	if err := m.gate(ctx); err != nil {
		return quote.Profile{}, err
	}
	defer m.done()
	return m.S.Profile(ctx, symbol)
}

func (m *MinInterval) IncomeStatement(ctx context.Context, symbol string) (quote.Statement, error) {
	if err := m.gate(ctx); err != nil {
		return quote.Statement{}, err
	}
	defer m.done()
	return m.S.IncomeStatement(ctx, symbol)
}
