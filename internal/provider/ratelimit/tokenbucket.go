package ratelimit

import (
	"context"
	"sync"
	"time"

	"stockmcp/internal/quote"
)

// TokenBucket is a stdlib-only token bucket limiter.
// - rate: tokens per second
// - capacity: maximum tokens the bucket can hold (burst)
type TokenBucket struct {
	rate     float64
	capacity float64

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

func NewTokenBucket(tokensPerSecond float64, burst int) *TokenBucket {
	if tokensPerSecond <= 0 {
		tokensPerSecond = 0.0000001
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		rate:     tokensPerSecond,
		capacity: float64(burst),
		tokens:   float64(burst), // start full to allow an initial burst
		last:     time.Now(),
	}
}

// Wait blocks until one token is available or the context is canceled.
func (tb *TokenBucket) Wait(ctx context.Context) error {
	for {
		tb.mu.Lock()
		now := time.Now()
		elapsed := now.Sub(tb.last).Seconds()
		if elapsed > 0 {
			tb.tokens += elapsed * tb.rate
			if tb.tokens > tb.capacity {
				tb.tokens = tb.capacity
			}
			tb.last = now
		}
		if tb.tokens >= 1 {
			tb.tokens -= 1
			tb.mu.Unlock()
			return nil
		}
		deficit := 1 - tb.tokens
		tb.mu.Unlock()
		// time needed to accumulate one token
		waitDur := time.Duration(deficit / tb.rate * 1e9)
		if waitDur <= 0 {
			waitDur = time.Millisecond
		}
		timer := time.NewTimer(waitDur)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// TokenBucketSource wraps a source and gates every upstream call on a token.
type TokenBucketSource struct {
	S  quote.Source
	TB *TokenBucket
}

func (t *TokenBucketSource) Name() string { return t.S.Name() }

func (t *TokenBucketSource) gate(ctx context.Context) error {
	if t.TB == nil {
		return nil
	}
	return t.TB.Wait(ctx)
}

func (t *TokenBucketSource) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
	if err := t.gate(ctx); err != nil {
		return quote.Quote{}, err
	}
	return t.S.Quote(ctx, symbol)
}

func (t *TokenBucketSource) History(ctx context.Context, symbol string, days int) ([]quote.Bar, error) {
	if err := t.gate(ctx); err != nil {
		return nil, err
	}
	return t.S.History(ctx, symbol, days)
}

func (t *TokenBucketSource) Profile(ctx context.Context, symbol string) (quote.Profile, error) {
	if err := t.gate(ctx); err != nil {
		return quote.Profile{}, err
	}
	return t.S.Profile(ctx, symbol)
}

func (t *TokenBucketSource) IncomeStatement(ctx context.Context, symbol string) (quote.Statement, error) {
	if err := t.gate(ctx); err != nil {
		return quote.Statement{}, err
	}
	return t.S.IncomeStatement(ctx, symbol)
}
