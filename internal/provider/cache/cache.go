package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"stockmcp/internal/quote"
)

// entry stores one cached upstream result with expiry.
type entry struct {
	expiresAt time.Time
	val       any
}

// Source caches upstream results per (kind, symbol) for a TTL.
// Quotes use TTL; profiles, statements and history use SlowTTL since they
// move much slower than prices. Concurrent misses for the same key are
// coalesced into a single upstream call.
type Source struct {
	S        quote.Source
	TTL      time.Duration
	SlowTTL  time.Duration
	MaxItems int

	mu    sync.RWMutex
	items map[string]entry
	sf    singleflight.Group
}

func (c *Source) Name() string { return c.S.Name() }

func (c *Source) Quote(ctx context.Context, symbol string) (quote.Quote, error) {
	return get(ctx, c, "quote:"+symbol, c.TTL, func(ctx context.Context) (quote.Quote, error) {
		return c.S.Quote(ctx, symbol)
	})
}

func (c *Source) History(ctx context.Context, symbol string, days int) ([]quote.Bar, error) {
	key := fmt.Sprintf("history:%s:%d", symbol, days)
	return get(ctx, c, key, c.slowTTL(), func(ctx context.Context) ([]quote.Bar, error) {
		return c.S.History(ctx, symbol, days)
	})
}

func (c *Source) Profile(ctx context.Context, symbol string) (quote.Profile, error) {
	return get(ctx, c, "profile:"+symbol, c.slowTTL(), func(ctx context.Context) (quote.Profile, error) {
		return c.S.Profile(ctx, symbol)
	})
}

func (c *Source) IncomeStatement(ctx context.Context, symbol string) (quote.Statement, error) {
	return get(ctx, c, "income:"+symbol, c.slowTTL(), func(ctx context.Context) (quote.Statement, error) {
		return c.S.IncomeStatement(ctx, symbol)
	})
}

func (c *Source) slowTTL() time.Duration {
	if c.SlowTTL > 0 {
		return c.SlowTTL
	}
	return c.TTL
}

// get serves key from cache when valid, otherwise fetches through a
// singleflight group and stores the result.
func get[T any](ctx context.Context, c *Source, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if ttl <= 0 {
		return fetch(ctx)
	}

	now := time.Now()
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if ok && now.Before(e.expiresAt) {
		return e.val.(T), nil
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		val, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, val, ttl)
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Source) store(key string, val any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		c.items = make(map[string]entry)
	}
	c.items[key] = entry{expiresAt: time.Now().Add(ttl), val: val}
	if c.MaxItems <= 0 || len(c.items) <= c.MaxItems {
		return
	}
	// best-effort cap: drop expired entries first, then arbitrary ones
	now := time.Now()
	for k, e := range c.items {
		if len(c.items) <= c.MaxItems {
			return
		}
		if k != key && now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}
	for k := range c.items {
		if len(c.items) <= c.MaxItems {
			return
		}
		if k != key {
			delete(c.items, k)
		}
	}
}
